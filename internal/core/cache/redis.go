package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Options struct {
	Addr     string
	Password string
	DB       int

	DialTimeout time.Duration
	Attempts    int           // Ping 尝试次数，默认 3
	RetryWait   time.Duration // 首次重试等待，之后翻倍
}

// NewRedis Addr 为空表示不启用，返回 (nil, nil)；连不上返回 error 并关闭 client
func NewRedis(ctx context.Context, o Options, l *zap.Logger) (*redis.Client, error) {
	if o.Addr == "" {
		return nil, nil
	}
	if l == nil {
		l = zap.NewNop()
	}
	if o.Attempts <= 0 {
		o.Attempts = 3
	}
	if o.RetryWait <= 0 {
		o.RetryWait = 500 * time.Millisecond
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = 2 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        o.Addr,
		Password:    o.Password,
		DB:          o.DB,
		DialTimeout: o.DialTimeout,
	})

	wait := o.RetryWait
	var err error
	for attempt := 1; attempt <= o.Attempts; attempt++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			l.Info("redis connected", zap.String("addr", o.Addr), zap.Int("attempts", attempt))
			return rdb, nil
		}
		if attempt == o.Attempts {
			break
		}
		l.Warn("redis ping failed, retrying",
			zap.String("addr", o.Addr), zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", wait), zap.Error(err))

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
	_ = rdb.Close()
	return nil, fmt.Errorf("redis unavailable at %s after %d attempts: %w", o.Addr, o.Attempts, err)
}
