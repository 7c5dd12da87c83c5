package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	resp "bookmark-api/internal/transport/http/response"
)

// RateLimitRedis 按 IP 计数（INCR + EXPIRE），多实例共享配额；每次请求刷新过期时间。
// Redis 不可用时放行，只记日志。
func RateLimitRedis(rdb redis.Cmdable, prefix string, limit int, window time.Duration, l *zap.Logger) gin.HandlerFunc {
	if limit <= 0 || window <= 0 {
		panic("RateLimitRedis: limit and window must be positive")
	}
	if l == nil {
		l = zap.NewNop()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := prefix + c.ClientIP()

		pipe := rdb.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			l.Warn("ratelimit: redis unavailable, allowing request",
				zap.String("rid", c.GetString(KeyRequestID)), zap.Error(err))
			c.Next()
			return
		}

		count := incr.Val()
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			resp.Abort(c, resp.CodeTooManyRequests, "")
			return
		}
		c.Next()
	}
}
