// dbctl 运维工具：建表、清空数据、连通性检查
//
//	dbctl [-config path] migrate
//	dbctl [-config path] -yes truncate
//	dbctl [-config path] ping
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark-api/internal/core/config"
	"bookmark-api/internal/core/database"
	"bookmark-api/internal/core/logger"
)

var errUsage = errors.New("usage: dbctl [-config path] [-yes] migrate|truncate|ping")

func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("dbctl", flag.ExitOnError)
	cfgPath := fs.String("config", os.Getenv("CONFIG_PATH"), "config file path")
	yes := fs.Bool("yes", false, "confirm destructive commands")
	timeout := fs.Duration("timeout", time.Minute, "overall timeout")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, l, fs.Arg(0), *yes); err != nil {
		l.Error("dbctl failed", zap.String("cmd", fs.Arg(0)), zap.Error(err))
		cleanup()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, l *zap.Logger, cmd string, yes bool) error {
	var op func(context.Context, *gorm.DB) error
	switch cmd {
	case "migrate":
		op = database.Migrate
	case "truncate":
		if !yes {
			return errors.New("truncate deletes every user and bookmark; pass -yes to confirm")
		}
		op = database.Truncate
	case "ping":
		op = database.Ping
	default:
		return errUsage
	}

	db, err := database.NewGorm(database.Opts{
		Driver:   cfg.DB.Driver,
		DSN:      cfg.DB.DSN,
		Username: cfg.DB.Username,
		Password: cfg.DB.Password,
		LogLevel: cfg.DB.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := op(ctx, db); err != nil {
		return err
	}
	l.Info("dbctl done", zap.String("cmd", cmd), zap.String("driver", cfg.DB.Driver))
	return nil
}
