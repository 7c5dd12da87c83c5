package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"bookmark-api/internal/core/config"
	"bookmark-api/internal/core/server"
	"bookmark-api/internal/service"
	httpez "bookmark-api/internal/transport/http/ez"
	"bookmark-api/internal/transport/http/handler"
	mdw "bookmark-api/internal/transport/http/middleware"
)

// Deps 组合根注入的全部依赖；Redis 可为 nil
type Deps struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Bookmarks *service.BookmarkService
	Tokens    mdw.TokenParser
	Redis     redis.Cmdable
	Limits    config.Limits
	Mode      string
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := server.NewRouter(d.Mode)

	r.Use(
		mdw.RequestID(),
		mdw.Recovery(l),
		mdw.AccessLog(l),
		mdw.Metrics(),
	)
	if d.Limits.RPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(d.Limits.RPS), max(1, d.Limits.Burst)))
	}
	if d.Limits.TimeoutSec > 0 {
		r.Use(mdw.Timeout(time.Duration(d.Limits.TimeoutSec) * time.Second))
	}
	if d.Limits.MaxInflight > 0 {
		r.Use(mdw.ConcurrencyLimit(d.Limits.MaxInflight))
	}
	if d.Limits.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(d.Limits.MaxBodyBytes))
	}

	// 运维
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())

	// 公开：/auth/*，按 IP 限速
	public := r.Group("")
	if lim := authLimiter(l, d); lim != nil {
		public.Use(lim)
	}
	MountAll(httpez.New(public, l, httpez.WithErrorMapper(handler.ServiceError)),
		handler.NewAuthHandler(d.Auth),
	)

	// 鉴权：/users/*, /bookmarks/*
	protected := r.Group("")
	protected.Use(mdw.AuthJWT(d.Tokens, d.Users, l))
	MountAll(httpez.New(protected, l, httpez.WithErrorMapper(handler.ServiceError)),
		handler.NewUserHandler(d.Users),
		handler.NewBookmarkHandler(d.Bookmarks),
	)

	return r
}

// authLimiter 有 Redis 用共享计数，否则进程内令牌桶
func authLimiter(l *zap.Logger, d Deps) gin.HandlerFunc {
	n := d.Limits.AuthPerMinute
	if n <= 0 {
		return nil
	}
	if d.Redis != nil {
		return mdw.RateLimitRedis(d.Redis, "rl:auth:", n, time.Minute, l)
	}
	return mdw.RateLimitPerIP(rate.Limit(float64(n)/60), n)
}
