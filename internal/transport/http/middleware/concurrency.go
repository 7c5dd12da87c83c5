package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "bookmark-api/internal/transport/http/response"
)

// ConcurrencyLimit 限制同时处理中的请求数（保护 DB 连接池）
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if !sem.TryAcquire(1) {
			// 排队直到请求 ctx 结束（Timeout 中间件或客户端断开）
			if err := sem.Acquire(c.Request.Context(), 1); err != nil {
				resp.Abort(c, resp.CodeUnavailable, "")
				return
			}
		}
		defer sem.Release(1)
		c.Next()
	}
}
