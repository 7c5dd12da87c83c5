package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resp "bookmark-api/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小；超限时 handler 读 body 会失败
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			resp.Abort(c, resp.CodeTooLarge, "")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

// IsBodyTooLarge 供 handler 区分 413 与普通绑定错误
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
