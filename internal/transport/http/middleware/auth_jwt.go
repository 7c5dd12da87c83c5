package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark-api/internal/core/auth"
	"bookmark-api/internal/domain"
	resp "bookmark-api/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyUser   = "user"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type UserLoader interface {
	Me(ctx context.Context, id uint) (*domain.User, error)
}

// AuthJWT 校验 Bearer token 并加载用户；token 无效时不访问存储
func AuthJWT(tokens TokenParser, users UserLoader, l *zap.Logger) gin.HandlerFunc {
	if l == nil {
		l = zap.NewNop()
	}
	return func(c *gin.Context) {
		raw, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			resp.Abort(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		uid, err := claims.UserID()
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "invalid token")
			return
		}

		u, err := users.Me(c.Request.Context(), uid)
		if err != nil {
			l.Error("auth: load user", zap.Uint("uid", uid), zap.String("rid", c.GetString(KeyRequestID)), zap.Error(err))
			resp.Abort(c, resp.CodeServerError, "")
			return
		}
		if u == nil {
			resp.Abort(c, resp.CodeUnauthorized, "")
			return
		}

		c.Set(KeyUserID, u.ID)
		c.Set(KeyUser, u)
		c.Next()
	}
}

// bearer scheme 大小写不敏感
func bearer(h string) (string, bool) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

// CurrentUserID 只能用在 AuthJWT 之后
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(KeyUserID)
}

func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(KeyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
