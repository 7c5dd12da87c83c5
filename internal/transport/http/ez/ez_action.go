package ez

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mdw "bookmark-api/internal/transport/http/middleware"
	resp "bookmark-api/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON body 绑定，未知字段忽略
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// AErr 统一错误对象，Code 即 HTTP 状态
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }

// Internal msg 只写日志，响应固定为 "internal error"
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// EZ 路由分组 + 统一的错误映射/日志
type EZ struct {
	g      *gin.RouterGroup
	l      *zap.Logger
	mapErr func(error) error
}

type Option func(*EZ)

// WithErrorMapper 业务 sentinel → AErr；返回原 err 表示不认识
func WithErrorMapper(f func(error) error) Option {
	return func(e *EZ) { e.mapErr = f }
}

func New(g *gin.RouterGroup, l *zap.Logger, opts ...Option) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	e := EZ{g: g, l: l}
	for _, o := range opts {
		o(&e)
	}
	return e
}

// Action I 入参，O 出参
type Action[I any, O any] struct {
	Method string // GET | POST | PATCH | PUT | DELETE
	Path   string
	Binder Binder
	// 成功状态码，默认 200；204 时不写 body
	Status  int
	Handler func(c *gin.Context, in *I) (O, error)
}

func Register[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			if mdw.IsBodyTooLarge(bindErr) {
				resp.Abort(c, resp.CodeTooLarge, "")
				return
			}
			resp.Abort(c, resp.CodeBadRequest, bindErr.Error())
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.fail(c, err)
			return
		}

		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		// nil 指针结果 → 空 body
		if status == http.StatusNoContent || isNil(out) {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

func (e EZ) fail(c *gin.Context, err error) {
	if e.mapErr != nil {
		err = e.mapErr(err)
	}
	var ae *AErr
	if errors.As(err, &ae) && ae.Code < http.StatusInternalServerError {
		resp.Abort(c, ae.Code, ae.Error())
		return
	}
	e.l.Error("request failed",
		zap.String("rid", c.GetString(mdw.KeyRequestID)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	resp.Abort(c, resp.CodeServerError, "")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map:
		return rv.IsNil()
	}
	return false
}
