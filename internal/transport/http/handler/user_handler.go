package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/service"
	httpez "bookmark-api/internal/transport/http/ez"
	mdw "bookmark-api/internal/transport/http/middleware"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type meOut struct {
	User *domain.User `json:"user"`
}

type editUserIn struct {
	Email     *string `json:"email"     binding:"omitempty,email"`
	FirstName *string `json:"firstName" binding:"omitempty,max=64"`
	LastName  *string `json:"lastName"  binding:"omitempty,max=64"`
}

// MountAPI 需挂在 AuthJWT 之后的分组
func (h *UserHandler) MountAPI(e httpez.EZ) {
	httpez.Register(e, httpez.Action[struct{}, meOut]{
		Method: http.MethodGet,
		Path:   "/users/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (meOut, error) {
			return meOut{User: mdw.CurrentUser(c)}, nil
		},
	})

	httpez.Register(e, httpez.Action[editUserIn, *domain.User]{
		Method: http.MethodPatch,
		Path:   "/users/edit-me",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *editUserIn) (*domain.User, error) {
			patch := domain.UserPatch{Email: in.Email, FirstName: in.FirstName, LastName: in.LastName}
			return h.svc.EditUser(c.Request.Context(), mdw.CurrentUserID(c), patch)
		},
	})
}
