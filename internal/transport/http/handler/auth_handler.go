package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmark-api/internal/service"
	httpez "bookmark-api/internal/transport/http/ez"
	mdw "bookmark-api/internal/transport/http/middleware"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type credentialsIn struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenOut struct {
	AccessToken string `json:"access_token"`
}

// MountAPI /auth/signup, /auth/login（公开）
func (h *AuthHandler) MountAPI(e httpez.EZ) {
	httpez.Register(e, httpez.Action[credentialsIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *credentialsIn) (tokenOut, error) {
			tok, err := h.svc.Signup(c.Request.Context(), in.Email, in.Password)
			mdw.AuthEvent("signup", authResult(err))
			if err != nil {
				return tokenOut{}, err
			}
			return tokenOut{AccessToken: tok}, nil
		},
	})

	httpez.Register(e, httpez.Action[credentialsIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Status: http.StatusAccepted,
		Handler: func(c *gin.Context, in *credentialsIn) (tokenOut, error) {
			tok, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
			mdw.AuthEvent("login", authResult(err))
			if err != nil {
				return tokenOut{}, err
			}
			return tokenOut{AccessToken: tok}, nil
		},
	})
}

func authResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, service.ErrCredentialsTaken):
		return "taken"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid"
	}
	return "error"
}
