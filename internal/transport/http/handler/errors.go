package handler

import (
	"errors"

	"bookmark-api/internal/service"
	httpez "bookmark-api/internal/transport/http/ez"
)

// ServiceError 业务 sentinel → HTTP；不认识的原样返回（由 ez 记日志并回 500）
func ServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrCredentialsTaken):
		return httpez.Forbidden("Credentials taken")
	case errors.Is(err, service.ErrInvalidCredentials):
		return httpez.Forbidden("Credentials incorrect")
	case errors.Is(err, service.ErrAccessDenied):
		return httpez.Forbidden("Access denied")
	}
	return err
}
