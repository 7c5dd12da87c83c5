package service

import (
	"context"
	"errors"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/repo"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Me 不存在时返回 (nil, nil)
func (s *UserService) Me(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// EditUser userID 只能来自鉴权中间件，不能取自请求参数
func (s *UserService) EditUser(ctx context.Context, userID uint, patch domain.UserPatch) (*domain.User, error) {
	u, err := s.users.Update(ctx, userID, patch)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrCredentialsTaken
	}
	return u, err
}
