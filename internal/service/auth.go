package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/repo"
	"bookmark-api/pkg/utils"
)

type TokenIssuer interface {
	Issue(userID uint, email string) (string, error)
}

type AuthService struct {
	users  domain.UserRepository
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(users domain.UserRepository, tokens TokenIssuer, l *zap.Logger) *AuthService {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuthService{users: users, tokens: tokens, log: l}
}

// Signup 不预查 email，直接插入，靠唯一索引兜底并发注册
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{Email: email, Hash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			s.log.Warn("signup rejected: email taken")
			return "", ErrCredentialsTaken
		}
		return "", err
	}
	s.log.Info("user signed up", zap.Uint("user_id", u.ID))
	return s.SignToken(u.ID, u.Email)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		s.log.Warn("login failed", zap.String("reason", "unknown email"))
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, u.Hash) {
		s.log.Warn("login failed", zap.String("reason", "bad password"), zap.Uint("user_id", u.ID))
		return "", ErrInvalidCredentials
	}
	return s.SignToken(u.ID, u.Email)
}

func (s *AuthService) SignToken(userID uint, email string) (string, error) {
	tok, err := s.tokens.Issue(userID, email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}
