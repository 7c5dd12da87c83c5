// Package mocks 提供 domain 仓库接口的 testify/mock 实现，供 service 层单测使用。
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bookmark-api/internal/domain"
)

type UserRepository struct{ mock.Mock }

var _ domain.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type BookmarkRepository struct{ mock.Mock }

var _ domain.BookmarkRepository = (*BookmarkRepository)(nil)

func (m *BookmarkRepository) Create(ctx context.Context, b *domain.Bookmark) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookmarkRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	items, _ := args.Get(0).([]domain.Bookmark)
	return items, args.Error(1)
}

func (m *BookmarkRepository) FindByID(ctx context.Context, id uint) (*domain.Bookmark, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Bookmark)
	return b, args.Error(1)
}

func (m *BookmarkRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Bookmark, error) {
	args := m.Called(ctx, id, ownerID)
	b, _ := args.Get(0).(*domain.Bookmark)
	return b, args.Error(1)
}

func (m *BookmarkRepository) Update(ctx context.Context, id uint, patch domain.BookmarkPatch) (*domain.Bookmark, error) {
	args := m.Called(ctx, id, patch)
	b, _ := args.Get(0).(*domain.Bookmark)
	return b, args.Error(1)
}

func (m *BookmarkRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
