package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/repo"
	"bookmark-api/internal/repo/mocks"
	"bookmark-api/internal/service"
)

func TestUserService_EditUser(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := service.NewUserService(users)
	ctx := context.Background()
	patch := domain.UserPatch{FirstName: strp("Ada")}

	users.On("Update", ctx, uint(1), patch).
		Return(&domain.User{ID: 1, Email: "a@example.com", FirstName: strp("Ada")}, nil).Once()

	u, err := svc.EditUser(ctx, 1, patch)
	require.NoError(t, err)
	assert.Equal(t, "Ada", *u.FirstName)
	assert.Equal(t, "a@example.com", u.Email)
	users.AssertExpectations(t)
}

func TestUserService_EditUser_EmailTaken(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := service.NewUserService(users)
	ctx := context.Background()
	patch := domain.UserPatch{Email: strp("b@example.com")}

	users.On("Update", ctx, uint(1), patch).Return(nil, repo.ErrDuplicate).Once()

	_, err := svc.EditUser(ctx, 1, patch)
	assert.ErrorIs(t, err, service.ErrCredentialsTaken)
}

func TestUserService_Me(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := service.NewUserService(users)
	ctx := context.Background()

	users.On("FindByID", ctx, uint(2)).Return(nil, nil).Once()

	u, err := svc.Me(ctx, 2)
	assert.NoError(t, err)
	assert.Nil(t, u)
}
