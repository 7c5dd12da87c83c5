package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookmark-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDupKey(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}

// FindByEmail 精确匹配（区分大小写）
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) Update(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	if !patch.Empty() {
		cols := map[string]any{}
		if patch.Email != nil {
			cols["email"] = *patch.Email
		}
		if patch.FirstName != nil {
			cols["first_name"] = *patch.FirstName
		}
		if patch.LastName != nil {
			cols["last_name"] = *patch.LastName
		}
		err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			if isDupKey(err) {
				return nil, ErrDuplicate
			}
			return nil, fmt.Errorf("update user %d: %w", id, err)
		}
	}
	return r.FindByID(ctx, id)
}
