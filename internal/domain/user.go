package domain

import (
	"context"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Email     string  `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Hash      string  `gorm:"size:255;not null" json:"-"`
	FirstName *string `gorm:"size:64" json:"firstName"`
	LastName  *string `gorm:"size:64" json:"lastName"`
}

func (User) TableName() string { return "users" }

// UserPatch 只更新非 nil 字段
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

func (p UserPatch) Empty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}

// UserRepository 查不到时返回 (nil, nil)；唯一冲突返回 repo.ErrDuplicate。
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id uint, patch UserPatch) (*User, error)
}
