package domain

import (
	"context"
	"time"
)

type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Link        string  `gorm:"type:text;not null" json:"link"`

	UserID uint  `gorm:"index;not null" json:"userId"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Bookmark) TableName() string { return "bookmarks" }

type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

func (p BookmarkPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Link == nil
}

type BookmarkRepository interface {
	Create(ctx context.Context, b *Bookmark) error
	ListByOwner(ctx context.Context, ownerID uint) ([]Bookmark, error)
	FindByID(ctx context.Context, id uint) (*Bookmark, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*Bookmark, error)
	Update(ctx context.Context, id uint, patch BookmarkPatch) (*Bookmark, error)
	Delete(ctx context.Context, id uint) error
}
