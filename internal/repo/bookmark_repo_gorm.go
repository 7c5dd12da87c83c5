package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookmark-api/internal/domain"
)

type BookmarkRepo struct{ db *gorm.DB }

func NewBookmarkRepo(db *gorm.DB) *BookmarkRepo { return &BookmarkRepo{db: db} }

func (r *BookmarkRepo) Create(ctx context.Context, b *domain.Bookmark) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create bookmark: %w", err)
	}
	return nil
}

// ListByOwner 按插入顺序（id 升序）；没有记录时返回空切片而不是 nil
func (r *BookmarkRepo) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Bookmark, error) {
	items := make([]domain.Bookmark, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list bookmarks of user %d: %w", ownerID, err)
	}
	return items, nil
}

func (r *BookmarkRepo) FindByID(ctx context.Context, id uint) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find bookmark %d: %w", id, err)
	}
	return &b, nil
}

func (r *BookmarkRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find bookmark %d of user %d: %w", id, ownerID, err)
	}
	return &b, nil
}

func (r *BookmarkRepo) Update(ctx context.Context, id uint, patch domain.BookmarkPatch) (*domain.Bookmark, error) {
	if !patch.Empty() {
		cols := map[string]any{}
		if patch.Title != nil {
			cols["title"] = *patch.Title
		}
		if patch.Description != nil {
			cols["description"] = *patch.Description
		}
		if patch.Link != nil {
			cols["link"] = *patch.Link
		}
		err := r.db.WithContext(ctx).Model(&domain.Bookmark{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return nil, fmt.Errorf("update bookmark %d: %w", id, err)
		}
	}
	return r.FindByID(ctx, id)
}

func (r *BookmarkRepo) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Bookmark{}).Error; err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	return nil
}
