package service

import (
	"context"

	"bookmark-api/internal/domain"
)

type CreateBookmarkInput struct {
	Title       string
	Description *string
	Link        string
}

type BookmarkService struct {
	bookmarks domain.BookmarkRepository
}

func NewBookmarkService(bookmarks domain.BookmarkRepository) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

func (s *BookmarkService) Create(ctx context.Context, ownerID uint, in CreateBookmarkInput) (*domain.Bookmark, error) {
	b := &domain.Bookmark{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := s.bookmarks.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookmarkService) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Bookmark, error) {
	items, err := s.bookmarks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Bookmark{}
	}
	return items, nil
}

// GetByID 不存在或不属于 ownerID 都返回 (nil, nil)
func (s *BookmarkService) GetByID(ctx context.Context, ownerID, id uint) (*domain.Bookmark, error) {
	return s.bookmarks.FindByIDAndOwner(ctx, id, ownerID)
}

func (s *BookmarkService) Update(ctx context.Context, ownerID, id uint, patch domain.BookmarkPatch) (*domain.Bookmark, error) {
	if err := s.checkOwner(ctx, ownerID, id); err != nil {
		return nil, err
	}
	return s.bookmarks.Update(ctx, id, patch)
}

func (s *BookmarkService) Delete(ctx context.Context, ownerID, id uint) error {
	if err := s.checkOwner(ctx, ownerID, id); err != nil {
		return err
	}
	return s.bookmarks.Delete(ctx, id)
}

// checkOwner 先按 id 查（不带 owner 条件），再比对归属
func (s *BookmarkService) checkOwner(ctx context.Context, ownerID, id uint) error {
	b, err := s.bookmarks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil || b.UserID != ownerID {
		return ErrAccessDenied
	}
	return nil
}
