package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/service"
	httpez "bookmark-api/internal/transport/http/ez"
	mdw "bookmark-api/internal/transport/http/middleware"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

type createBookmarkIn struct {
	Title       string  `json:"title"       binding:"required"`
	Description *string `json:"description"`
	Link        string  `json:"link"        binding:"required"`
}

type editBookmarkIn struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// bookmarkID :id 必须是正整数
func bookmarkID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, httpez.BadRequest("id must be a positive integer")
	}
	return uint(id), nil
}

// MountAPI 需挂在 AuthJWT 之后的分组
func (h *BookmarkHandler) MountAPI(e httpez.EZ) {
	httpez.Register(e, httpez.Action[createBookmarkIn, *domain.Bookmark]{
		Method: http.MethodPost,
		Path:   "/bookmarks",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *createBookmarkIn) (*domain.Bookmark, error) {
			return h.svc.Create(c.Request.Context(), mdw.CurrentUserID(c), service.CreateBookmarkInput{
				Title:       in.Title,
				Description: in.Description,
				Link:        in.Link,
			})
		},
	})

	httpez.Register(e, httpez.Action[struct{}, []domain.Bookmark]{
		Method: http.MethodGet,
		Path:   "/bookmarks",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Bookmark, error) {
			return h.svc.ListByOwner(c.Request.Context(), mdw.CurrentUserID(c))
		},
	})

	// 不存在或不属于自己：200 空 body
	httpez.Register(e, httpez.Action[struct{}, *domain.Bookmark]{
		Method: http.MethodGet,
		Path:   "/bookmarks/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Bookmark, error) {
			id, err := bookmarkID(c)
			if err != nil {
				return nil, err
			}
			return h.svc.GetByID(c.Request.Context(), mdw.CurrentUserID(c), id)
		},
	})

	httpez.Register(e, httpez.Action[editBookmarkIn, *domain.Bookmark]{
		Method: http.MethodPatch,
		Path:   "/bookmarks/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *editBookmarkIn) (*domain.Bookmark, error) {
			id, err := bookmarkID(c)
			if err != nil {
				return nil, err
			}
			patch := domain.BookmarkPatch{Title: in.Title, Description: in.Description, Link: in.Link}
			return h.svc.Update(c.Request.Context(), mdw.CurrentUserID(c), id, patch)
		},
	})

	httpez.Register(e, httpez.Action[struct{}, struct{}]{
		Method: http.MethodDelete,
		Path:   "/bookmarks/:id",
		Binder: httpez.BindNone,
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			id, err := bookmarkID(c)
			if err != nil {
				return struct{}{}, err
			}
			return struct{}{}, h.svc.Delete(c.Request.Context(), mdw.CurrentUserID(c), id)
		},
	})
}
