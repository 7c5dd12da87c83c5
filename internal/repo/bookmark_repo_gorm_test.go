package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmark-api/internal/domain"
)

var bookmarkCols = []string{"id", "created_at", "updated_at", "title", "description", "link", "user_id"}

func TestBookmarkRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewBookmarkRepo(db)

	mock.ExpectQuery(`INSERT INTO "bookmarks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	b := &domain.Bookmark{Title: "t", Link: "l", UserID: 2}
	require.NoError(t, r.Create(context.Background(), b))
	assert.Equal(t, uint(11), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepo_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewBookmarkRepo(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE user_id = \$1 ORDER BY id ASC`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(bookmarkCols).
			AddRow(1, now, now, "a", nil, "l1", 2).
			AddRow(3, now, now, "b", "desc", "l2", 2))

	items, err := r.ListByOwner(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ID)
	require.NotNil(t, items[1].Description)
	assert.Equal(t, "desc", *items[1].Description)
}

func TestBookmarkRepo_ListByOwner_EmptyNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewBookmarkRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookmarkCols))

	items, err := r.ListByOwner(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestBookmarkRepo_FindByIDAndOwner(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewBookmarkRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows(bookmarkCols))

	b, err := r.FindByIDAndOwner(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepo_FindByID_Error(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewBookmarkRepo(db)
	boom := errors.New("timeout")

	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE id = \$1`).WillReturnError(boom)

	_, err := r.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, boom)
}

func TestBookmarkRepo_Update(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewBookmarkRepo(db)
	now := time.Now()
	title := "new"

	mock.ExpectExec(`UPDATE "bookmarks" SET .*"title"=\$\d.* WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookmarkCols).AddRow(4, now, now, "new", "keep", "l", 2))

	b, err := r.Update(context.Background(), 4, domain.BookmarkPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", b.Title)
	assert.Equal(t, "keep", *b.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepo_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewBookmarkRepo(db)

	mock.ExpectExec(`DELETE FROM "bookmarks" WHERE id = \$1`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
