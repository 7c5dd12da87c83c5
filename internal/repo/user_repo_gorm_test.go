package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmark-api/internal/domain"
)

var userCols = []string{"id", "created_at", "updated_at", "email", "hash", "first_name", "last_name"}

func TestUserRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	u := &domain.User{Email: "a@example.com", Hash: "h"}
	require.NoError(t, r.Create(context.Background(), u))
	assert.Equal(t, uint(7), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := r.Create(context.Background(), &domain.User{Email: "a@example.com", Hash: "h"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepo_Create_OtherError(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(boom)

	err := r.Create(context.Background(), &domain.User{Email: "a@example.com", Hash: "h"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestUserRepo_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(3, now, now, "a@example.com", "h", nil, nil))

	u, err := r.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, uint(3), u.ID)
	assert.Nil(t, u.FirstName)
}

func TestUserRepo_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := r.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_Update(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)
	now := time.Now()
	first := "Ada"

	mock.ExpectExec(`UPDATE "users" SET .*"first_name"=\$\d.* WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, now, now, "a@example.com", "h", first, nil))

	u, err := r.Update(context.Background(), 1, domain.UserPatch{FirstName: &first})
	require.NoError(t, err)
	require.NotNil(t, u.FirstName)
	assert.Equal(t, "Ada", *u.FirstName)
	assert.Equal(t, "a@example.com", u.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Update_EmptyPatchOnlyReads(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, now, now, "a@example.com", "h", nil, nil))

	_, err := r.Update(context.Background(), 1, domain.UserPatch{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Update_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserRepo(db)
	email := "taken@example.com"

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := r.Update(context.Background(), 1, domain.UserPatch{Email: &email})
	assert.ErrorIs(t, err, ErrDuplicate)
}
