package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "name", "email", "profile_image_url", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(name,\s*email,\s*profile_image_url\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`
	mock.ExpectQuery(q).
		WithArgs("Alice", "a@x.io", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u-1", now, now))

	got, err := repo.Create(context.Background(), &models.User{Name: "Alice", Email: "a@x.io"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.io"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestGetByID(t *testing.T) {
	q := `(?s)^SELECT\s+id,\s*name,\s*email,\s*profile_image_url,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		now := time.Now()
		mock.ExpectQuery(q).WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "Alice", "a@x.io", "https://img/a.png", now, now))

		got, err := repo.GetByID(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, &models.User{
			ID: "u-1", Name: "Alice", Email: "a@x.io", ProfileImageURL: "https://img/a.png",
			CreatedAt: now, UpdatedAt: now,
		}, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "ghost")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("u-1").WillReturnError(errors.New("db down"))

		_, err := repo.GetByID(context.Background(), "u-1")
		require.Error(t, err)
		assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
	})
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	mock.ExpectQuery(`WHERE email = \$1`).WithArgs("a@x.io").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "Alice", "a@x.io", "", now, now))

	got, err := repo.GetByEmail(context.Background(), "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
}

func TestUpdateProfile(t *testing.T) {
	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$2,\s*email\s*=\s*\$3,\s*profile_image_url\s*=\s*\$4,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+id,`
	upd := models.ProfileUpdate{Name: "Bob", Email: "b@x.io", ProfileImageURL: "https://img/b.png"}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		now := time.Now()
		mock.ExpectQuery(q).WithArgs("u-1", "Bob", "b@x.io", "https://img/b.png").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "Bob", "b@x.io", "https://img/b.png", now, now))

		got, err := repo.UpdateProfile(context.Background(), "u-1", upd)
		require.NoError(t, err)
		assert.Equal(t, "Bob", got.Name)
		assert.Equal(t, "https://img/b.png", got.ProfileImageURL)
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateProfile(context.Background(), "ghost", upd)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("email taken", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := repo.UpdateProfile(context.Background(), "u-1", upd)
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	})
}
