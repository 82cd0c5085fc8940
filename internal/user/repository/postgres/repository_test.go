package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repo "github.com/brigere/shield-api/internal/user/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

func TestList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("returns a page of users", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs(10, 0).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(1, "a@x.com", "hash-a", now, now).
				AddRow(2, "b@x.com", "hash-b", now, now))

		users, err := r.List(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "a@x.com", users[0].Email)
		assert.Equal(t, 2, users[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs(10, 100).
			WillReturnRows(pgxmock.NewRows(userColumns))

		users, err := r.List(ctx, 10, 100)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs(10, 0).
			WillReturnError(errors.New("connection refused"))

		users, err := r.List(ctx, 10, 0)
		assert.Error(t, err)
		assert.Nil(t, users)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(1, "a@x.com", "hash-a", now, now))

		user, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "a@x.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows returns nil user and nil error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
