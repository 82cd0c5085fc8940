package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brigere/shield-api/internal/wallet/dto"
	repo "github.com/brigere/shield-api/internal/wallet/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var walletColumns = []string{"id", "user_id", "chain", "address", "tag", "created_at", "updated_at"}

func TestListByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewWalletRepository(mock)
	ctx := context.Background()

	t.Run("returns wallets for the owner", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, user_id, chain, address, tag").
			WithArgs(9).
			WillReturnRows(pgxmock.NewRows(walletColumns).
				AddRow(1, 9, "Ethereum", "0xabc", "Trading", now, now).
				AddRow(2, 9, "Bitcoin", "bc1qxyz", "", now, now))

		wallets, err := r.ListByUserID(ctx, 9)
		require.NoError(t, err)
		require.Len(t, wallets, 2)
		assert.Equal(t, "Ethereum", wallets[0].Chain)
		assert.Equal(t, "bc1qxyz", wallets[1].Address)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, chain, address, tag").
			WithArgs(9).
			WillReturnRows(pgxmock.NewRows(walletColumns))

		wallets, err := r.ListByUserID(ctx, 9)
		require.NoError(t, err)
		assert.NotNil(t, wallets)
		assert.Empty(t, wallets)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, chain, address, tag").
			WithArgs(9).
			WillReturnError(errors.New("connection refused"))

		wallets, err := r.ListByUserID(ctx, 9)
		assert.Error(t, err)
		assert.Nil(t, wallets)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByIDAndUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewWalletRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, user_id, chain, address, tag").
			WithArgs(1, 9).
			WillReturnRows(pgxmock.NewRows(walletColumns).
				AddRow(1, 9, "Ethereum", "0xabc", "Trading", now, now))

		wallet, err := r.GetByIDAndUserID(ctx, 1, 9)
		require.NoError(t, err)
		require.NotNil(t, wallet)
		assert.Equal(t, 1, wallet.ID)
		assert.Equal(t, 9, wallet.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows returns nil wallet and nil error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, chain, address, tag").
			WithArgs(1, 7).
			WillReturnError(pgx.ErrNoRows)

		wallet, err := r.GetByIDAndUserID(ctx, 1, 7)
		require.NoError(t, err)
		assert.Nil(t, wallet)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewWalletRepository(mock)
	ctx := context.Background()
	input := dto.WalletInput{Chain: "Solana", Address: "So1anaAddr", Tag: "Trading"}

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("INSERT INTO wallets").
			WithArgs(9, input.Chain, input.Address, input.Tag).
			WillReturnRows(pgxmock.NewRows(walletColumns).
				AddRow(3, 9, "Solana", "So1anaAddr", "Trading", now, now))

		wallet, err := r.Create(ctx, 9, input)
		require.NoError(t, err)
		assert.Equal(t, 3, wallet.ID)
		assert.Equal(t, "Solana", wallet.Chain)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO wallets").
			WithArgs(9, input.Chain, input.Address, input.Tag).
			WillReturnError(errors.New("insert failed"))

		wallet, err := r.Create(ctx, 9, input)
		assert.Error(t, err)
		assert.Nil(t, wallet)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewWalletRepository(mock)
	ctx := context.Background()
	tag := "Cold storage"
	input := dto.WalletUpdateInput{Tag: &tag}

	t.Run("updates only rows matching id and owner", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("UPDATE wallets").
			WithArgs(1, 9, input.Chain, input.Address, input.Tag).
			WillReturnRows(pgxmock.NewRows(walletColumns).
				AddRow(1, 9, "Ethereum", "0xabc", tag, now, now))

		wallet, err := r.Update(ctx, 1, 9, input)
		require.NoError(t, err)
		assert.Equal(t, tag, wallet.Tag)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row returns nil wallet and nil error", func(t *testing.T) {
		mock.ExpectQuery("UPDATE wallets").
			WithArgs(1, 7, input.Chain, input.Address, input.Tag).
			WillReturnError(pgx.ErrNoRows)

		wallet, err := r.Update(ctx, 1, 7, input)
		require.NoError(t, err)
		assert.Nil(t, wallet)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewWalletRepository(mock)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wallets").
			WithArgs(1, 9).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := r.Delete(ctx, 1, 9)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wallets").
			WithArgs(1, 7).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := r.Delete(ctx, 1, 7)
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wallets").
			WithArgs(1, 9).
			WillReturnError(errors.New("connection refused"))

		deleted, err := r.Delete(ctx, 1, 9)
		assert.Error(t, err)
		assert.False(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
