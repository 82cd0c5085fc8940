package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/brigere/shield-api/internal/wallet/domain"
	"github.com/brigere/shield-api/internal/wallet/dto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type WalletRepository struct {
	db DB
}

func NewWalletRepository(db DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) ListByUserID(ctx context.Context, userID int) ([]domain.Wallet, error) {
	query := `
		SELECT id, user_id, chain, address, tag, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Chain, &w.Address, &w.Tag, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wallets: %w", err)
	}

	return wallets, nil
}

func (r *WalletRepository) GetByIDAndUserID(ctx context.Context, id, userID int) (*domain.Wallet, error) {
	query := `
		SELECT id, user_id, chain, address, tag, created_at, updated_at
		FROM wallets
		WHERE id = $1 AND user_id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id, userID)

	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Chain, &w.Address, &w.Tag, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &w, nil
}

func (r *WalletRepository) Create(ctx context.Context, userID int, input dto.WalletInput) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, chain, address, tag, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id, user_id, chain, address, tag, created_at, updated_at;
	`
	row := r.db.QueryRow(ctx, query, userID, input.Chain, input.Address, input.Tag)

	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Chain, &w.Address, &w.Tag, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &w, nil
}

// Update mutates the wallet only when it belongs to userID; the ownership
// match and the write are one statement. Unset fields keep their values.
func (r *WalletRepository) Update(ctx context.Context, id, userID int, input dto.WalletUpdateInput) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET chain = COALESCE($3, chain),
		    address = COALESCE($4, address),
		    tag = COALESCE($5, tag),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, chain, address, tag, created_at, updated_at;
	`
	row := r.db.QueryRow(ctx, query, id, userID, input.Chain, input.Address, input.Tag)

	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Chain, &w.Address, &w.Tag, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &w, nil
}

// Delete reports whether a row was removed; false means the wallet was
// absent or owned by someone else.
func (r *WalletRepository) Delete(ctx context.Context, id, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM wallets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete wallet: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
