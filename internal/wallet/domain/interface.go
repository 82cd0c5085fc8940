package domain

//go:generate mockgen -destination=../../mocks/mock_wallet_repository.go -package=mocks github.com/brigere/shield-api/internal/wallet/domain WalletRepository

import (
	"context"

	"github.com/brigere/shield-api/internal/wallet/dto"
)

// WalletRepository owns all wallet persistence. Update and Delete match on
// both wallet ID and owner ID in a single statement, so there is no window
// between the ownership check and the mutation.
type WalletRepository interface {
	ListByUserID(ctx context.Context, userID int) ([]Wallet, error)
	// GetByIDAndUserID returns (nil, nil) when the wallet does not exist or
	// belongs to a different user.
	GetByIDAndUserID(ctx context.Context, id, userID int) (*Wallet, error)
	Create(ctx context.Context, userID int, input dto.WalletInput) (*Wallet, error)
	Update(ctx context.Context, id, userID int, input dto.WalletUpdateInput) (*Wallet, error)
	Delete(ctx context.Context, id, userID int) (bool, error)
}
