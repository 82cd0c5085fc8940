package service

import (
	"context"

	apperror "github.com/brigere/shield-api/internal/errors"
	"github.com/brigere/shield-api/internal/wallet/domain"
	"github.com/brigere/shield-api/internal/wallet/dto"
	"github.com/rs/zerolog"
)

// WalletService is ownership-scoped CRUD over wallet addresses. Absence and
// foreign ownership both surface as ErrWalletNotFound.
type WalletService struct {
	repo domain.WalletRepository
	log  zerolog.Logger
}

func NewWalletService(repo domain.WalletRepository, log zerolog.Logger) *WalletService {
	return &WalletService{repo: repo, log: log}
}

func (s *WalletService) List(ctx context.Context, userID int) ([]domain.Wallet, error) {
	wallets, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("failed to list wallets")
		return nil, err
	}

	s.log.Info().Int("user_id", userID).Int("count", len(wallets)).Msg("wallets listed")

	return wallets, nil
}

func (s *WalletService) Get(ctx context.Context, id, userID int) (*domain.Wallet, error) {
	wallet, err := s.repo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		s.log.Error().Err(err).Int("wallet_id", id).Msg("failed to get wallet")
		return nil, err
	}
	if wallet == nil {
		s.log.Warn().Int("wallet_id", id).Int("user_id", userID).Msg("wallet not found or not owned")
		return nil, apperror.ErrWalletNotFound
	}

	return wallet, nil
}

func (s *WalletService) Create(ctx context.Context, userID int, input dto.WalletInput) (*domain.Wallet, error) {
	wallet, err := s.repo.Create(ctx, userID, input)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("failed to create wallet")
		return nil, err
	}

	s.log.Info().Int("user_id", userID).Int("wallet_id", wallet.ID).Str("chain", wallet.Chain).Msg("wallet created")

	return wallet, nil
}

func (s *WalletService) Update(ctx context.Context, id, userID int, input dto.WalletUpdateInput) (*domain.Wallet, error) {
	wallet, err := s.repo.Update(ctx, id, userID, input)
	if err != nil {
		s.log.Error().Err(err).Int("wallet_id", id).Msg("failed to update wallet")
		return nil, err
	}
	if wallet == nil {
		s.log.Warn().Int("wallet_id", id).Int("user_id", userID).Msg("wallet not found or not owned")
		return nil, apperror.ErrWalletNotFound
	}

	s.log.Info().Int("user_id", userID).Int("wallet_id", id).Msg("wallet updated")

	return wallet, nil
}

func (s *WalletService) Delete(ctx context.Context, id, userID int) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		s.log.Error().Err(err).Int("wallet_id", id).Msg("failed to delete wallet")
		return err
	}
	if !deleted {
		s.log.Warn().Int("wallet_id", id).Int("user_id", userID).Msg("wallet not found or not owned")
		return apperror.ErrWalletNotFound
	}

	s.log.Info().Int("user_id", userID).Int("wallet_id", id).Msg("wallet deleted")

	return nil
}
