package service

//go:generate mockgen -destination=../../mocks/mock_user_reader.go -package=mocks github.com/brigere/shield-api/internal/user/service UserReader

import (
	"context"

	"github.com/brigere/shield-api/internal/auth/domain"
	apperror "github.com/brigere/shield-api/internal/errors"
	"github.com/rs/zerolog"
)

type UserReader interface {
	List(ctx context.Context, limit, skip int) ([]domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

type UserService struct {
	repo UserReader
	log  zerolog.Logger
}

func NewUserService(repo UserReader, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// List returns a page of users. Limit and skip are clamped to sane values.
func (s *UserService) List(ctx context.Context, limit, skip int) ([]domain.User, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if skip < 0 {
		skip = 0
	}

	users, err := s.repo.List(ctx, limit, skip)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	s.log.Info().Int("limit", limit).Int("skip", skip).Int("count", len(users)).Msg("users listed")

	return users, nil
}

func (s *UserService) Profile(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", id).Msg("failed to load profile")
		return nil, err
	}
	if user == nil {
		s.log.Warn().Int("user_id", id).Msg("profile requested for missing user")
		return nil, apperror.ErrUserNotFound
	}

	return user, nil
}
