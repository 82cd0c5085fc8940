package service

import (
	"context"

	"github.com/brigere/shield-api/internal/auth/domain"
	"github.com/brigere/shield-api/internal/auth/dto"
	autherror "github.com/brigere/shield-api/internal/errors"
	"github.com/rs/zerolog"
)

// UserService orchestrates registration, login and sign-out over the
// credential store, the password manager, the token service and the
// revocation denylist.
type UserService struct {
	repo        domain.UserRepository
	tokens      TokenGenerator
	passwords   *PasswordService
	revocations domain.RevocationStore
	log         zerolog.Logger
}

func NewUserService(
	repo domain.UserRepository,
	tokens TokenGenerator,
	passwords *PasswordService,
	revocations domain.RevocationStore,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		tokens:      tokens,
		passwords:   passwords,
		revocations: revocations,
		log:         log,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to look up email during registration")
		return nil, err
	}
	if existing != nil {
		s.log.Warn().Str("email", input.Email).Msg("registration failed: email already exists")
		return nil, autherror.ErrEmailAlreadyInUse
	}

	if err := s.passwords.ValidateStrength(input.Password); err != nil {
		s.log.Info().Str("email", input.Email).Msg("registration failed: weak password")
		return nil, err
	}

	hash, err := s.passwords.HashPassword(input.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to hash password")
		return nil, err
	}

	user, err := s.repo.Create(ctx, input.Email, hash)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to persist user")
		return nil, err
	}

	pair, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", user.ID).Msg("failed to issue tokens")
		return nil, err
	}

	s.log.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("user registered")

	return authResponse(user, pair), nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to look up email during login")
		return nil, err
	}

	// Unknown email and wrong password take the same path so the response
	// cannot reveal which one failed.
	if user == nil || !s.passwords.ComparePassword(input.Password, user.PasswordHash) {
		s.log.Warn().Str("email", input.Email).Msg("login failed")
		return nil, autherror.ErrInvalidCredentials
	}

	pair, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", user.ID).Msg("failed to issue tokens")
		return nil, err
	}

	s.log.Info().Int("user_id", user.ID).Msg("user logged in")

	return authResponse(user, pair), nil
}

// SignOut puts the token's ID on the revocation denylist. The token is
// decoded without signature or expiry checks: a client holding a recently
// expired token must still be able to revoke the pair. Failures come back
// as false, never as an error.
func (s *UserService) SignOut(ctx context.Context, accessToken string) bool {
	claims, err := s.tokens.DecodeUnverified(accessToken)
	if err != nil || claims.TokenID == "" {
		s.log.Warn().Msg("sign-out with undecodable token")
		return false
	}

	// The denylist entry must outlive the refresh token, the longest-lived
	// holder of this token ID.
	if err := s.revocations.Revoke(ctx, claims.TokenID, s.tokens.RefreshTokenTTL()); err != nil {
		s.log.Error().Err(err).Str("token_id", claims.TokenID).Msg("failed to revoke token")
		return false
	}

	s.log.Info().Int("user_id", claims.UserID).Str("token_id", claims.TokenID).Msg("user signed out")

	return true
}

func authResponse(user *domain.User, pair *dto.TokenPair) *dto.AuthResponse {
	return &dto.AuthResponse{
		User:           dto.UserOutput{ID: user.ID, Email: user.Email},
		AccessToken:    pair.AccessToken,
		RefreshToken:   pair.RefreshToken,
		ExpiresInHours: pair.ExpiresInHours,
	}
}
