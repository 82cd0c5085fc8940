package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/brigere/shield-api/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/brigere/shield-api/internal/auth/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	Generate(userID int, email string) (*dto.TokenPair, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error)
	DecodeUnverified(tokenString string) (*JWTCustomClaims, error)
	RefreshTokenTTL() time.Duration
}

// TokenService signs and verifies the access/refresh token pair. The two
// secrets are distinct, so a token issued under one never verifies under
// the other.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID  int    `json:"user_id"`
	Email   string `json:"email"`
	TokenID string `json:"token_id"`
}

func NewTokenService(accessSecret, refreshSecret string, accessHours, refreshDays int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessHours) * time.Hour,
		RefreshTokenExpiry: time.Duration(refreshDays) * 24 * time.Hour,
	}
}

// Generate issues an access/refresh pair sharing one freshly generated
// token ID. The token ID is the sole revocation key, so every issuance must
// produce a new one even for identical payloads.
func (ts *TokenService) Generate(userID int, email string) (*dto.TokenPair, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	accessClaims := JWTCustomClaims{
		UserID:  userID,
		Email:   email,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refreshClaims := JWTCustomClaims{
		UserID:  userID,
		Email:   email,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		refreshClaims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		ExpiresInHours: int(ts.AccessTokenExpiry / time.Hour),
	}, nil
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

// VerifyRefreshToken mirrors VerifyAccessToken against the refresh secret.
func (ts *TokenService) VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.RefreshTokenSecret)
}

func (ts *TokenService) verify(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// DecodeUnverified extracts the claims without checking signature or
// expiry. Sign-out uses it to recover the token ID from tokens that may
// already be expired; it fails only on structurally malformed input.
func (ts *TokenService) DecodeUnverified(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func (ts *TokenService) RefreshTokenTTL() time.Duration {
	return ts.RefreshTokenExpiry
}
