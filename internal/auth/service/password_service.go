package service

import (
	"strings"
	"unicode"

	autherror "github.com/brigere/shield-api/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordMinLength = 6
	specialCharacters = `!@#$%^&*(),.?":{}|<>`
)

// PasswordService hashes, verifies, and strength-checks passwords. It does
// no I/O; bcrypt owns the salting so two hashes of one password differ.
type PasswordService struct {
	cost int
}

func NewPasswordService() *PasswordService {
	return &PasswordService{cost: 10}
}

func (s *PasswordService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// ComparePassword reports whether plain matches the stored bcrypt hash.
func (s *PasswordService) ComparePassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidateStrength checks rules in a fixed order and returns only the first
// violated rule: length, uppercase, lowercase, digit, special character.
func (s *PasswordService) ValidateStrength(plain string) error {
	if len(plain) < passwordMinLength {
		return autherror.NewValidationError("Password must be at least 6 characters long")
	}

	if !containsFunc(plain, unicode.IsUpper) {
		return autherror.NewValidationError("Password must contain at least one uppercase letter")
	}

	if !containsFunc(plain, unicode.IsLower) {
		return autherror.NewValidationError("Password must contain at least one lowercase letter")
	}

	if !containsFunc(plain, unicode.IsDigit) {
		return autherror.NewValidationError("Password must contain at least one number")
	}

	if !strings.ContainsAny(plain, specialCharacters) {
		return autherror.NewValidationError("Password must contain at least one special character")
	}

	return nil
}

func containsFunc(s string, f func(rune) bool) bool {
	return strings.IndexFunc(s, f) >= 0
}
