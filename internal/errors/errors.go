package errors

import (
	"errors"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	// ErrWalletNotFound is returned for wallets that do not exist and for
	// wallets owned by someone else; callers cannot tell the two apart.
	ErrWalletNotFound = errors.New("wallet not found or access denied")
)

// ValidationError carries a field-level message safe to return to clients,
// e.g. a violated password strength rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
