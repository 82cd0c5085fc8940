package domain

import "time"

// Wallet is a blockchain address owned by a single user. All access is
// scoped by UserID.
type Wallet struct {
	ID        int
	UserID    int
	Chain     string
	Address   string
	Tag       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
