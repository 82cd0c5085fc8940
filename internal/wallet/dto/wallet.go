package dto

import "time"

type WalletInput struct {
	Chain   string `json:"chain" validate:"required,min=3,max=50"`
	Address string `json:"address" validate:"required"`
	Tag     string `json:"tag" validate:"omitempty,max=100"`
}

// WalletUpdateInput uses pointers so absent fields keep their stored value.
type WalletUpdateInput struct {
	Chain   *string `json:"chain" validate:"omitempty,min=3,max=50"`
	Address *string `json:"address" validate:"omitempty,min=1"`
	Tag     *string `json:"tag" validate:"omitempty,max=100"`
}

type WalletOutput struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Chain     string    `json:"chain"`
	Address   string    `json:"address"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
