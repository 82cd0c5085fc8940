package dto

import "time"

type UserOutput struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type UserProfileOutput struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	User           UserOutput `json:"user"`
	AccessToken    string     `json:"accessToken"`
	RefreshToken   string     `json:"refreshToken"`
	ExpiresInHours int        `json:"expiresIn"`
}
