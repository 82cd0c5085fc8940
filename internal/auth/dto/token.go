package dto

// TokenPair is one issuance: both tokens embed the same token ID.
type TokenPair struct {
	AccessToken    string `json:"accessToken"`
	RefreshToken   string `json:"refreshToken"`
	ExpiresInHours int    `json:"expiresIn"`
}
