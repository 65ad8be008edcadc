package model

import "time"

// TokenRequest represents an admin token request.
type TokenRequest struct {
	Secret string `json:"secret"`
}

// TokenResponse represents an issued admin token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
