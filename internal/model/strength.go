package model

import "github.com/vaultpass/passgen/internal/strength"

// StrengthRequest represents a password strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents the analysis of a submitted password.
// Score is the advisory zxcvbn score from 0 (too guessable) to 4.
type StrengthResponse struct {
	Strength  strength.Level `json:"strength"`
	Entropy   float64        `json:"entropy"`
	Length    int            `json:"length"`
	Diversity int            `json:"diversity"`
	Score     int            `json:"score"`
	Denied    bool           `json:"denied,omitempty"`
}
