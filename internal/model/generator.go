package model

import "github.com/vaultpass/passgen/internal/strength"

// GenerateRequest represents a random password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous *bool `json:"exclude_ambiguous"`
}

// PronounceableRequest represents a pronounceable password generation request.
type PronounceableRequest struct {
	Length     int   `json:"length"`
	Digits     *bool `json:"digits"`
	Symbols    *bool `json:"symbols"`
	Capitalize *bool `json:"capitalize"`
}

// GenerateResponse carries a generated password with its estimated strength.
type GenerateResponse struct {
	Password string         `json:"password"`
	Length   int            `json:"length"`
	Entropy  float64        `json:"entropy"`
	Strength strength.Level `json:"strength"`
}
