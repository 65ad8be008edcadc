package model

import "time"

// BannedPassword is a custom denylist entry in the database.
type BannedPassword struct {
	ID        int64
	Word      string
	CreatedAt time.Time
}

// DenylistRequest represents a request to ban a word.
type DenylistRequest struct {
	Word string `json:"word"`
}

// DenylistEntryResponse is a denylist entry safe for API responses.
type DenylistEntryResponse struct {
	Word      string    `json:"word"`
	CreatedAt time.Time `json:"created_at"`
}
