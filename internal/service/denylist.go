package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

const maxWordLength = 128

var (
	ErrWordRequired = errors.New("word is required")
	ErrWordTooLong  = fmt.Errorf("word must be at most %d characters", maxWordLength)
	ErrWordExists   = errors.New("word already banned")
	ErrWordNotFound = errors.New("word not found")
)

// DenylistService manages the custom banned-password list and keeps the
// strength estimator in step with it.
type DenylistService struct {
	repo     *repository.DenylistRepository
	strength *StrengthService
}

// NewDenylistService creates a new DenylistService.
func NewDenylistService(repo *repository.DenylistRepository, strength *StrengthService) *DenylistService {
	return &DenylistService{repo: repo, strength: strength}
}

// List returns every custom banned word.
func (s *DenylistService) List(ctx context.Context) ([]model.DenylistEntryResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.DenylistEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = model.DenylistEntryResponse{Word: e.Word, CreatedAt: e.CreatedAt}
	}
	return result, nil
}

// Add bans a word. Words are stored trimmed and lowercased.
func (s *DenylistService) Add(ctx context.Context, req model.DenylistRequest) (model.DenylistEntryResponse, error) {
	word, err := normalizeWord(req.Word)
	if err != nil {
		return model.DenylistEntryResponse{}, err
	}

	entry, err := s.repo.Add(ctx, word)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateWord) {
			return model.DenylistEntryResponse{}, ErrWordExists
		}
		return model.DenylistEntryResponse{}, err
	}

	s.reload(ctx)

	return model.DenylistEntryResponse{Word: entry.Word, CreatedAt: entry.CreatedAt}, nil
}

// Remove lifts the ban on a word.
func (s *DenylistService) Remove(ctx context.Context, word string) error {
	word, err := normalizeWord(word)
	if err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, word); err != nil {
		if errors.Is(err, repository.ErrWordNotFound) {
			return ErrWordNotFound
		}
		return err
	}

	s.reload(ctx)
	return nil
}

// reload refreshes the estimator. A failure keeps the previous estimator; the
// change is already stored and will be picked up by the next successful reload.
func (s *DenylistService) reload(ctx context.Context) {
	if err := s.strength.Reload(ctx); err != nil {
		slog.Warn("denylist reload failed", "error", err)
	}
}

func normalizeWord(word string) (string, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", ErrWordRequired
	}
	if utf8.RuneCountInString(word) > maxWordLength {
		return "", ErrWordTooLong
	}
	return word, nil
}
