package service

import (
	"context"
	"sync/atomic"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/strength"
)

// maxScoredLength limits how much of a password zxcvbn looks at; its cost grows quickly with length.
const maxScoredLength = 50

// StrengthService evaluates passwords against the strength heuristic and the custom denylist.
type StrengthService struct {
	repo      *repository.DenylistRepository
	legacy    bool
	estimator atomic.Pointer[strength.Estimator]
}

// NewStrengthService creates a StrengthService. repo may be nil, in which case
// only the built-in denylist applies.
func NewStrengthService(repo *repository.DenylistRepository, legacy bool) *StrengthService {
	s := &StrengthService{repo: repo, legacy: legacy}
	s.estimator.Store(strength.NewEstimator(s.options()...))
	return s
}

// Reload rebuilds the estimator from the current contents of the denylist table.
func (s *StrengthService) Reload(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}

	s.estimator.Store(strength.NewEstimator(append(s.options(), strength.WithDenylist(words...))...))
	return nil
}

// Analyze returns the heuristic report for password using the current estimator.
func (s *StrengthService) Analyze(password string) strength.Report {
	return s.estimator.Load().Analyze(password)
}

// Check evaluates a submitted password.
func (s *StrengthService) Check(req model.StrengthRequest) model.StrengthResponse {
	est := s.estimator.Load()
	report := est.Analyze(req.Password)

	return model.StrengthResponse{
		Strength:  report.Level,
		Entropy:   report.Entropy,
		Length:    report.Length,
		Diversity: report.Diversity,
		Score:     advisoryScore(req.Password),
		Denied:    est.Denied(req.Password),
	}
}

func (s *StrengthService) options() []strength.Option {
	if s.legacy {
		return []strength.Option{strength.WithLegacyOverrides()}
	}
	return nil
}

// advisoryScore runs zxcvbn over at most the first maxScoredLength runes.
func advisoryScore(password string) int {
	if password == "" {
		return 0
	}
	if utf8.RuneCountInString(password) > maxScoredLength {
		password = string([]rune(password)[:maxScoredLength])
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
