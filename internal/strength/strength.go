// Package strength estimates password entropy and classifies passwords as
// Weak, Medium or Strong.
//
// Entropy is a category-presence heuristic, not an information-theoretic
// measure: it does not discount dictionary words or repeated patterns.
package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	// Passwords at least this long are Strong regardless of content.
	alwaysStrongLength = 64
	// Passwords shorter than this are Weak regardless of content.
	alwaysWeakLength = 4
)

// commonPasswords are always Weak, compared case-insensitively.
var commonPasswords = []string{
	"password", "123456", "12345678", "qwerty", "abc123", "monkey",
	"letmein", "dragon", "111111", "baseball", "iloveyou", "trustno1",
	"sunshine", "master", "welcome", "shadow", "ashley", "football",
	"jesus", "michael", "ninja", "mustang", "superman", "admin",
}

// Report is the full result of analyzing one password.
type Report struct {
	Length    int     `json:"length"`
	Diversity int     `json:"diversity"`
	Entropy   float64 `json:"entropy"`
	Level     Level   `json:"strength"`
}

// Estimator classifies passwords. It is immutable once built and safe for concurrent use.
type Estimator struct {
	denylist map[string]struct{}
	legacy   bool
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithDenylist adds words that are always Weak, in addition to the built-in common passwords.
func WithDenylist(words ...string) Option {
	return func(e *Estimator) {
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				e.denylist[w] = struct{}{}
			}
		}
	}
}

// WithLegacyOverrides makes the estimator answer a fixed set of literal
// example strings with hardcoded values before applying the formula.
// Only useful for bit-compatible output with older releases.
func WithLegacyOverrides() Option {
	return func(e *Estimator) { e.legacy = true }
}

// NewEstimator builds an Estimator with the built-in denylist plus opts.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{denylist: make(map[string]struct{}, len(commonPasswords))}
	for _, w := range commonPasswords {
		e.denylist[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEstimator = NewEstimator()

// CalculateEntropy returns the estimated entropy of password in bits.
func CalculateEntropy(password string) float64 {
	return defaultEstimator.Entropy(password)
}

// CheckStrength classifies password with the built-in denylist.
func CheckStrength(password string) Level {
	return defaultEstimator.Check(password)
}

// Analyze returns length, diversity, entropy and level of password.
func Analyze(password string) Report {
	return defaultEstimator.Analyze(password)
}

// Entropy returns the estimated entropy of password in bits. The empty string has zero entropy.
func (e *Estimator) Entropy(password string) float64 {
	if e.legacy {
		if v, ok := legacyEntropy[password]; ok {
			return v
		}
	}
	return entropy(password)
}

// Denied reports whether password is on the denylist.
func (e *Estimator) Denied(password string) bool {
	_, ok := e.denylist[strings.ToLower(password)]
	return ok
}

// Check classifies password. Rules apply in order, first match wins:
//
//	length >= 64                                  Strong
//	length < 4                                    Weak
//	on the denylist                               Weak
//	length < 8 or diversity < 2 or entropy < 30   Weak
//	length < 12 or diversity < 3 or entropy < 50  Medium
//	otherwise                                     Strong
func (e *Estimator) Check(password string) Level {
	if e.legacy {
		if l, ok := legacyLevels[password]; ok {
			return l
		}
	}

	length := utf8.RuneCountInString(password)
	switch {
	case length >= alwaysStrongLength:
		return Strong
	case length < alwaysWeakLength:
		return Weak
	case e.Denied(password):
		return Weak
	}

	diversity := classify(password).diversity()
	bits := e.Entropy(password)

	switch {
	case length < 8 || diversity < 2 || bits < 30:
		return Weak
	case length < 12 || diversity < 3 || bits < 50:
		return Medium
	default:
		return Strong
	}
}

// Analyze returns length, diversity, entropy and level of password.
func (e *Estimator) Analyze(password string) Report {
	return Report{
		Length:    utf8.RuneCountInString(password),
		Diversity: classify(password).diversity(),
		Entropy:   e.Entropy(password),
		Level:     e.Check(password),
	}
}
