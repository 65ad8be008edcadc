package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Characters dropped from each class when ExcludeAmbiguous is set.
	ambiguousUppercase = "OI"
	ambiguousLowercase = "l"
	ambiguousDigits    = "01"
	ambiguousSymbols   = "|`'\",;:~-_=+()[]{}<>"

	MinLength = 4
	MaxLength = 64

	DefaultLength = 12
)

var (
	ErrLengthOutOfRange = errors.New("password length out of range")
	ErrLengthTooShort   = fmt.Errorf("%w: must be at least %d characters", ErrLengthOutOfRange, MinLength)
	ErrLengthTooLong    = fmt.Errorf("%w: cannot exceed %d characters", ErrLengthOutOfRange, MaxLength)
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// GeneratorOptions configures the random password generator.
type GeneratorOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns the defaults: 12 characters, every class enabled, ambiguous characters kept.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Generate creates a random password by sampling every character independently
// and uniformly from the pool assembled from the enabled classes.
//
// Sampling is done with replacement, so an enabled class is not guaranteed to
// appear in the result.
func Generate(opts GeneratorOptions) (string, error) {
	if err := validateLength(opts.Length); err != nil {
		return "", err
	}

	pool := buildPool(opts)
	if pool == "" {
		return "", ErrNoCharacterTypes
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// buildPool concatenates the alphabets of the enabled classes in a fixed order.
func buildPool(opts GeneratorOptions) string {
	var sb strings.Builder

	classes := []struct {
		enabled   bool
		chars     string
		ambiguous string
	}{
		{opts.Uppercase, uppercaseChars, ambiguousUppercase},
		{opts.Lowercase, lowercaseChars, ambiguousLowercase},
		{opts.Digits, digitChars, ambiguousDigits},
		{opts.Symbols, symbolChars, ambiguousSymbols},
	}

	for _, c := range classes {
		if !c.enabled {
			continue
		}
		if opts.ExcludeAmbiguous {
			sb.WriteString(without(c.chars, c.ambiguous))
			continue
		}
		sb.WriteString(c.chars)
	}

	return sb.String()
}

// without returns charset with every character of exclude removed.
func without(charset, exclude string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(exclude, r) {
			return -1
		}
		return r
	}, charset)
}

func validateLength(length int) error {
	if length < MinLength {
		return ErrLengthTooShort
	}
	if length > MaxLength {
		return ErrLengthTooLong
	}
	return nil
}
