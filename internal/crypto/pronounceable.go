package crypto

import (
	"strings"
	"unicode"
)

const (
	consonants = "bcdfghjklmnpqrstvwxz"
	vowels     = "aeiouy"

	// injectedSymbols is the set used when symbols are mixed into a pronounceable password.
	injectedSymbols = "!@#$%^&*()-_=+[]{}|;:,.<>/?"
)

// syllablePatterns are consonant (C) / vowel (V) templates for synthesized syllables.
var syllablePatterns = []string{"CV", "CVC", "VC", "CVV", "VCC"}

var commonSyllables = []string{
	"an", "ar", "at", "ca", "co", "de", "di", "ed", "en", "er", "es", "et",
	"in", "is", "it", "la", "le", "ma", "me", "mi", "mo", "na", "ne", "no",
	"on", "or", "pe", "ra", "re", "ri", "ro", "se", "sh", "si", "so", "st",
	"ta", "te", "th", "ti", "to", "tr", "un", "ve", "vi", "wa", "wi",
}

// PronounceableOptions configures the syllable-based generator.
type PronounceableOptions struct {
	Length     int
	Digits     bool
	Symbols    bool
	Capitalize bool
}

// DefaultPronounceableOptions returns 12 lowercase characters with no digits or symbols.
func DefaultPronounceableOptions() PronounceableOptions {
	return PronounceableOptions{Length: DefaultLength}
}

// GeneratePronounceable builds a password from random syllables truncated to
// the requested length, then applies digits, symbols and capitalization in
// that order. The result is always exactly opts.Length characters.
func GeneratePronounceable(opts PronounceableOptions) (string, error) {
	if err := validateLength(opts.Length); err != nil {
		return "", err
	}

	var body strings.Builder
	for body.Len() < opts.Length {
		syl, err := syllable()
		if err != nil {
			return "", err
		}
		body.WriteString(syl)
	}

	// Truncation may split the last syllable.
	password := []byte(body.String()[:opts.Length])

	if opts.Digits {
		if err := inject(password, digitChars, clamp(opts.Length/8, 1, 3), ""); err != nil {
			return "", err
		}
	}

	// Symbols never land on an injected digit, so both stay present.
	if opts.Symbols {
		if err := inject(password, injectedSymbols, clamp(opts.Length/12, 1, 2), digitChars); err != nil {
			return "", err
		}
	}

	if opts.Capitalize {
		if err := capitalize(password); err != nil {
			return "", err
		}
	}

	return string(password), nil
}

// syllable returns a common syllable 70% of the time and a pattern-built one otherwise.
func syllable() (string, error) {
	roll, err := randIntn(10)
	if err != nil {
		return "", err
	}
	if roll < 7 {
		i, err := randIntn(len(commonSyllables))
		if err != nil {
			return "", err
		}
		return commonSyllables[i], nil
	}

	i, err := randIntn(len(syllablePatterns))
	if err != nil {
		return "", err
	}
	pattern := syllablePatterns[i]

	out := make([]byte, len(pattern))
	for j := 0; j < len(pattern); j++ {
		charset := vowels
		if pattern[j] == 'C' {
			charset = consonants
		}
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		out[j] = ch
	}

	return string(out), nil
}

// inject overwrites count random positions of password with characters from charset.
// Positions holding a character from keep are left alone. The rest are drawn
// independently and may repeat.
func inject(password []byte, charset string, count int, keep string) error {
	var positions []int
	for i, c := range password {
		if strings.IndexByte(keep, c) < 0 {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return nil
	}

	for i := 0; i < count; i++ {
		j, err := randIntn(len(positions))
		if err != nil {
			return err
		}
		pos := positions[j]
		ch, err := randChar(charset)
		if err != nil {
			return err
		}
		password[pos] = ch
	}
	return nil
}

// capitalize uppercases ceil(30%) of the letters, at least one.
func capitalize(password []byte) error {
	var letters []int
	for i, c := range password {
		if unicode.IsLetter(rune(c)) {
			letters = append(letters, i)
		}
	}
	if len(letters) == 0 {
		return nil
	}

	n := max((3*len(letters)+9)/10, 1)
	picked, err := randSample(letters, n)
	if err != nil {
		return err
	}
	for _, pos := range picked {
		password[pos] = byte(unicode.ToUpper(rune(password[pos])))
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
