package strength

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// Pool sizes assumed for each character category present in a password.
const (
	lowerPool    = 26
	upperPool    = 26
	digitPool    = 10
	symbolPool   = 33
	nonASCIIPool = 100
)

// categories records which character categories occur in a password.
type categories struct {
	lower, upper, digit, symbol, nonASCII bool
}

func classify(password string) categories {
	var c categories
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		case r > unicode.MaxASCII:
			c.nonASCII = true
		case !unicode.IsSpace(r):
			c.symbol = true
		}
	}
	return c
}

// poolSize sums the pool sizes of the present categories.
func (c categories) poolSize() int {
	n := 0
	if c.lower {
		n += lowerPool
	}
	if c.upper {
		n += upperPool
	}
	if c.digit {
		n += digitPool
	}
	if c.symbol {
		n += symbolPool
	}
	if c.nonASCII {
		n += nonASCIIPool
	}
	return n
}

// diversity counts lowercase, uppercase, digit and symbol presence. Non-ASCII is not counted.
func (c categories) diversity() int {
	n := 0
	for _, present := range []bool{c.lower, c.upper, c.digit, c.symbol} {
		if present {
			n++
		}
	}
	return n
}

// entropy is length * log2(pool size), with length counted in runes.
//
// This assumes every character is drawn independently and uniformly from the
// union of the present categories, so it overestimates structured or
// dictionary-like input.
func entropy(password string) float64 {
	if password == "" {
		return 0
	}
	n := classify(password).poolSize()
	if n == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(n))
}
