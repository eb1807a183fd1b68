// Package pattern parses positional class patterns like "LLLNNNSSS".
//
// Each letter fixes the character class for one password position:
// L lowercase, U uppercase, N numeral, S symbol (case-insensitive).
package pattern

import (
	"errors"
	"fmt"

	"github.com/pwforge/pwforge/internal/charset"
)

var (
	// ErrInvalidPatternCharacter reports a pattern letter outside L/U/N/S.
	ErrInvalidPatternCharacter = errors.New("invalid pattern character")

	// ErrEmptyPattern reports a pattern with no positions.
	ErrEmptyPattern = errors.New("pattern must contain at least one position")
)

// Pattern is an ordered per-position class constraint. Its length is the
// generated password's length.
type Pattern []charset.Class

// Parse maps a pattern string onto its class sequence.
func Parse(s string) (Pattern, error) {
	if s == "" {
		return nil, ErrEmptyPattern
	}

	p := make(Pattern, 0, len(s))
	for i, r := range s {
		switch r {
		case 'L', 'l':
			p = append(p, charset.Lowercase)
		case 'U', 'u':
			p = append(p, charset.Uppercase)
		case 'N', 'n':
			p = append(p, charset.Numeral)
		case 'S', 's':
			p = append(p, charset.Symbol)
		default:
			return nil, fmt.Errorf("%w: %q at position %d (use L, U, N or S)", ErrInvalidPatternCharacter, r, i)
		}
	}
	return p, nil
}

// Classes returns the distinct classes the pattern requires, in first-use order.
func (p Pattern) Classes() []charset.Class {
	var seen [4]bool
	var out []charset.Class
	for _, c := range p {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
