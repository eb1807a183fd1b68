// Package generator produces passwords from a built alphabet.
//
// Generation runs in one of two modes: free-form sampling over the whole
// alphabet with optional per-class minimum counts, or pattern-constrained
// sampling where every position is pinned to one class. All parameters are
// validated before the first random draw.
package generator

import (
	"errors"
	"fmt"

	"github.com/pwforge/pwforge/internal/charset"
	"github.com/pwforge/pwforge/internal/pattern"
)

// MaxLength caps password length to keep memory use bounded.
const MaxLength = 10000

var (
	// ErrLengthOutOfBounds reports a length outside 1..MaxLength.
	ErrLengthOutOfBounds = errors.New("password length out of bounds")

	// ErrCountOutOfBounds reports a non-positive password count.
	ErrCountOutOfBounds = errors.New("password count must be greater than 0")

	// ErrUnsatisfiableMinimum reports a minimum count for a class with no
	// characters left in the alphabet.
	ErrUnsatisfiableMinimum = errors.New("minimum requested for unavailable class")

	// ErrMinimumsExceedLength reports minimum counts that sum past the length.
	ErrMinimumsExceedLength = errors.New("minimum requirements exceed password length")

	// ErrClassUnavailable reports a pattern class with no characters left in
	// the alphabet.
	ErrClassUnavailable = errors.New("pattern requires a class with no available characters")

	// ErrPatternLengthMismatch reports a pattern whose length disagrees with
	// an explicitly requested password length.
	ErrPatternLengthMismatch = errors.New("pattern length does not match requested length")
)

// Mode selects how positions are constrained during generation. It is a
// sealed two-variant type so free-form minimums and patterns cannot be
// combined by accident.
type Mode interface {
	mode()
}

// FreeForm samples every position from the whole alphabet and enforces
// optional per-class minimum counts. A zero minimum is no constraint.
type FreeForm struct {
	MinCapitals int
	MinNumerals int
	MinSymbols  int
}

func (FreeForm) mode() {}

// Patterned pins each position to the class the pattern names.
type Patterned struct {
	Pattern pattern.Pattern
}

func (Patterned) mode() {}

// Params describes one generation request.
type Params struct {
	Length int
	Count  int
	Mode   Mode
}

// Validate checks params against the alphabet. It fails fast: any error is
// reported before a single character is sampled.
func Validate(params Params, set *charset.CharSet) error {
	if params.Length <= 0 || params.Length > MaxLength {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrLengthOutOfBounds, params.Length, MaxLength)
	}
	if params.Count <= 0 {
		return fmt.Errorf("%w: got %d", ErrCountOutOfBounds, params.Count)
	}

	switch m := params.Mode.(type) {
	case FreeForm:
		return validateMinimums(m, params.Length, set)
	case Patterned:
		return validatePattern(m.Pattern, params.Length, set)
	case nil:
		return errors.New("generation mode is not set")
	default:
		return fmt.Errorf("unknown generation mode %T", params.Mode)
	}
}

func validateMinimums(m FreeForm, length int, set *charset.CharSet) error {
	minimums := []struct {
		count int
		class charset.Class
	}{
		{m.MinCapitals, charset.Uppercase},
		{m.MinNumerals, charset.Numeral},
		{m.MinSymbols, charset.Symbol},
	}

	total := 0
	for _, req := range minimums {
		if req.count < 0 {
			return fmt.Errorf("%w: negative minimum for %s characters", ErrUnsatisfiableMinimum, req.class)
		}
		if req.count > 0 && !set.HasClass(req.class) {
			return fmt.Errorf("%w: %d %s characters requested but none are available", ErrUnsatisfiableMinimum, req.count, req.class)
		}
		total += req.count
	}

	if total > length {
		return fmt.Errorf("%w: minimums sum to %d but length is %d", ErrMinimumsExceedLength, total, length)
	}
	return nil
}

func validatePattern(p pattern.Pattern, length int, set *charset.CharSet) error {
	if len(p) != length {
		return fmt.Errorf("%w: pattern has %d positions, length is %d", ErrPatternLengthMismatch, len(p), length)
	}
	for _, class := range p.Classes() {
		if !set.HasClass(class) {
			return fmt.Errorf("%w: %s", ErrClassUnavailable, class)
		}
	}
	return nil
}
