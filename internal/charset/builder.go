package charset

import "errors"

// ErrEmptyCharacterSet reports that every candidate character was disabled or
// excluded, leaving nothing to sample from.
var ErrEmptyCharacterSet = errors.New("all characters have been excluded or disabled")

// Options control which characters make up the alphabet.
//
// Lowercase letters are always part of the default composition; the Off flags
// remove the other classes. Include, when set, replaces the class composition
// entirely with exactly the characters it names. Exclude subtracts from the
// result of either path.
type Options struct {
	CapitalsOff bool
	NumeralsOff bool
	SymbolsOff  bool

	// Exclude and Include are range specifications as understood by
	// ParseRanges ("a-z,0-9,x").
	Exclude string
	Include string
}

// Build assembles the alphabet described by opts.
func Build(opts Options) (*CharSet, error) {
	var working []byte

	if opts.Include != "" {
		include, err := ParseRanges(opts.Include)
		if err != nil {
			return nil, err
		}
		working = include
	} else {
		working = append(working, lowercaseChars...)
		if !opts.CapitalsOff {
			working = append(working, uppercaseChars...)
		}
		if !opts.NumeralsOff {
			working = append(working, numeralChars...)
		}
		if !opts.SymbolsOff {
			working = append(working, symbolChars...)
		}
	}

	excluded := make(map[byte]bool)
	if opts.Exclude != "" {
		exclude, err := ParseRanges(opts.Exclude)
		if err != nil {
			return nil, err
		}
		for _, b := range exclude {
			excluded[b] = true
		}
	}

	chars := make([]byte, 0, len(working))
	seen := make(map[byte]bool, len(working))
	for _, b := range working {
		if excluded[b] || seen[b] {
			continue
		}
		seen[b] = true
		chars = append(chars, b)
	}

	if len(chars) == 0 {
		return nil, ErrEmptyCharacterSet
	}

	return newCharSet(chars), nil
}
