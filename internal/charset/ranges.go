package charset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRangeSpec reports a malformed character range specification.
var ErrInvalidRangeSpec = errors.New("invalid range specification")

// ParseRanges expands a comma-separated specification of characters and
// ranges into a duplicate-free character list, in first-seen order.
//
// Each token is either a range "x-y" (two single characters, expanded
// inclusively by code point) or a run of literal characters:
//
//	"a-z"       all lowercase letters
//	"0-9,x"     all digits plus 'x'
//	"abc"       'a', 'b', 'c'
//
// Ranges only expand between printable ASCII endpoints; a range whose start
// sorts after its end is an error.
func ParseRanges(spec string) ([]byte, error) {
	var out []byte
	seen := make(map[byte]bool)

	add := func(b byte) {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}

	for _, token := range strings.Split(spec, ",") {
		if token == "" {
			return nil, fmt.Errorf("%w: empty token in %q", ErrInvalidRangeSpec, spec)
		}

		if len(token) == 3 && token[1] == '-' {
			start, end := token[0], token[2]
			if start > end {
				return nil, fmt.Errorf("%w: range %q starts after it ends", ErrInvalidRangeSpec, token)
			}
			if start >= ' ' && end < 0x7f {
				for b := start; b <= end; b++ {
					add(b)
				}
				continue
			}
			// Non-printable endpoints: fall through and take the token literally.
		}

		for i := 0; i < len(token); i++ {
			add(token[i])
		}
	}

	return out, nil
}
