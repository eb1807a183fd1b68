package generator

import (
	"math"

	"github.com/pwforge/pwforge/internal/charset"
)

// Entropy returns the search-space size of one password, in bits.
//
// Free-form passwords yield length x log2(alphabet size). Patterned
// passwords sum log2 of each position's class size, since every position
// draws from its own pool.
func Entropy(set *charset.CharSet, params Params) float64 {
	switch m := params.Mode.(type) {
	case Patterned:
		bits := 0.0
		for _, class := range m.Pattern {
			if n := len(set.Class(class)); n > 0 {
				bits += math.Log2(float64(n))
			}
		}
		return bits
	default:
		if set.Len() == 0 {
			return 0
		}
		return float64(params.Length) * math.Log2(float64(set.Len()))
	}
}
