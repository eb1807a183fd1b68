package generator

import (
	"github.com/pwforge/pwforge/internal/charset"
	"github.com/pwforge/pwforge/internal/pattern"
	"github.com/pwforge/pwforge/internal/random"
)

// maxRejectionAttempts bounds the free-form regeneration loop. Validation
// guarantees minimums fit the length, so in practice a handful of attempts
// suffice; the bound keeps generation terminating even for adversarial
// minimum/length combinations.
const maxRejectionAttempts = 10000

// Generator produces passwords from a fixed alphabet and random source. The
// alphabet is shared read-only across every password of a run; the source is
// owned exclusively by the generator and advanced sequentially.
type Generator struct {
	set *charset.CharSet
	src random.Source
}

// New creates a generator over the given alphabet and source.
func New(set *charset.CharSet, src random.Source) *Generator {
	return &Generator{set: set, src: src}
}

// Generate validates params and produces params.Count passwords.
func (g *Generator) Generate(params Params) ([]string, error) {
	if err := Validate(params, g.set); err != nil {
		return nil, err
	}

	passwords := make([]string, 0, params.Count)
	for i := 0; i < params.Count; i++ {
		switch m := params.Mode.(type) {
		case FreeForm:
			passwords = append(passwords, g.freeForm(params.Length, m))
		case Patterned:
			passwords = append(passwords, g.patterned(m.Pattern))
		}
	}
	return passwords, nil
}

// freeForm samples length characters uniformly from the whole alphabet and
// enforces minimums by rejection: a candidate that misses any minimum is
// thrown away wholesale, which keeps accepted passwords uniform over the set
// of all conforming passwords. After maxRejectionAttempts it falls back to
// placing the required characters and shuffling, trading a little uniformity
// for guaranteed termination.
func (g *Generator) freeForm(length int, m FreeForm) string {
	buf := make([]byte, length)
	chars := g.set.Chars()

	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		for i := range buf {
			buf[i] = chars[g.src.IntN(len(chars))]
		}
		if g.meetsMinimums(buf, m) {
			return string(buf)
		}
	}

	return g.constructive(length, m)
}

func (g *Generator) meetsMinimums(buf []byte, m FreeForm) bool {
	if m.MinCapitals == 0 && m.MinNumerals == 0 && m.MinSymbols == 0 {
		return true
	}

	var counts [4]int
	for _, b := range buf {
		if c, ok := charset.ClassOf(b); ok {
			counts[c]++
		}
	}
	return counts[charset.Uppercase] >= m.MinCapitals &&
		counts[charset.Numeral] >= m.MinNumerals &&
		counts[charset.Symbol] >= m.MinSymbols
}

// constructive builds a conforming password directly: required class members
// first, uniform fill for the rest, then a Fisher-Yates shuffle so required
// characters land at random positions.
func (g *Generator) constructive(length int, m FreeForm) string {
	buf := make([]byte, 0, length)

	required := []struct {
		count int
		class charset.Class
	}{
		{m.MinCapitals, charset.Uppercase},
		{m.MinNumerals, charset.Numeral},
		{m.MinSymbols, charset.Symbol},
	}
	for _, req := range required {
		members := g.set.Class(req.class)
		for i := 0; i < req.count; i++ {
			buf = append(buf, members[g.src.IntN(len(members))])
		}
	}

	chars := g.set.Chars()
	for len(buf) < length {
		buf = append(buf, chars[g.src.IntN(len(chars))])
	}

	random.ShuffleBytes(g.src, buf)
	return string(buf)
}

// patterned draws each position uniformly from the members of its class.
func (g *Generator) patterned(p pattern.Pattern) string {
	buf := make([]byte, len(p))
	for i, class := range p {
		members := g.set.Class(class)
		buf[i] = members[g.src.IntN(len(members))]
	}
	return string(buf)
}
