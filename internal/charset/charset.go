// Package charset builds the alphabet a password is sampled from.
//
// The four character classes (lowercase, uppercase, numerals, symbols) are
// fixed ASCII ranges. A CharSet is the deduplicated, ordered subset of those
// classes that survives the caller's include/exclude configuration.
package charset

// Class identifies one of the disjoint character classes.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Numeral
	Symbol

	numClasses
)

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Numeral:
		return "numeral"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Fixed ASCII class tables. Symbols cover the four printable punctuation
// ranges between the alphanumeric blocks: !-/ :-@ [-` {-~
var (
	lowercaseChars = byteRange('a', 'z')
	uppercaseChars = byteRange('A', 'Z')
	numeralChars   = byteRange('0', '9')
	symbolChars    = joinRanges(
		byteRange('!', '/'),
		byteRange(':', '@'),
		byteRange('[', '`'),
		byteRange('{', '~'),
	)
)

func byteRange(start, end byte) []byte {
	out := make([]byte, 0, end-start+1)
	for b := start; b <= end; b++ {
		out = append(out, b)
	}
	return out
}

func joinRanges(ranges ...[]byte) []byte {
	var out []byte
	for _, r := range ranges {
		out = append(out, r...)
	}
	return out
}

// ClassChars returns the full, unfiltered table for a class.
func ClassChars(c Class) []byte {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Numeral:
		return numeralChars
	case Symbol:
		return symbolChars
	default:
		return nil
	}
}

// ClassOf reports which class a character belongs to. Characters outside the
// four tables (space, control bytes, non-ASCII) belong to no class.
func ClassOf(b byte) (Class, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return Lowercase, true
	case b >= 'A' && b <= 'Z':
		return Uppercase, true
	case b >= '0' && b <= '9':
		return Numeral, true
	case (b >= '!' && b <= '/') || (b >= ':' && b <= '@') || (b >= '[' && b <= '`') || (b >= '{' && b <= '~'):
		return Symbol, true
	default:
		return 0, false
	}
}

// CharSet is the alphabet passwords are drawn from: an ordered,
// duplicate-free character sequence plus its per-class breakdown.
type CharSet struct {
	all     []byte
	byClass [numClasses][]byte
}

func newCharSet(chars []byte) *CharSet {
	s := &CharSet{all: chars}
	for _, b := range chars {
		if c, ok := ClassOf(b); ok {
			s.byClass[c] = append(s.byClass[c], b)
		}
	}
	return s
}

// Chars returns the full alphabet in its fixed order.
func (s *CharSet) Chars() []byte { return s.all }

// Len returns the alphabet size.
func (s *CharSet) Len() int { return len(s.all) }

// Class returns the alphabet members belonging to the given class.
func (s *CharSet) Class(c Class) []byte { return s.byClass[c] }

// HasClass reports whether any member of the class survived into the alphabet.
func (s *CharSet) HasClass(c Class) bool { return len(s.byClass[c]) > 0 }
