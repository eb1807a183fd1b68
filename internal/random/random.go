// Package random provides uniform integer sampling for password generation.
//
// The secure source draws from crypto/rand with rejection sampling, so index
// selection stays unbiased for alphabet sizes that are not powers of two. The
// seeded source trades that for reproducibility and exists for testing and
// deterministic runs only.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Secure returns a Source backed by the operating system's CSPRNG.
func Secure() Source {
	return secureSource{}
}

type secureSource struct{}

// IntN draws an unbiased integer in [0, n). crypto/rand failure means the
// platform's entropy source is broken; generating a predictable password in
// that state is worse than stopping.
func (secureSource) IntN(n int) int {
	if n <= 0 {
		panic("random: IntN called with non-positive bound")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("random: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

// Seeded returns a deterministic Source. Identical seeds replay identical
// draw sequences.
func Seeded(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, 0))
}

// NewSeed draws a fresh seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ShuffleBytes permutes b in place with a Fisher-Yates shuffle driven by src.
func ShuffleBytes(src Source, b []byte) {
	for i := len(b) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}
