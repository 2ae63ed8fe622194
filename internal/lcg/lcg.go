// Package lcg implements a small linear-congruential generator. The
// shuffle filter uses it instead of math/rand so a fixed seed yields
// the same permutation on every platform and release.
package lcg

import (
	"time"

	"github.com/ksakata/winnow/internal/token"
)

// Numerical Recipes constants, modulus 2^32.
const (
	multiplier = 1664525
	increment  = 1013904223
)

// Source is a deterministic pseudo-random sequence seeded at
// construction. Not safe for concurrent use.
type Source struct {
	state uint32
}

// New returns a source seeded with the given value.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// NewFromTime returns a source seeded from the current wall clock, for
// callers that do not need reproducibility.
func NewFromTime() *Source {
	return New(uint32(time.Now().UnixNano()))
}

// Next advances the generator and returns the next value.
func (s *Source) Next() uint32 {
	s.state = s.state*multiplier + increment
	return s.state
}

// Intn returns a value in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return int(s.Next() % uint32(n))
}

// Shuffle permutes tokens in place with a Fisher-Yates walk. The result
// is a permutation of the input: same length, same multiset.
func (s *Source) Shuffle(tokens []token.Token) {
	for i := len(tokens) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}
