package filter

import (
	"github.com/ksakata/winnow/internal/lcg"
	"github.com/ksakata/winnow/internal/token"
)

// Random shuffles the sequence with the deterministic generator: the
// same seed and input always produce the same permutation, which is why
// the shuffle does not use the platform's stock generator.
type Random struct {
	src *lcg.Source
}

// NewRandom returns a shuffle command with a fixed seed.
func NewRandom(seed uint32) *Random {
	return &Random{src: lcg.New(seed)}
}

// NewRandomFromTime returns a shuffle command seeded from the clock.
func NewRandomFromTime() *Random {
	return &Random{src: lcg.NewFromTime()}
}

func (c *Random) Execute(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)
	c.src.Shuffle(out)
	return out, nil
}
