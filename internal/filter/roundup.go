package filter

import (
	"math"

	"github.com/ksakata/winnow/internal/token"
)

// DefaultPrecision is the number of decimal digits weights are rounded
// to when none is configured.
const DefaultPrecision = 2

// RoundUp rounds every token's strength to a fixed number of decimal
// digits. It is appended as the final stage of every pipeline so weight
// formatting is normalized before output. Precision validation happens
// at configuration time, before any token is processed.
type RoundUp struct {
	precision int
}

// NewRoundUp returns a rounding command. Precision 0 rounds to the
// nearest integer.
func NewRoundUp(precision int) *RoundUp {
	return &RoundUp{precision: precision}
}

func (c *RoundUp) Execute(tokens []token.Token) ([]token.Token, error) {
	pow := math.Pow(10, float64(c.precision))
	if math.IsInf(pow, 0) {
		// Beyond float64 range rounding cannot change the value;
		// pass the weights through instead of poisoning them.
		out := make([]token.Token, len(tokens))
		copy(out, tokens)
		return out, nil
	}
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.WithStrength(math.Round(t.Strength()*pow)/pow))
	}
	return out, nil
}
