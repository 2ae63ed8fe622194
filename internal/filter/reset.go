package filter

import (
	"fmt"
	"math"

	"github.com/ksakata/winnow/internal/token"
)

// Reset overwrites every token's strength with a fixed value, names
// unchanged.
type Reset struct {
	value float64
}

// NewReset returns a reset command for the given value.
func NewReset(value float64) *Reset {
	return &Reset{value: value}
}

func (c *Reset) Execute(tokens []token.Token) ([]token.Token, error) {
	if math.IsInf(c.value, 0) || math.IsNaN(c.value) {
		return nil, &CommandExecutionError{Command: IDReset, Reason: fmt.Sprintf("reset value %v is not finite", c.value)}
	}
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.WithStrength(c.value))
	}
	return out, nil
}
