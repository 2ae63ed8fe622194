package filter

import (
	"sort"

	"github.com/ksakata/winnow/internal/token"
)

// Sort groups tokens by name and orders each group by strength,
// ascending by default, descending with reverse. Groups appear in the
// first-seen order of their names; equal-strength tokens keep their
// relative order.
type Sort struct {
	reverse bool
}

// NewSort returns a grouped sort command.
func NewSort(reverse bool) *Sort {
	return &Sort{reverse: reverse}
}

func (c *Sort) Execute(tokens []token.Token) ([]token.Token, error) {
	names, groups := groupByName(tokens)

	out := make([]token.Token, 0, len(tokens))
	for _, name := range names {
		group := groups[name]
		sort.SliceStable(group, func(i, j int) bool {
			if c.reverse {
				return group[i].Strength() > group[j].Strength()
			}
			return group[i].Strength() < group[j].Strength()
		})
		out = append(out, group...)
	}
	return out, nil
}
