package filter

import "github.com/ksakata/winnow/internal/token"

// Unique keeps a single representative per distinct name: the token
// with the minimum strength, or the maximum with reverse. Ties go to
// the first-encountered token. Group order follows the first-seen order
// of names, so applying Unique twice is a no-op.
type Unique struct {
	reverse bool
}

// NewUnique returns a dedupe command.
func NewUnique(reverse bool) *Unique {
	return &Unique{reverse: reverse}
}

func (c *Unique) Execute(tokens []token.Token) ([]token.Token, error) {
	names, groups := groupByName(tokens)

	out := make([]token.Token, 0, len(names))
	for _, name := range names {
		group := groups[name]
		best := group[0]
		for _, t := range group[1:] {
			if c.reverse {
				if t.Strength() > best.Strength() {
					best = t
				}
			} else if t.Strength() < best.Strength() {
				best = t
			}
		}
		out = append(out, best)
	}
	return out, nil
}
