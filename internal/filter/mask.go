package filter

import "github.com/ksakata/winnow/internal/token"

// Mask replaces the name of every token matching one of the configured
// substrings with a literal replacement, keeping the weight and the
// position in the sequence.
type Mask struct {
	patterns  []string
	replaceTo string
}

// NewMask returns a mask command replacing matches with replaceTo.
func NewMask(patterns []string, replaceTo string) *Mask {
	return &Mask{patterns: patterns, replaceTo: replaceTo}
}

func (c *Mask) Execute(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if matchesAny(t.Name(), c.patterns) {
			out = append(out, t.WithName(c.replaceTo))
		} else {
			out = append(out, t)
		}
	}
	return out, nil
}
