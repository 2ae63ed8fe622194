package filter

import (
	"strings"

	"github.com/ksakata/winnow/internal/token"
)

// Exclude drops every token whose name contains any of the configured
// substrings. An empty pattern set is the identity.
type Exclude struct {
	patterns []string
}

// NewExclude returns an exclude command for the given substrings.
func NewExclude(patterns []string) *Exclude {
	return &Exclude{patterns: patterns}
}

func (c *Exclude) Execute(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if !matchesAny(t.Name(), c.patterns) {
			out = append(out, t)
		}
	}
	return out, nil
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
