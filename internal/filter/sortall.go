package filter

import (
	"fmt"
	"sort"

	"github.com/ksakata/winnow/internal/token"
)

// SortKey selects the comparison key for SortAll.
type SortKey string

// Available SortAll keys.
const (
	SortByLexicographical SortKey = "lexicographical"
	SortByLength          SortKey = "length"
	SortByStrength        SortKey = "strength"
)

// SortKeys lists the selectable keys in help-text order.
func SortKeys() []SortKey {
	return []SortKey{SortByLexicographical, SortByLength, SortByStrength}
}

// ParseSortKey validates a key name from the CLI.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByLexicographical, SortByLength, SortByStrength:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort method %q", s)
	}
}

// SortAll orders the whole sequence by the selected key. The sort is
// stable, so tokens comparing equal keep their original index order;
// reverse inverts the final order.
type SortAll struct {
	key     SortKey
	reverse bool
}

// NewSortAll returns a whole-sequence sort command.
func NewSortAll(key SortKey, reverse bool) *SortAll {
	return &SortAll{key: key, reverse: reverse}
}

func (c *SortAll) Execute(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	var less func(a, b token.Token) bool
	switch c.key {
	case SortByLength:
		less = func(a, b token.Token) bool { return len(a.Name()) < len(b.Name()) }
	case SortByStrength:
		less = func(a, b token.Token) bool { return a.Strength() < b.Strength() }
	case SortByLexicographical:
		less = func(a, b token.Token) bool { return a.Name() < b.Name() }
	default:
		return nil, &CommandExecutionError{Command: IDSortAll, Reason: fmt.Sprintf("unknown sort method %q", c.key)}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c.reverse {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}
