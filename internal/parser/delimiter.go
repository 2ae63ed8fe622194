package parser

import (
	"strings"

	"github.com/ksakata/winnow/internal/token"
)

// Delimiter is the pair of separator strings used to split raw input
// into token substrings and join processed tokens back into text. The
// input and output separators are independent.
type Delimiter struct {
	In  string
	Out string
}

// Split breaks raw text on the input delimiter. Each substring is
// trimmed of surrounding whitespace; empty substrings are dropped.
func (d Delimiter) Split(raw string) []string {
	parts := strings.Split(raw, d.In)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Join renders each token with the formatter and joins the results with
// the output delimiter.
func (d Delimiter) Join(tokens []token.Token, format token.Formatter, precision int) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = format(t, precision)
	}
	return strings.Join(parts, d.Out)
}
