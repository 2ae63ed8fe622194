package parser

import (
	"math"
	"strconv"

	"github.com/ksakata/winnow/internal/token"
)

// V2 parses the simplified flat grammar: "name" or "name:weight". No
// nesting, no emphasis markers; the last unescaped colon separates the
// name from the weight. A colon followed by text that is not a valid
// number is a parse error, not an implicit part of the name.
type V2 struct{}

// NewV2 returns the flat parser.
func NewV2() *V2 { return &V2{} }

func (p *V2) Parse(s string) (token.Token, error) {
	i := lastIndexUnescaped(s, ':')
	if i < 0 {
		name, err := unescape(s)
		if err != nil {
			return token.Token{}, newParseError(s, "%s", err)
		}
		if name == "" {
			return token.Token{}, newParseError(s, "empty token name")
		}
		return token.NewDefault(name), nil
	}

	lit := s[i+1:]
	w, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token.Token{}, newParseError(s, "malformed weight literal %q", lit)
	}
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return token.Token{}, newParseError(s, "weight %q is not finite", lit)
	}
	name, err := unescape(s[:i])
	if err != nil {
		return token.Token{}, newParseError(s, "%s", err)
	}
	if name == "" {
		return token.Token{}, newParseError(s, "empty token name")
	}
	return token.New(name, w), nil
}
