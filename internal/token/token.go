// Package token defines the weighted prompt token value type shared by
// the parser, filter, and pipeline packages.
package token

import (
	"strconv"
	"strings"
)

// DefaultStrength is the weight of a token written without an explicit
// weight suffix.
const DefaultStrength = 1.0

// Token is a single named unit of a prompt with an attached weight.
// Tokens are immutable; transformations produce copies.
type Token struct {
	name     string
	strength float64
}

// New returns a token with the given name and strength.
func New(name string, strength float64) Token {
	return Token{name: name, strength: strength}
}

// NewDefault returns a token with the default strength of 1.0.
func NewDefault(name string) Token {
	return Token{name: name, strength: DefaultStrength}
}

// Name reports the token's semantic identifier. Names may contain spaces.
func (t Token) Name() string { return t.name }

// Strength reports the token's weight.
func (t Token) Strength() float64 { return t.strength }

// WithName returns a copy of the token with the name replaced.
func (t Token) WithName(name string) Token {
	return Token{name: name, strength: t.strength}
}

// WithStrength returns a copy of the token with the strength replaced.
func (t Token) WithStrength(strength float64) Token {
	return Token{name: t.name, strength: strength}
}

// Formatter renders a token back to its textual form. The two parser
// variants serialize weighted tokens differently, so the pipeline is
// configured with the formatter matching its parser.
type Formatter func(t Token, precision int) string

// FormatEmphasis renders the full-grammar form: "(name:W)" when the
// strength differs from the default, bare "name" otherwise.
func FormatEmphasis(t Token, precision int) string {
	if t.strength == DefaultStrength {
		return t.name
	}
	return "(" + t.name + ":" + FormatStrength(t.strength, precision) + ")"
}

// FormatFlat renders the simplified form: "name:W" when the strength
// differs from the default, bare "name" otherwise.
func FormatFlat(t Token, precision int) string {
	if t.strength == DefaultStrength {
		return t.name
	}
	return t.name + ":" + FormatStrength(t.strength, precision)
}

// FormatStrength formats a weight to at most precision decimal digits,
// dropping trailing zeros so 1.20 renders as "1.2".
func FormatStrength(strength float64, precision int) string {
	s := strconv.FormatFloat(strength, 'f', precision, 64)
	if precision > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
