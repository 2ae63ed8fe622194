package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ksakata/winnow/internal/token"
)

// emphasisFactor is the multiplicative weight implied by one level of
// paren emphasis, matching the convention of prompt front ends: "(x)"
// weighs 1.1, "[x]" weighs 1/1.1.
const emphasisFactor = 1.1

// V1 parses the full emphasis grammar. A substring is either a bare
// name, or a name wrapped in nested "(...)" / "[...]" groups. Each
// paren level multiplies the strength by 1.1, each bracket level
// divides it by 1.1. The innermost paren group may carry an explicit
// ":weight" suffix, which replaces that level's implied factor:
// "(name:1.2)" weighs exactly 1.2, "((name:1.2))" weighs 1.2 * 1.1.
// Backslash escapes the following character, so "\(" is a literal
// paren with no structural meaning.
type V1 struct{}

// NewV1 returns the full-grammar parser.
func NewV1() *V1 { return &V1{} }

func (p *V1) Parse(s string) (token.Token, error) {
	rest := s
	parens, brackets := 0, 0

	for {
		if wrapped(rest, '(', ')') {
			rest = rest[1 : len(rest)-1]
			parens++
			continue
		}
		if wrapped(rest, '[', ']') {
			rest = rest[1 : len(rest)-1]
			brackets++
			continue
		}
		break
	}

	if i := indexUnescapedAny(rest, "()[]"); i >= 0 {
		return token.Token{}, newParseError(s, "emphasis group must enclose the entire token (stray %q)", rest[i])
	}

	strength := math.Pow(emphasisFactor, float64(parens)) / math.Pow(emphasisFactor, float64(brackets))

	// An explicit weight suffix is only recognized directly inside a
	// paren group; bare "name:1.2" is the flat grammar, not this one.
	if parens > 0 {
		if i := lastIndexUnescaped(rest, ':'); i >= 0 {
			lit := rest[i+1:]
			w, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return token.Token{}, newParseError(s, "malformed weight literal %q", lit)
			}
			if math.IsInf(w, 0) || math.IsNaN(w) {
				return token.Token{}, newParseError(s, "weight %q is not finite", lit)
			}
			// The innermost paren carries the explicit weight instead
			// of the implied factor.
			strength = w * math.Pow(emphasisFactor, float64(parens-1)) / math.Pow(emphasisFactor, float64(brackets))
			rest = rest[:i]
		}
	}

	name, err := unescape(rest)
	if err != nil {
		return token.Token{}, newParseError(s, "%s", err)
	}
	if name == "" {
		return token.Token{}, newParseError(s, "empty token name")
	}
	return token.New(name, strength), nil
}

// wrapped reports whether s is fully enclosed by a matched open/close
// pair, i.e. the closer matching s[0] is the final character.
func wrapped(s string, open, closer byte) bool {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != closer {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i == len(s)-1
			}
		}
	}
	return false
}

// indexUnescapedAny returns the index of the first unescaped occurrence
// of any byte in chars, or -1.
func indexUnescapedAny(s, chars string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if strings.IndexByte(chars, s[i]) >= 0 {
			return i
		}
	}
	return -1
}

// lastIndexUnescaped returns the index of the last unescaped occurrence
// of c in s, or -1.
func lastIndexUnescaped(s string, c byte) int {
	last := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == c {
			last = i
		}
	}
	return last
}

// unescape resolves backslash escapes. A trailing lone backslash is an
// error rather than a silent drop.
func unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i == len(s)-1 {
			return "", errDanglingEscape
		}
		i++
		b.WriteByte(s[i])
	}
	return b.String(), nil
}
