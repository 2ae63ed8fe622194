// Package parser converts delimiter-separated prompt substrings into
// weighted tokens. Two interchangeable grammars are provided: the full
// emphasis grammar (V1) with nested weight notation, and a simplified
// flat grammar (V2).
package parser

import "github.com/ksakata/winnow/internal/token"

// Parser converts one delimiter-split substring into a token.
type Parser interface {
	// Parse returns the token encoded by the substring, or a
	// *ParseError when the weight syntax is malformed.
	Parse(s string) (token.Token, error)
}
