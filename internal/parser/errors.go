package parser

import (
	"errors"
	"fmt"
)

var errDanglingEscape = errors.New("dangling escape at end of token")

// ParseError reports a substring that could not be parsed into a token.
// Malformed weight literals are never silently defaulted; they surface
// through this error and abort the current line.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

func newParseError(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
