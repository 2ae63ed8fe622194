package parser

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestV1Parse(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wantName string
		want     float64
	}{
		{"bare name", "white hair", "white hair", 1.0},
		{"explicit weight", "(white hair:1.2)", "white hair", 1.2},
		{"single emphasis", "(sky)", "sky", 1.1},
		{"double emphasis", "((sky))", "sky", 1.1 * 1.1},
		{"de-emphasis", "[sky]", "sky", 1 / 1.1},
		{"double de-emphasis", "[[sky]]", "sky", 1 / (1.1 * 1.1)},
		{"explicit weight under extra emphasis", "((sky:1.2))", "sky", 1.2 * 1.1},
		{"mixed emphasis", "([sky])", "sky", 1.0},
		{"escaped paren is literal", `\(sky\)`, "(sky)", 1.0},
		{"escaped colon stays in name", `(a\:b:2.0)`, "a:b", 2.0},
		{"escaped backslash", `a\\b`, `a\b`, 1.0},
		{"negative weight", "(dark:-0.5)", "dark", -0.5},
	}
	p := NewV1()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := p.Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
			}
			if tok.Name() != tc.wantName {
				t.Fatalf("name: got %q want %q", tok.Name(), tc.wantName)
			}
			if !almostEqual(tok.Strength(), tc.want) {
				t.Fatalf("strength: got %v want %v", tok.Strength(), tc.want)
			}
		})
	}
}

func TestV1ParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"malformed weight", "(sky:abc)"},
		{"empty weight", "(sky:)"},
		{"unbalanced open", "(sky"},
		{"unbalanced close", "sky)"},
		{"group not enclosing token", "a(b)"},
		{"empty group", "()"},
		{"dangling escape", `sky\`},
		{"infinite weight", "(sky:Inf)"},
	}
	p := NewV1()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tc.in)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error is not a *ParseError: %v", err)
			}
			if perr.Input != tc.in {
				t.Fatalf("ParseError.Input: got %q want %q", perr.Input, tc.in)
			}
		})
	}
}
