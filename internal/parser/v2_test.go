package parser

import (
	"errors"
	"testing"
)

func TestV2Parse(t *testing.T) {
	p := NewV2()

	t.Run("bare name", func(t *testing.T) {
		tok, err := p.Parse("white hair")
		if err != nil {
			t.Fatalf("Parse returned error: %v", err)
		}
		if tok.Name() != "white hair" || tok.Strength() != 1.0 {
			t.Fatalf("got %q %v", tok.Name(), tok.Strength())
		}
	})

	t.Run("name with weight", func(t *testing.T) {
		tok, err := p.Parse("white hair:1.2")
		if err != nil {
			t.Fatalf("Parse returned error: %v", err)
		}
		if tok.Name() != "white hair" || !almostEqual(tok.Strength(), 1.2) {
			t.Fatalf("got %q %v", tok.Name(), tok.Strength())
		}
	})

	t.Run("escaped colon stays in name", func(t *testing.T) {
		tok, err := p.Parse(`a\:b`)
		if err != nil {
			t.Fatalf("Parse returned error: %v", err)
		}
		if tok.Name() != "a:b" {
			t.Fatalf("got %q", tok.Name())
		}
	})

	t.Run("malformed weight is an error", func(t *testing.T) {
		_, err := p.Parse("a:b")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
	})

	t.Run("no nesting", func(t *testing.T) {
		// The flat grammar treats parens as ordinary characters.
		tok, err := p.Parse("(sky)")
		if err != nil {
			t.Fatalf("Parse returned error: %v", err)
		}
		if tok.Name() != "(sky)" || tok.Strength() != 1.0 {
			t.Fatalf("got %q %v", tok.Name(), tok.Strength())
		}
	})
}
