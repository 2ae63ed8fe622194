package filter

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ksakata/winnow/internal/token"
)

func names(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Name()
	}
	return out
}

func mustExecute(t *testing.T, c Command, in []token.Token) []token.Token {
	t.Helper()
	out, err := c.Execute(in)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	return out
}

func TestExclude(t *testing.T) {
	in := []token.Token{
		token.New("white hair", 1.2),
		token.New("thighhighs", 1.0),
	}

	t.Run("substring match drops token", func(t *testing.T) {
		out := mustExecute(t, NewExclude([]string{"white"}), in)
		if got := names(out); !reflect.DeepEqual(got, []string{"thighhighs"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("empty pattern set is identity", func(t *testing.T) {
		out := mustExecute(t, NewExclude(nil), in)
		if !reflect.DeepEqual(out, in) {
			t.Fatalf("got %v want %v", out, in)
		}
	})
}

func TestMask(t *testing.T) {
	in := []token.Token{
		token.New("white hair", 1.2),
		token.New("thighhighs", 1.0),
	}
	out := mustExecute(t, NewMask([]string{"white"}, "%%%"), in)

	want := []token.Token{
		token.New("%%%", 1.2),
		token.New("thighhighs", 1.0),
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}
}

func TestSort(t *testing.T) {
	t.Run("groups sorted ascending, group order first-seen", func(t *testing.T) {
		in := []token.Token{
			token.New("a", 2.0),
			token.New("a", 1.0),
			token.New("b", 1.0),
		}
		out := mustExecute(t, NewSort(false), in)
		want := []token.Token{
			token.New("a", 1.0),
			token.New("a", 2.0),
			token.New("b", 1.0),
		}
		if !reflect.DeepEqual(out, want) {
			t.Fatalf("got %v want %v", out, want)
		}
	})

	t.Run("reverse sorts descending", func(t *testing.T) {
		in := []token.Token{
			token.New("white hair", 1.2),
			token.New("white hair", 1.0),
		}
		out := mustExecute(t, NewSort(true), in)
		want := []token.Token{
			token.New("white hair", 1.2),
			token.New("white hair", 1.0),
		}
		if !reflect.DeepEqual(out, want) {
			t.Fatalf("got %v want %v", out, want)
		}
	})

	t.Run("equal strengths keep relative order", func(t *testing.T) {
		first := token.New("a", 1.0)
		second := token.New("a", 1.0)
		out := mustExecute(t, NewSort(false), []token.Token{first, second})
		if out[0] != first || out[1] != second {
			t.Fatalf("stability violated: %v", out)
		}
	})
}

func TestSortAll(t *testing.T) {
	in := []token.Token{
		token.New("bb", 3.0),
		token.New("a", 2.0),
		token.New("ccc", 1.0),
	}

	t.Run("lexicographical", func(t *testing.T) {
		out := mustExecute(t, NewSortAll(SortByLexicographical, false), in)
		if got := names(out); !reflect.DeepEqual(got, []string{"a", "bb", "ccc"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("length", func(t *testing.T) {
		out := mustExecute(t, NewSortAll(SortByLength, false), in)
		if got := names(out); !reflect.DeepEqual(got, []string{"a", "bb", "ccc"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("strength reversed", func(t *testing.T) {
		out := mustExecute(t, NewSortAll(SortByStrength, true), in)
		if got := names(out); !reflect.DeepEqual(got, []string{"bb", "a", "ccc"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("ties keep original index order", func(t *testing.T) {
		first := token.New("x", 1.0)
		second := token.New("y", 1.0)
		out := mustExecute(t, NewSortAll(SortByStrength, false), []token.Token{first, second})
		if out[0] != first || out[1] != second {
			t.Fatalf("stability violated: %v", out)
		}
	})

	t.Run("input slice untouched", func(t *testing.T) {
		snapshot := make([]token.Token, len(in))
		copy(snapshot, in)
		mustExecute(t, NewSortAll(SortByLexicographical, false), in)
		if !reflect.DeepEqual(in, snapshot) {
			t.Fatalf("input mutated: %v", in)
		}
	})
}

func TestUnique(t *testing.T) {
	in := []token.Token{
		token.New("white hair", 1.2),
		token.New("white hair", 1.0),
	}

	t.Run("keeps minimum strength", func(t *testing.T) {
		out := mustExecute(t, NewUnique(false), in)
		want := []token.Token{token.New("white hair", 1.0)}
		if !reflect.DeepEqual(out, want) {
			t.Fatalf("got %v want %v", out, want)
		}
	})

	t.Run("reverse keeps maximum strength", func(t *testing.T) {
		out := mustExecute(t, NewUnique(true), in)
		want := []token.Token{token.New("white hair", 1.2)}
		if !reflect.DeepEqual(out, want) {
			t.Fatalf("got %v want %v", out, want)
		}
	})

	t.Run("equal strengths keep first encountered", func(t *testing.T) {
		out := mustExecute(t, NewUnique(false), []token.Token{
			token.New("a", 1.0),
			token.New("a", 1.0),
			token.New("b", 2.0),
		})
		if got := names(out); !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := mustExecute(t, NewUnique(false), in)
		twice := mustExecute(t, NewUnique(false), once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("not idempotent: %v vs %v", once, twice)
		}
	})
}

func TestReset(t *testing.T) {
	in := []token.Token{
		token.New("white hair", 1.2),
		token.New("sky", 0.8),
	}

	t.Run("overwrites every strength", func(t *testing.T) {
		out := mustExecute(t, NewReset(1.0), in)
		for _, tok := range out {
			if tok.Strength() != 1.0 {
				t.Fatalf("strength not reset: %v", tok)
			}
		}
		if got := names(out); !reflect.DeepEqual(got, names(in)) {
			t.Fatalf("names changed: %v", got)
		}
	})

	t.Run("non-finite value is a command error", func(t *testing.T) {
		_, err := NewReset(math.NaN()).Execute(in)
		var cerr *CommandExecutionError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected *CommandExecutionError, got %v", err)
		}
		if cerr.Command != IDReset {
			t.Fatalf("unexpected command id %q", cerr.Command)
		}
	})
}

func TestRoundUp(t *testing.T) {
	t.Run("rounds to configured digits", func(t *testing.T) {
		out := mustExecute(t, NewRoundUp(2), []token.Token{token.New("a", 1.2345)})
		if out[0].Strength() != 1.23 {
			t.Fatalf("got %v", out[0].Strength())
		}
	})

	t.Run("zero precision rounds to integer", func(t *testing.T) {
		out := mustExecute(t, NewRoundUp(0), []token.Token{token.New("a", 1.6)})
		if out[0].Strength() != 2.0 {
			t.Fatalf("got %v", out[0].Strength())
		}
	})

	t.Run("idempotent at fixed precision", func(t *testing.T) {
		in := []token.Token{token.New("a", 1.23456), token.New("b", 0.98765)}
		once := mustExecute(t, NewRoundUp(2), in)
		twice := mustExecute(t, NewRoundUp(2), once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("not idempotent: %v vs %v", once, twice)
		}
	})

	t.Run("precision beyond float64 range passes weights through", func(t *testing.T) {
		out := mustExecute(t, NewRoundUp(400), []token.Token{token.New("a", 1.2)})
		if out[0].Strength() != 1.2 {
			t.Fatalf("got %v", out[0].Strength())
		}
	})
}

func TestRandom(t *testing.T) {
	in := []token.Token{
		token.New("a", 1.0),
		token.New("b", 1.1),
		token.New("c", 1.2),
		token.New("d", 1.3),
		token.New("e", 1.4),
	}

	t.Run("same seed, same permutation", func(t *testing.T) {
		x := mustExecute(t, NewRandom(42), in)
		y := mustExecute(t, NewRandom(42), in)
		if !reflect.DeepEqual(x, y) {
			t.Fatalf("shuffles diverged: %v vs %v", x, y)
		}
	})

	t.Run("output is a permutation of input", func(t *testing.T) {
		out := mustExecute(t, NewRandom(7), in)
		if len(out) != len(in) {
			t.Fatalf("length changed: %d", len(out))
		}
		counts := map[token.Token]int{}
		for _, tok := range in {
			counts[tok]++
		}
		for _, tok := range out {
			counts[tok]--
		}
		for tok, n := range counts {
			if n != 0 {
				t.Fatalf("multiset changed for %v: %d", tok, n)
			}
		}
	})

	t.Run("input slice untouched", func(t *testing.T) {
		snapshot := make([]token.Token, len(in))
		copy(snapshot, in)
		mustExecute(t, NewRandom(3), in)
		if !reflect.DeepEqual(in, snapshot) {
			t.Fatalf("input mutated: %v", in)
		}
	})
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(IDExclude, func() (Command, error) { return NewExclude([]string{"x"}), nil })
	r.Register(IDSort, func() (Command, error) { return NewSort(false), nil })

	t.Run("build", func(t *testing.T) {
		cmd, err := r.Build(IDExclude)
		if err != nil {
			t.Fatalf("Build returned error: %v", err)
		}
		if _, ok := cmd.(*Exclude); !ok {
			t.Fatalf("unexpected command type %T", cmd)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := r.Build("nope"); err == nil {
			t.Fatalf("expected error for unknown id")
		}
	})

	t.Run("ids in registration order", func(t *testing.T) {
		if got := r.IDs(); !reflect.DeepEqual(got, []string{IDExclude, IDSort}) {
			t.Fatalf("got %v", got)
		}
	})
}
