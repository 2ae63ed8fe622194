// Package filter holds the transformation commands a pipeline can apply
// to a token sequence, and the registry used to select one by name.
package filter

import (
	"fmt"

	"github.com/ksakata/winnow/internal/token"
)

// Command is one transformation over a full token sequence. Commands
// are pure functions of their input plus constructor-bound parameters;
// they never mutate the input slice.
type Command interface {
	Execute(tokens []token.Token) ([]token.Token, error)
}

// Command identifiers, used for filter selection and in error reports.
const (
	IDExclude = "exclude"
	IDMask    = "mask"
	IDRandom  = "random"
	IDReset   = "reset"
	IDRoundUp = "roundup"
	IDSimilar = "similar"
	IDSort    = "sort"
	IDSortAll = "sort-all"
	IDUnique  = "unique"
)

// CommandExecutionError reports a command whose runtime invariant was
// violated. It aborts the remaining commands for the current line.
type CommandExecutionError struct {
	Command string
	Reason  string
}

func (e *CommandExecutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// groupByName collects tokens into per-name groups, preserving both the
// first-seen order of distinct names and the in-group order.
func groupByName(tokens []token.Token) (names []string, groups map[string][]token.Token) {
	groups = make(map[string][]token.Token, len(tokens))
	for _, t := range tokens {
		if _, ok := groups[t.Name()]; !ok {
			names = append(names, t.Name())
		}
		groups[t.Name()] = append(groups[t.Name()], t)
	}
	return names, groups
}
