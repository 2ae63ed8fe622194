package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ksakata/winnow/internal/filter"
)

func excludeCmd() *cli.Command {
	return &cli.Command{
		Name:  filter.IDExclude,
		Usage: "Drop tokens whose name contains any of the given substrings",
		Flags: []cli.Flag{
			patternsFlag("substring excluding a token when its name contains it"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDExclude)
		},
	}
}

func maskCmd() *cli.Command {
	return &cli.Command{
		Name:  filter.IDMask,
		Usage: "Replace the name of matching tokens, keeping their weight",
		Flags: []cli.Flag{
			patternsFlag("substring masking a token when its name contains it"),
			&cli.StringFlag{
				Name:        "replace-to",
				Usage:       "literal text masked names are replaced with",
				Value:       "%%%",
				Destination: &replaceTo,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDMask)
		},
	}
}

func randomCmd() *cli.Command {
	return &cli.Command{
		Name:  filter.IDRandom,
		Usage: "Shuffle the token sequence",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "seed",
				Usage:       "seed for a reproducible shuffle, 0 to 4294967295 (time-seeded if omitted)",
				Destination: &seed,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDRandom)
		},
	}
}

func resetCmd() *cli.Command {
	return &cli.Command{
		Name:  filter.IDReset,
		Usage: "Overwrite every token's weight with a fixed value",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:        "value",
				Aliases:     []string{"v"},
				Usage:       "weight assigned to every token",
				Value:       1.0,
				Destination: &resetValue,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDReset)
		},
	}
}

func similarCmd() *cli.Command {
	methods := make([]string, 0, len(filter.SimilarMethods()))
	for _, m := range filter.SimilarMethods() {
		methods = append(methods, string(m))
	}
	return &cli.Command{
		Name:  filter.IDSimilar,
		Usage: "Reorder tokens so similarly named ones sit next to each other",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "method",
				Aliases:     []string{"m"},
				Usage:       fmt.Sprintf("ordering strategy (%s)", strings.Join(methods, ", ")),
				Value:       string(filter.SimilarGreedy),
				Destination: &similarMethod,
			},
			reverseFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDSimilar)
		},
	}
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:  filter.IDSort,
		Usage: "Sort duplicated tokens by weight within each name group",
		Flags: []cli.Flag{reverseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDSort)
		},
	}
}

func sortAllCmd() *cli.Command {
	methods := make([]string, 0, len(filter.SortKeys()))
	for _, k := range filter.SortKeys() {
		methods = append(methods, string(k))
	}
	return &cli.Command{
		Name:  filter.IDSortAll,
		Usage: "Sort the whole token sequence by a selectable key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "method",
				Aliases:     []string{"m"},
				Usage:       fmt.Sprintf("ranking key (%s)", strings.Join(methods, ", ")),
				Value:       string(filter.SortByLexicographical),
				Destination: &sortMethod,
			},
			reverseFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDSortAll)
		},
	}
}

func uniqueCmd() *cli.Command {
	return &cli.Command{
		Name:  filter.IDUnique,
		Usage: "Keep one token per name, selected by weight",
		Flags: []cli.Flag{reverseFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(cmd, filter.IDUnique)
		},
	}
}
