package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "winnow",
		Usage: "Weighted prompt token sanitizer CLI",
		Flags: globalFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// No filter selected: parse, round, serialize.
			return run(cmd, "")
		},
		Commands: []*cli.Command{
			excludeCmd(),
			maskCmd(),
			randomCmd(),
			resetCmd(),
			similarCmd(),
			sortCmd(),
			sortAllCmd(),
			uniqueCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
