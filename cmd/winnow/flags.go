package main

import "github.com/urfave/cli/v3"

var (
	inputDelimiter  string
	outputDelimiter string
	roundup         int64
	useParserV2     bool
	interactive     bool
	ps1             string
	outputFormat    string
	logLevel        string
	logFormat       string

	// Filter parameters, bound by the subcommand that owns them.
	patterns      []string
	replaceTo     string
	reverse       bool
	seed          int64
	resetValue    float64
	sortMethod    string
	similarMethod string
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input-delimiter",
			Aliases:     []string{"d"},
			Usage:       "delimiter splitting the original prompt into tokens",
			Value:       ",",
			Destination: &inputDelimiter,
		},
		&cli.StringFlag{
			Name:        "output-delimiter",
			Aliases:     []string{"s"},
			Usage:       "delimiter joining the processed tokens",
			Value:       ", ",
			Destination: &outputDelimiter,
		},
		&cli.IntFlag{
			Name:        "roundup",
			Aliases:     []string{"u"},
			Usage:       "number of decimal digits token weights are rounded to",
			Value:       2,
			Destination: &roundup,
		},
		&cli.BoolFlag{
			Name:        "use-parser-v2",
			Aliases:     []string{"2"},
			Usage:       "parse with the simplified flat grammar (disables filters)",
			Destination: &useParserV2,
		},
		&cli.BoolFlag{
			Name:        "interactive",
			Aliases:     []string{"i"},
			Usage:       "read prompts from a REPL instead of the arguments",
			Destination: &interactive,
		},
		&cli.StringFlag{
			Name:        "ps1",
			Aliases:     []string{"p"},
			Usage:       "prompt string shown while waiting for REPL input",
			Value:       ">>> ",
			Destination: &ps1,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "output format (text, json)",
			Value:       formatText,
			Destination: &outputFormat,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log output format (text, json, pretty)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

func reverseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:        "reverse",
		Aliases:     []string{"r"},
		Usage:       "invert the sort or selection order",
		Destination: &reverse,
	}
}

func patternsFlag(usage string) cli.Flag {
	return &cli.StringSliceFlag{
		Name:        "pattern",
		Aliases:     []string{"x"},
		Usage:       usage,
		Destination: &patterns,
	}
}
