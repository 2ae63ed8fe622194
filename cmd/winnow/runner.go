package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ksakata/winnow/internal/filter"
	"github.com/ksakata/winnow/internal/logger"
	"github.com/ksakata/winnow/internal/parser"
	"github.com/ksakata/winnow/internal/pipeline"
)

func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	default:
		return logger.Pretty(os.Stderr, level)
	}
}

// newRegistry maps every filter identifier to a factory closing over
// the flag-bound parameters. Construction happens only for the filter
// that was actually selected.
func newRegistry(cmd *cli.Command) *filter.Registry {
	reg := filter.NewRegistry()
	reg.Register(filter.IDExclude, func() (filter.Command, error) {
		return filter.NewExclude(patterns), nil
	})
	reg.Register(filter.IDMask, func() (filter.Command, error) {
		return filter.NewMask(patterns, replaceTo), nil
	})
	reg.Register(filter.IDRandom, func() (filter.Command, error) {
		return newRandomCommand(cmd.IsSet("seed"), seed)
	})
	reg.Register(filter.IDReset, func() (filter.Command, error) {
		return filter.NewReset(resetValue), nil
	})
	reg.Register(filter.IDSimilar, func() (filter.Command, error) {
		method, err := filter.ParseSimilarMethod(similarMethod)
		if err != nil {
			return nil, err
		}
		return filter.NewSimilar(method, reverse), nil
	})
	reg.Register(filter.IDSort, func() (filter.Command, error) {
		return filter.NewSort(reverse), nil
	})
	reg.Register(filter.IDSortAll, func() (filter.Command, error) {
		key, err := filter.ParseSortKey(sortMethod)
		if err != nil {
			return nil, err
		}
		return filter.NewSortAll(key, reverse), nil
	})
	reg.Register(filter.IDUnique, func() (filter.Command, error) {
		return filter.NewUnique(reverse), nil
	})
	return reg
}

// run builds the pipeline for the finalized options and processes
// either one line or, with -i, successive REPL lines.
func run(cmd *cli.Command, filterID string) error {
	fileCfg, err := loadConfig(configPath())
	if err != nil {
		return err
	}
	applyConfig(cmd, fileCfg)

	log := newLogger()

	emitTokens, err := newEmitter(outputFormat)
	if err != nil {
		return err
	}

	p, err := pipeline.New(pipeline.Config{
		Delimiter:   parser.Delimiter{In: inputDelimiter, Out: outputDelimiter},
		UseParserV2: useParserV2,
		Precision:   int(roundup),
		FilterID:    filterID,
	}, newRegistry(cmd), log)
	if err != nil {
		return err
	}

	emit := func(line string) (string, error) {
		return emitTokens(p, line)
	}

	if interactive {
		return runREPL(log, emit)
	}

	line, err := readInputLine(cmd)
	if err != nil {
		return err
	}
	out, err := emit(line)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// newRandomCommand builds the shuffle filter. The generator holds a
// 32-bit state, so explicit seeds outside that range are rejected
// rather than silently truncated.
func newRandomCommand(seedSet bool, seed int64) (filter.Command, error) {
	if !seedSet {
		return filter.NewRandomFromTime(), nil
	}
	if seed < 0 || seed > math.MaxUint32 {
		return nil, fmt.Errorf("seed %d out of range (0 to %d)", seed, uint32(math.MaxUint32))
	}
	return filter.NewRandom(uint32(seed)), nil
}

// readInputLine takes the prompt from the positional argument, or from
// one line of stdin when no argument was given. An explicitly empty
// argument counts as given and does not fall through to stdin.
func readInputLine(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First(), nil
	}
	line, err := readPlainLine()
	if err == io.EOF {
		return "", nil
	}
	return line, err
}
