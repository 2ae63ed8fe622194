package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ksakata/winnow/internal/logger"
)

// runREPL reads prompts line by line until EOF (Ctrl-D). A failing line
// is reported and skipped; the session keeps running with the same
// pipeline configuration.
func runREPL(log logger.Logger, emit func(string) (string, error)) error {
	sessionLog := log.With("session", uuid.NewString())
	sessionLog.Debug("interactive session started")

	for {
		line, err := readInteractiveLine(ps1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				sessionLog.Debug("interactive session ended")
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, err := emit(line)
		if err != nil {
			sessionLog.Error("line not processed", "error", err)
			continue
		}
		fmt.Println(out)
	}
}
