package main

import (
	"bufio"
	"io"
	"os"
)

// stdin is shared across reads so buffered bytes survive between
// successive REPL lines on piped input.
var stdin = bufio.NewReader(os.Stdin)

// readPlainLine reads one newline-terminated line from stdin. End of
// the stream surfaces as io.EOF so the REPL loop can stop.
func readPlainLine() (string, error) {
	s, err := stdin.ReadString('\n')
	if err != nil {
		if err == io.EOF && s != "" {
			return trimTrailingNewline(s), nil
		}
		return "", err
	}
	return trimTrailingNewline(s), nil
}

func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
