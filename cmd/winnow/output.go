package main

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ksakata/winnow/internal/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// emitter runs one line through the pipeline and renders the result in
// the selected output format.
type emitter func(p *pipeline.Pipeline, line string) (string, error)

type tokenJSON struct {
	Name     string  `json:"name"`
	Strength float64 `json:"strength"`
}

func newEmitter(format string) (emitter, error) {
	switch format {
	case formatText:
		return func(p *pipeline.Pipeline, line string) (string, error) {
			return p.Run(line)
		}, nil
	case formatJSON:
		return func(p *pipeline.Pipeline, line string) (string, error) {
			tokens, err := p.Process(line)
			if err != nil {
				return "", err
			}
			items := make([]tokenJSON, len(tokens))
			for i, t := range tokens {
				items[i] = tokenJSON{Name: t.Name(), Strength: t.Strength()}
			}
			buf, err := json.Marshal(items)
			if err != nil {
				return "", err
			}
			return string(buf), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatJSON)
	}
}
