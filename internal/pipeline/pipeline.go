// Package pipeline wires a parser, a delimiter policy, and an ordered
// command list into the parse -> transform -> serialize flow.
package pipeline

import (
	"fmt"

	"github.com/ksakata/winnow/internal/filter"
	"github.com/ksakata/winnow/internal/logger"
	"github.com/ksakata/winnow/internal/parser"
	"github.com/ksakata/winnow/internal/token"
)

// ConfigurationError reports an invalid option or option combination.
// It is raised while building the pipeline, before any token is
// processed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// maxPrecision bounds the rounding digits: 10^x overflows float64 past
// 308, and rounding cannot change a weight long before that.
const maxPrecision = 308

// Config is the finalized option record handed over by the CLI layer.
// Types are already validated by the flag parser; domain constraints
// are re-checked here.
type Config struct {
	Delimiter   parser.Delimiter
	UseParserV2 bool
	Precision   int
	// FilterID selects zero or one transformation filter by its
	// registry identifier; empty means none.
	FilterID string
}

// Pipeline runs one raw line through parse, the ordered command list,
// and serialization. The rounding command is always the last entry.
type Pipeline struct {
	parser    parser.Parser
	delim     parser.Delimiter
	format    token.Formatter
	precision int
	commands  []filter.Command
	log       logger.Logger
}

// New validates cfg and builds a pipeline. The selected filter (if any)
// is constructed from the registry, and the rounding stage is appended
// after it so weight formatting is always normalized before output.
func New(cfg Config, reg *filter.Registry, log logger.Logger) (*Pipeline, error) {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.Delimiter.In == "" {
		return nil, configErrorf("input delimiter must not be empty")
	}
	if cfg.Precision < 0 {
		return nil, configErrorf("rounding precision must not be negative, got %d", cfg.Precision)
	}
	if cfg.Precision > maxPrecision {
		return nil, configErrorf("rounding precision must not exceed %d, got %d", maxPrecision, cfg.Precision)
	}
	if cfg.FilterID != "" && !reg.Has(cfg.FilterID) {
		return nil, configErrorf("unknown filter %q", cfg.FilterID)
	}
	if cfg.UseParserV2 && cfg.FilterID != "" {
		// The filters are defined over the full grammar's parse
		// artifacts, so the flat parser cannot feed them.
		return nil, configErrorf("filter %q is not available with the simplified parser", cfg.FilterID)
	}

	p := &Pipeline{
		delim:     cfg.Delimiter,
		precision: cfg.Precision,
		log:       log,
	}
	if cfg.UseParserV2 {
		log.Warn("using the simplified parser; transformation filters are disabled")
		p.parser = parser.NewV2()
		p.format = token.FormatFlat
	} else {
		p.parser = parser.NewV1()
		p.format = token.FormatEmphasis
	}

	if cfg.FilterID != "" {
		cmd, err := reg.Build(cfg.FilterID)
		if err != nil {
			return nil, configErrorf("%s", err)
		}
		p.AppendCommand(cmd)
	}
	p.AppendCommand(filter.NewRoundUp(cfg.Precision))

	return p, nil
}

// AppendCommand adds a command to the end of the execution list.
// Execution order is insertion order.
func (p *Pipeline) AppendCommand(cmd filter.Command) {
	p.commands = append(p.commands, cmd)
}

// Process parses one raw line and folds the tokens through each command
// in list order. A parse error aborts before any command executes; a
// command error aborts the remaining commands. Either way no partial
// result is returned.
func (p *Pipeline) Process(raw string) ([]token.Token, error) {
	parts := p.delim.Split(raw)
	tokens := make([]token.Token, 0, len(parts))
	for _, s := range parts {
		t, err := p.parser.Parse(s)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}

	for _, cmd := range p.commands {
		var err error
		tokens, err = cmd.Execute(tokens)
		if err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

// Run processes one raw line and serializes the result with the output
// delimiter.
func (p *Pipeline) Run(raw string) (string, error) {
	tokens, err := p.Process(raw)
	if err != nil {
		return "", err
	}
	return p.delim.Join(tokens, p.format, p.precision), nil
}
