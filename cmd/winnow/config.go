package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the winnow configuration file
// (~/.config/winnow/config.yaml). Fields that would shadow a flag
// default are pointers so "not set" is distinguishable from a zero
// value.
type Config struct {
	InputDelimiter  *string `yaml:"input_delimiter"`
	OutputDelimiter *string `yaml:"output_delimiter"`
	Roundup         *int64  `yaml:"roundup"`
	PS1             *string `yaml:"ps1"`
	Format          *string `yaml:"format"`
	LogLevel        string  `yaml:"log_level"`
	LogFormat       string  `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "winnow", "config.yaml")
}

// loadConfig reads the config file. A missing file yields a zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfig overlays config file values onto the flag-bound options,
// but only where the corresponding flag was not set explicitly.
func applyConfig(c *cli.Command, cfg Config) {
	if cfg.InputDelimiter != nil && !c.IsSet("input-delimiter") {
		inputDelimiter = *cfg.InputDelimiter
	}
	if cfg.OutputDelimiter != nil && !c.IsSet("output-delimiter") {
		outputDelimiter = *cfg.OutputDelimiter
	}
	if cfg.Roundup != nil && !c.IsSet("roundup") {
		roundup = *cfg.Roundup
	}
	if cfg.PS1 != nil && !c.IsSet("ps1") {
		ps1 = *cfg.PS1
	}
	if cfg.Format != nil && !c.IsSet("format") {
		outputFormat = *cfg.Format
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}
