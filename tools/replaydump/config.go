// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replaydump

import (
	"os"
	"strings"

	"github.com/scottopell/dogstatsd-msg-stats/replay"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// OutputSuffix is appended to the input path to build the default output
// path.
const OutputSuffix = ".txt"

// Config is the resolved configuration for a single replaydump run.
type Config struct {
	// Input is the path of the capture to decode.
	Input string
	// Output is the path the decoded text is written to. If empty, Input with
	// OutputSuffix appended is used.
	Output string

	Compression replay.CompressionFlag
	LogLevel    string
	MetricsFile string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Compression: replay.CompressionFlag(replay.CompressionAuto),
		LogLevel:    "warn",
	}
}

// OutputPath returns the path that decoded text is written to.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Input + OutputSuffix
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("an input capture path is required")
	}
	if c.OutputPath() == c.Input {
		return errors.Errorf("output path %q would overwrite the input", c.Input)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// FileConfig is the TOML representation of Config.
//
// Fields left unset in the file do not override defaults.
type FileConfig struct {
	Output      string `toml:"output"`
	Compression string `toml:"compression"`
	LogLevel    string `toml:"log_level"`
	MetricsFile string `toml:"metrics_file"`
}

// LoadFileConfig reads and parses a TOML config file at path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, errors.Wrap(err, "reading config file")
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, errors.Wrapf(err, "parsing config file %q", path)
	}
	return fc, nil
}

// ApplyFileConfig copies values from fc into cfg.
//
// A value is skipped when fc leaves it empty, or when changed reports that
// the matching flag was set on the command line.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	setString := func(flag, v string, dst *string) {
		if v != "" && !changed[flag] {
			*dst = v
		}
	}

	setString("output", fc.Output, &cfg.Output)
	setString("log-level", fc.LogLevel, &cfg.LogLevel)
	setString("metrics-file", fc.MetricsFile, &cfg.MetricsFile)

	if fc.Compression != "" && !changed["compression"] {
		if err := cfg.Compression.Set(fc.Compression); err != nil {
			return errors.Wrap(err, "config file")
		}
	}
	return nil
}
