// Package config loads the optional HCL settings file for addemup.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration
type Config struct {
	Settings Settings
}

// file mirrors the HCL document, where the settings block is optional
type file struct {
	Settings *Settings `hcl:"settings,block"`
}

// Settings contains run-level configuration
type Settings struct {
	LogLevel    string `hcl:"log_level,optional"`
	Workers     int    `hcl:"workers,optional"`
	AtomicWrite *bool  `hcl:"atomic_write,optional"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	atomic := true
	return &Config{
		Settings: Settings{
			LogLevel:    "info",
			Workers:     0,
			AtomicWrite: &atomic,
		},
	}
}

// Load reads configuration from an HCL file. An empty filename or a file
// that does not exist yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var doc file
	diags = gohcl.DecodeBody(hclFile.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if doc.Settings == nil {
		return defaults, nil
	}
	cfg := Config{Settings: *doc.Settings}
	if cfg.Settings.LogLevel == "" {
		cfg.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if cfg.Settings.AtomicWrite == nil {
		cfg.Settings.AtomicWrite = defaults.Settings.AtomicWrite
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Settings.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.Settings.LogLevel)
	}
	if c.Settings.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Settings.Workers)
	}
	return nil
}

// Level returns the configured log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Settings.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Atomic reports whether the result file is replaced via temp file and rename
func (c *Config) Atomic() bool {
	return c.Settings.AtomicWrite == nil || *c.Settings.AtomicWrite
}
