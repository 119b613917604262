// Package config holds the treee invocation settings
package config

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Traversal settings
	Root       string
	MaxDepth   int
	ShowHidden bool

	// Filtering settings
	DirsOnly        bool
	FilesOnly       bool
	IncludePatterns []string
	ExcludePatterns []string
	FilePatterns    []string
	NoIgnoreRules   bool

	// Output settings
	NoColor    bool
	UseColors  bool
	FullPath   bool
	OutputFile string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	ShowSkipped bool

	// Version info
	Version string
}

// Default returns a Config with the default invocation values.
// Flag parsing overwrites individual fields afterwards.
func Default() *Config {
	return &Config{
		Root:     ".",
		MaxDepth: 10,
		Version:  "0.1.0",
	}
}

// Finalize resolves derived settings once all flags have been parsed.
// Colors are auto-disabled when stdout is not a terminal or when output
// is redirected to a file.
func (c *Config) Finalize() {
	c.UseColors = !c.NoColor && c.OutputFile == "" && isatty.IsTerminal(os.Stdout.Fd())
}

// Validate checks the configuration for conflicting or invalid settings
func (c *Config) Validate() error {
	if c.DirsOnly && c.FilesOnly {
		return errors.New("cannot use both --directories-only and --files-only")
	}
	if c.MaxDepth < 0 {
		return errors.New("depth must be zero or greater")
	}
	return nil
}
