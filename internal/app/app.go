// Package app wires the filter, ignore matcher, walker and renderer into
// the single run a treee invocation performs
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/bethropolis/treee/internal/config"
	"github.com/bethropolis/treee/internal/filter"
	"github.com/bethropolis/treee/internal/ignore"
	"github.com/bethropolis/treee/internal/logger"
	"github.com/bethropolis/treee/internal/summary"
	"github.com/bethropolis/treee/internal/tree"
	"github.com/bethropolis/treee/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger

	// Output is the destination for the rendered tree. Defaults to
	// stdout; tests inject a buffer here.
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: os.Stdout,
	}
}

// Run executes a single traversal and render. Every fatal condition is
// reported before any tree output is written: the configuration is
// validated first, then the filter is compiled, then the root path is
// checked, and only then does the root banner line go out.
func (a *App) Run() error {
	startTime := time.Now()

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	pathFilter, err := filter.New(a.cfg.IncludePatterns, a.cfg.ExcludePatterns, a.cfg.FilePatterns)
	if err != nil {
		return err
	}

	if _, err := os.Stat(a.cfg.Root); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path '%s' does not exist", a.cfg.Root)
		}
		return fmt.Errorf("cannot access path '%s': %w", a.cfg.Root, err)
	}

	matcher, err := ignore.New(a.cfg.Root,
		ignore.WithLogger(a.log),
		ignore.WithHidden(!a.cfg.ShowHidden),
		ignore.WithRules(!a.cfg.NoIgnoreRules),
	)
	if err != nil {
		return fmt.Errorf("initializing ignore rules: %w", err)
	}

	out := a.Output
	if a.cfg.OutputFile != "" {
		file, createErr := os.Create(a.cfg.OutputFile)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer file.Close()
		out = file
	}

	renderer := tree.NewRenderer().
		WithOutput(out).
		WithColors(a.cfg.UseColors).
		WithFullPath(a.cfg.FullPath)

	// The banner line is the only output that precedes the traversal
	if !a.cfg.FullPath {
		if err := renderer.PrintRoot(a.cfg.Root); err != nil {
			return err
		}
	}

	a.log.Debug("Scanning directory: %s (depth=%d, hidden=%v, ignore rules=%v)",
		a.cfg.Root, a.cfg.MaxDepth, a.cfg.ShowHidden, !a.cfg.NoIgnoreRules)

	var entries []walker.Entry
	skippedItems, err := walker.Walk(a.cfg.Root, matcher,
		func(entry walker.Entry) error {
			entries = append(entries, entry)
			return nil
		},
		walker.WithLogger(a.log),
		walker.WithMaxDepth(a.cfg.MaxDepth),
	)
	if err != nil {
		return fmt.Errorf("walking '%s': %w", a.cfg.Root, err)
	}

	index := tree.Build(a.cfg.Root, entries,
		tree.WithFilter(pathFilter),
		tree.WithDirsOnly(a.cfg.DirsOnly),
		tree.WithFilesOnly(a.cfg.FilesOnly),
	)

	if err := renderer.Render(index); err != nil {
		return err
	}

	summary.DisplayResults(a.log, len(entries), time.Since(startTime))

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(skippedItems, os.Stderr)
	}

	return nil
}
