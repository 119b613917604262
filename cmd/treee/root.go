package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/treee/internal/app"
	"github.com/bethropolis/treee/internal/config"
)

var cfg = config.Default()

// rootCmd represents the base command: `treee [path]`
var rootCmd = &cobra.Command{
	Use:           "treee [path]",
	Short:         "A fast tree command with gitignore support and flexible filtering",
	Args:          cobra.MaximumNArgs(1),
	Version:       cfg.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cfg.Root = args[0]
		}
		cfg.Finalize()
		return app.New(cfg).Run()
	},
}

// Execute is called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()

	flags.IntVarP(&cfg.MaxDepth, "depth", "L", cfg.MaxDepth, "maximum depth to traverse")
	flags.BoolVarP(&cfg.ShowHidden, "all", "a", false, "show hidden files")
	flags.BoolVarP(&cfg.DirsOnly, "directories-only", "d", false, "show directories only")
	flags.BoolVarP(&cfg.FilesOnly, "files-only", "f", false, "show only files (opposite of --directories-only)")
	flags.StringArrayVarP(&cfg.IncludePatterns, "include", "I", nil, "include paths matching this glob pattern (repeatable)")
	flags.StringArrayVarP(&cfg.ExcludePatterns, "exclude", "E", nil, "exclude paths matching this glob pattern (repeatable)")
	flags.StringArrayVarP(&cfg.FilePatterns, "pattern", "P", nil, "file name glob pattern to match (repeatable)")
	flags.BoolVar(&cfg.NoIgnoreRules, "no-git-ignore", false, "disable gitignore rules")
	flags.BoolVar(&cfg.FullPath, "full-path", false, "print full paths instead of tree format")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "don't use colors")

	flags.StringVarP(&cfg.OutputFile, "output", "o", "", "write the tree to a file instead of stdout")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "enable verbose logging")
	flags.BoolVar(&cfg.Quiet, "quiet", false, "suppress info messages")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "set the logging level (debug, info, warn, error)")
	flags.BoolVar(&cfg.ShowSkipped, "show-skipped", false, "list skipped entries and reasons on stderr")

	rootCmd.MarkFlagsMutuallyExclusive("directories-only", "files-only")
}
