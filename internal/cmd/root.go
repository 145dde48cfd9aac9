package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/codecombine/internal/combiner"
	"github.com/harrison/codecombine/internal/config"
	"github.com/harrison/codecombine/internal/display"
	"github.com/harrison/codecombine/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for codecombine
func NewRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "codecombine",
		Short: "Combine code files by folder into consolidated text files",
		Long: `CodeCombine walks a directory tree and writes, per folder, a single
text file containing the folder's matching source files concatenated
with path-labeled headers.

Folders whose name contains any ignore substring are pruned from the
traversal entirely, and folders with no matching files produce no
output. Files that are not valid UTF-8 are replaced with a placeholder
line instead of aborting the run.

Examples:
  codecombine -r /path/to/project -o /path/to/output
  codecombine -r /path/to/project -t .py -t .js -t .html
  codecombine -r /path/to/project -i vendor -i temp
  codecombine -r /path/to/project -t .py,.js -i node_modules

  # Visit every folder, including node_modules and .git
  codecombine -r /path/to/project --ignore=""`,
		Version: Version,
		Args:    cobra.NoArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Root, "root", "r", cfg.Root, "Root folder to start combining files from")
	cmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "Output folder for combined files")
	cmd.Flags().StringSliceVarP(&cfg.Types, "types", "t", cfg.Types, "File suffixes to include")
	cmd.Flags().StringSliceVarP(&cfg.Ignore, "ignore", "i", cfg.Ignore, `Folder name substrings to ignore (pass --ignore="" to ignore nothing)`)
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress the banner and per-folder progress lines")

	return cmd
}

// runCombine implements the root command logic
func runCombine(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.ResolvePaths(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	useColor := false
	if f, ok := out.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) && !cfg.NoColor
	}

	// Quiet keeps warnings and errors but drops the per-folder info lines.
	logLevel := cfg.LogLevel
	if cfg.Quiet && logLevelBelowWarn(logLevel) {
		logLevel = "warn"
	}

	log := logger.NewConsoleLogger(out, logLevel)
	if cfg.NoColor {
		log.DisableColor()
	}

	if !cfg.Quiet {
		display.Banner{
			Root:      cfg.Root,
			OutputDir: cfg.OutputDir,
			Types:     cfg.Types,
			Ignore:    cfg.Ignore,
		}.Display(out, useColor)
	}

	result, err := combiner.New(cfg, log).Run()
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		display.Summary{
			Directories: result.Directories,
			Files:       result.Files,
			Warnings:    result.Warnings,
		}.Display(out, useColor)
	}

	return nil
}

// logLevelBelowWarn reports whether the configured level would emit
// info-level progress lines.
func logLevelBelowWarn(level string) bool {
	switch level {
	case "trace", "debug", "info", "":
		return true
	}
	return false
}
