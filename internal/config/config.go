package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound indicates the configured root folder does not exist.
// A run that hits this condition performs no traversal and creates no
// output directory.
var ErrRootNotFound = errors.New("root folder does not exist")

// Config represents the immutable configuration for a single combine run.
// It is built once from CLI flags and passed explicitly to each component;
// nothing mutates it after construction.
type Config struct {
	// Root is the absolute path of the folder traversal starts from
	Root string

	// OutputDir is the absolute path of the folder combined files are written to.
	// Created (including parents) if missing.
	OutputDir string

	// Types is the file-suffix allow-list (e.g. ".js", ".scss").
	// Matching is a case-sensitive suffix test including the dot.
	Types []string

	// Ignore is the list of folder-name substrings to prune from traversal.
	// A folder is skipped when ANY token is a substring of its base name.
	Ignore []string

	// LogLevel sets console verbosity (trace, debug, info, warn, error)
	LogLevel string

	// Quiet suppresses the banner and per-directory progress lines
	Quiet bool

	// NoColor forces plain output even on a TTY
	NoColor bool
}

// DefaultConfig returns a Config with the documented default values.
// Root and OutputDir are left relative here; the cmd layer resolves them
// to absolute paths before the run starts.
func DefaultConfig() *Config {
	return &Config{
		Root:      ".",
		OutputDir: "output",
		Types:     []string{".jsx", ".js", ".scss", ".html"},
		Ignore:    []string{"node_modules", ".git"},
		LogLevel:  "info",
	}
}

// ResolvePaths converts Root and OutputDir to absolute paths.
// Mirrors shell expectations: relative flags are interpreted against the
// current working directory at startup, not at first use.
func (c *Config) ResolvePaths() error {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root path %q: %w", c.Root, err)
	}
	c.Root = root

	out, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output path %q: %w", c.OutputDir, err)
	}
	c.OutputDir = out

	return nil
}

// Validate checks the configuration before any work is performed.
// The root must exist and be a directory, and the type list must contain
// at least one non-empty suffix. An empty ignore list is valid (it means
// every folder is visited).
func (c *Config) Validate() error {
	info, err := os.Stat(c.Root)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrRootNotFound, c.Root)
	}
	if err != nil {
		return fmt.Errorf("failed to access root folder %s: %w", c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", c.Root)
	}

	if len(c.Types) == 0 {
		return fmt.Errorf("at least one file type must be specified")
	}
	for _, t := range c.Types {
		if t == "" {
			return fmt.Errorf("file types must be non-empty suffixes")
		}
	}

	return nil
}
