// Package combiner implements the per-folder aggregation pipeline: it
// scans the tree, computes deterministic artifact names, and streams each
// folder's matching files into one combined text file.
package combiner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/codecombine/internal/config"
	"github.com/harrison/codecombine/internal/filelock"
	"github.com/harrison/codecombine/internal/fileutil"
)

// lockFileName is the run lock created inside the output directory to keep
// two concurrent runs from interleaving writes to the same artifacts.
const lockFileName = ".codecombine.lock"

// Logger is the minimal logging interface the combiner reports through.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// RunResult summarizes a completed combine run.
type RunResult struct {
	// Directories is the number of directories that produced an artifact
	Directories int
	// Files is the total number of source files combined across all artifacts
	Files int
	// Warnings is the number of per-file decode failures encountered
	Warnings int
	// Artifacts lists the absolute paths of all written artifacts, in the
	// order they were produced
	Artifacts []string
}

// Combiner runs the combine pipeline for one immutable configuration.
type Combiner struct {
	cfg *config.Config
	log Logger
}

// New creates a Combiner for the given configuration and logger.
func New(cfg *config.Config, log Logger) *Combiner {
	return &Combiner{cfg: cfg, log: log}
}

// Run executes a single combine pass: validate the configuration, create
// the output directory, acquire the run lock, scan the tree, and write one
// artifact per directory with matching files.
//
// Validation failures (including a missing root) happen before the output
// directory is created, so an aborted run leaves no trace on disk.
func (c *Combiner) Run() (*RunResult, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output folder %s: %w", c.cfg.OutputDir, err)
	}

	lock := filelock.NewRunLock(filepath.Join(c.cfg.OutputDir, lockFileName))
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("another run is already writing to %s", c.cfg.OutputDir)
	}
	defer lock.Unlock()

	dirs, err := fileutil.ScanTree(c.cfg.Root, fileutil.ScanOptions{
		Types:  c.cfg.Types,
		Ignore: c.cfg.Ignore,
	})
	if err != nil {
		return nil, err
	}

	result := &RunResult{}
	for _, d := range dirs {
		c.log.LogDebug(fmt.Sprintf("Combining %d file(s) in %s", len(d.Files), d.Dir))

		dirResult, err := c.combineDir(d)
		if err != nil {
			return result, err
		}

		rel, relErr := filepath.Rel(c.cfg.Root, d.Dir)
		if relErr != nil {
			rel = d.Dir
		}
		c.log.LogInfo(fmt.Sprintf("Combined %d file(s) for '%s' into '%s'.",
			dirResult.FilesCombined, rel, dirResult.ArtifactPath))

		result.Directories++
		result.Files += dirResult.FilesCombined
		result.Warnings += dirResult.DecodeFailures
		result.Artifacts = append(result.Artifacts, dirResult.ArtifactPath)
	}

	return result, nil
}
