package combiner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/harrison/codecombine/internal/fileutil"
)

// DirResult holds the outcome of combining one directory.
type DirResult struct {
	// ArtifactPath is the absolute path of the combined file that was written
	ArtifactPath string
	// FilesCombined is the number of source files included in the artifact,
	// counting files that received a placeholder due to a decode failure
	FilesCombined int
	// DecodeFailures is the number of files whose content could not be
	// included because their bytes are not valid UTF-8
	DecodeFailures int
}

// combineDir writes one artifact for a directory with matching files.
// Each file contributes a path-labeled header followed by its content, or
// a placeholder line when the bytes are not valid UTF-8. Decode failures
// are logged as warnings and never abort the artifact; any other I/O
// failure is fatal.
func (c *Combiner) combineDir(d fileutil.DirFiles) (DirResult, error) {
	name, err := ArtifactName(c.cfg.Root, d.Dir)
	if err != nil {
		return DirResult{}, fmt.Errorf("failed to compute artifact name for %s: %w", d.Dir, err)
	}
	artifact := ArtifactPath(c.cfg.OutputDir, name)

	out, err := os.Create(artifact)
	if err != nil {
		return DirResult{}, fmt.Errorf("failed to create %s: %w", artifact, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	result := DirResult{ArtifactPath: artifact}

	for _, file := range d.Files {
		path := filepath.Join(d.Dir, file)
		rel, err := filepath.Rel(c.cfg.Root, path)
		if err != nil {
			return result, fmt.Errorf("failed to relativize %s: %w", path, err)
		}

		fmt.Fprintf(w, "# ===== %s =====\n\n", rel)

		data, err := os.ReadFile(path)
		if err != nil {
			return result, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if utf8.Valid(data) {
			w.Write(data)
		} else {
			c.log.LogWarn(fmt.Sprintf("Unable to read '%s'. It may not be a text file or may use a different encoding.", path))
			fmt.Fprintf(w, "# Warning: Content of '%s' could not be included due to encoding issues.\n", rel)
			result.DecodeFailures++
		}

		w.WriteString("\n\n")
		result.FilesCombined++
	}

	if err := w.Flush(); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", artifact, err)
	}
	if err := out.Close(); err != nil {
		return result, fmt.Errorf("failed to close %s: %w", artifact, err)
	}

	return result, nil
}
