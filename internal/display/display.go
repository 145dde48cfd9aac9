// Package display renders the user-facing startup banner and end-of-run
// summary for the CLI. All functions write to an io.Writer for
// testability; color is applied only when the caller asks for it.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Banner describes the run configuration echoed before traversal starts.
type Banner struct {
	Root      string   // Resolved traversal root
	OutputDir string   // Resolved output directory
	Types     []string // File-suffix allow-list
	Ignore    []string // Folder-name ignore substrings
}

// Display writes the formatted banner.
func (b Banner) Display(out io.Writer, colorOutput bool) {
	title := "CodeCombine: combining code files by folder"
	if colorOutput {
		title = color.New(color.Bold).Sprint(title)
	}

	fmt.Fprintf(out, "%s\n", title)
	fmt.Fprintf(out, "Root folder: %s\n", b.Root)
	fmt.Fprintf(out, "Output folder: %s\n", b.OutputDir)
	fmt.Fprintf(out, "File types: %s\n", strings.Join(b.Types, ", "))
	fmt.Fprintf(out, "Ignored folders: %s\n", formatIgnore(b.Ignore))
}

// formatIgnore renders the ignore list, making the empty list explicit so
// operators can tell "nothing ignored" from a missing line.
func formatIgnore(ignore []string) string {
	if len(ignore) == 0 {
		return "(none)"
	}
	return strings.Join(ignore, ", ")
}

// Summary describes the outcome of a completed run.
type Summary struct {
	Directories int // Directories that produced an artifact
	Files       int // Source files combined across all artifacts
	Warnings    int // Per-file decode failures
}

// Display writes the formatted summary. Green when clean, yellow warning
// count when any file content had to be replaced with a placeholder.
func (s Summary) Display(out io.Writer, colorOutput bool) {
	line := fmt.Sprintf("Combined %d file(s) across %d folder(s).", s.Files, s.Directories)
	if colorOutput {
		line = color.New(color.FgGreen).Sprint(line)
	}
	fmt.Fprintf(out, "%s\n", line)

	if s.Warnings > 0 {
		warnLine := fmt.Sprintf("%d file(s) could not be decoded and were replaced with placeholders.", s.Warnings)
		if colorOutput {
			warnLine = color.New(color.FgYellow).Sprint(warnLine)
		}
		fmt.Fprintf(out, "%s\n", warnLine)
	}
}
