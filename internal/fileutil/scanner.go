package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the tree scanning behavior
type ScanOptions struct {
	// Types is a list of file-name suffixes to include (e.g. ".js", ".scss").
	// Matching is case-sensitive and includes the dot, so ".js" matches
	// both "foo.js" and "foo.test.js" but not "foo.JS".
	Types []string
	// Ignore is a list of folder-name substrings to prune. A directory is
	// skipped, together with everything beneath it, when any token is a
	// substring of its base name.
	Ignore []string
}

// DirFiles holds one visited directory and its immediate matching files.
// Files contains base names only, sorted lexicographically.
type DirFiles struct {
	Dir   string
	Files []string
}

// ShouldIgnore reports whether a folder base name matches any ignore token.
// This is substring containment, not exact match: the token "temp" also
// excludes a folder named "temporary". Callers relying on exact-segment
// semantics must not use this predicate.
func ShouldIgnore(name string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// MatchesType reports whether a file name ends with any of the given
// suffixes. Case-sensitive, exact string suffix including the dot.
func MatchesType(name string, types []string) bool {
	for _, t := range types {
		if strings.HasSuffix(name, t) {
			return true
		}
	}
	return false
}

// ScanTree walks the tree rooted at root and returns, in encounter order,
// every non-ignored directory that has at least one immediate file matching
// the type list. Ignored directories are pruned before descent, so their
// descendants are never visited. Directories with zero matches are dropped.
//
// If the root's own base name matches an ignore token, the scan returns an
// empty result without error.
func ScanTree(root string, opts ScanOptions) ([]DirFiles, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path is not a directory: %s", root)
	}

	if ShouldIgnore(filepath.Base(root), opts.Ignore) {
		return nil, nil
	}

	// Accumulate matches per directory; dirOrder preserves encounter order
	// so artifact writes are reproducible across runs.
	matches := make(map[string][]string)
	var dirOrder []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}

		if d.IsDir() {
			if path != root && ShouldIgnore(d.Name(), opts.Ignore) {
				return filepath.SkipDir
			}
			dirOrder = append(dirOrder, path)
			return nil
		}

		if MatchesType(d.Name(), opts.Types) {
			dir := filepath.Dir(path)
			matches[dir] = append(matches[dir], d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory tree: %w", err)
	}

	result := make([]DirFiles, 0, len(matches))
	for _, dir := range dirOrder {
		files, ok := matches[dir]
		if !ok {
			continue
		}
		sort.Strings(files)
		result = append(result, DirFiles{Dir: dir, Files: files})
	}

	return result, nil
}
