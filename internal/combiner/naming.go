package combiner

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeName replaces every character that is not alphanumeric, '-' or
// '_' with an underscore. Distinct inputs can sanitize to the same output
// (e.g. "a.b" and "a/b" both become "a_b"); this collision is a known,
// accepted limitation of the naming scheme and must not be papered over
// with hashing, since that would break the deterministic-naming contract.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ArtifactName computes the output base name for a directory. The root
// itself maps to the root's base name; any other directory maps to
// "<rootbase>_<sanitized relative path>", with path separators folded
// into underscores before sanitization.
//
// The result is a pure function of (root, dir): the same pair produces
// the same name on every run.
func ArtifactName(root, dir string) (string, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}

	base := filepath.Base(root)
	if rel == "." {
		return base, nil
	}

	flattened := strings.ReplaceAll(rel, string(filepath.Separator), "_")
	return base + "_" + SanitizeName(flattened), nil
}

// ArtifactPath joins the output directory with the artifact base name and
// the fixed ".txt" extension.
func ArtifactPath(outputDir, name string) string {
	return filepath.Join(outputDir, name+".txt")
}
