package fileutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		tokens []string
		want   bool
	}{
		{"exact match", "node_modules", []string{"node_modules", ".git"}, true},
		{"substring match", "temporary", []string{"temp"}, true},
		{"token inside name", "my_node_modules_cache", []string{"node_modules"}, true},
		{"dot git", ".git", []string{"node_modules", ".git"}, true},
		{"no match", "src", []string{"node_modules", ".git"}, false},
		{"empty token list", ".git", nil, false},
		{"case sensitive", "Node_Modules", []string{"node_modules"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldIgnore(tt.folder, tt.tokens); got != tt.want {
				t.Errorf("ShouldIgnore(%q, %v) = %v, want %v", tt.folder, tt.tokens, got, tt.want)
			}
		})
	}
}

func TestMatchesType(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		types []string
		want  bool
	}{
		{"simple suffix", "app.js", []string{".js"}, true},
		{"double extension", "foo.test.js", []string{".js"}, true},
		{"wrong suffix", "app.jsx", []string{".js"}, false},
		{"jsx allowed", "app.jsx", []string{".jsx", ".js"}, true},
		{"case sensitive", "APP.JS", []string{".js"}, false},
		{"no dot in name", "Makefile", []string{".js"}, false},
		{"empty type list", "app.js", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesType(tt.file, tt.types); got != tt.want {
				t.Errorf("MatchesType(%q, %v) = %v, want %v", tt.file, tt.types, got, tt.want)
			}
		})
	}
}

// writeTree creates the given files (with parent directories) under root.
func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("content of "+f), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
}

func TestScanTree(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"main.js",
		"readme.md",
		"src/app.js",
		"src/utils/helpers.js",
		"src/utils/helpers.test.js",
		"docs/notes.md",
		"node_modules/pkg/index.js",
		"tempfiles/cache.js",
	})

	dirs, err := ScanTree(tmpDir, ScanOptions{
		Types:  []string{".js"},
		Ignore: []string{"node_modules", "temp"},
	})
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}

	got := make(map[string][]string)
	for _, d := range dirs {
		rel, err := filepath.Rel(tmpDir, d.Dir)
		if err != nil {
			t.Fatalf("failed to relativize %s: %v", d.Dir, err)
		}
		got[rel] = d.Files
	}

	want := map[string][]string{
		".":   {"main.js"},
		"src": {"app.js"},
		filepath.Join("src", "utils"): {"helpers.js", "helpers.test.js"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanTree() = %v, want %v", got, want)
	}
}

func TestScanTreeDropsEmptyMatchDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"docs/readme.md",
		"src/app.js",
	})

	dirs, err := ScanTree(tmpDir, ScanOptions{Types: []string{".js"}})
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}

	if len(dirs) != 1 {
		t.Fatalf("expected 1 directory with matches, got %d", len(dirs))
	}
	if filepath.Base(dirs[0].Dir) != "src" {
		t.Errorf("expected src directory, got %s", dirs[0].Dir)
	}
}

func TestScanTreeIgnoredSubtreeNeverVisited(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"app.js",
		"vendor/lib/deep/nested.js",
	})

	dirs, err := ScanTree(tmpDir, ScanOptions{
		Types:  []string{".js"},
		Ignore: []string{"vendor"},
	})
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}

	for _, d := range dirs {
		rel, _ := filepath.Rel(tmpDir, d.Dir)
		if rel != "." {
			t.Errorf("unexpected directory visited: %s", rel)
		}
	}
}

func TestScanTreeEmptyIgnoreVisitsEverything(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"node_modules/pkg/index.js",
		".git/hooks/hook.js",
	})

	dirs, err := ScanTree(tmpDir, ScanOptions{Types: []string{".js"}, Ignore: []string{}})
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}

	if len(dirs) != 2 {
		t.Errorf("expected node_modules/pkg and .git/hooks to be visited, got %d directories", len(dirs))
	}
}

func TestScanTreeRootNameMatchesIgnore(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "temporary")
	writeTree(t, root, []string{"app.js"})

	dirs, err := ScanTree(root, ScanOptions{
		Types:  []string{".js"},
		Ignore: []string{"temp"},
	})
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}
	if len(dirs) != 0 {
		t.Errorf("root matching an ignore token should yield no directories, got %d", len(dirs))
	}
}

func TestScanTreeMissingRoot(t *testing.T) {
	_, err := ScanTree(filepath.Join(t.TempDir(), "does-not-exist"), ScanOptions{Types: []string{".js"}})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScanTreeDeterministicOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"b/two.js",
		"a/one.js",
		"root.js",
	})

	first, err := ScanTree(tmpDir, ScanOptions{Types: []string{".js"}})
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}
	second, err := ScanTree(tmpDir, ScanOptions{Types: []string{".js"}})
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two scans of an unchanged tree differ:\nfirst:  %v\nsecond: %v", first, second)
	}
}
