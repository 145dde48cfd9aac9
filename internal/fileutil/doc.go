// Package fileutil provides the directory traversal and file selection
// primitives used by the combiner.
//
// ScanTree walks a tree top-down with filepath.WalkDir, pruning any
// directory whose base name contains an ignore token before descending
// into it, and returns one DirFiles entry per directory that has at
// least one immediate file matching the configured suffix list.
//
// The two predicates are exported on their own:
//
//   - ShouldIgnore: substring containment of any ignore token in a
//     folder base name. Deliberately NOT an exact segment match — the
//     token "temp" also prunes "temporary".
//   - MatchesType: case-sensitive suffix match including the dot.
//
// Per-directory file lists are sorted lexicographically and directories
// appear in walk encounter order, so two scans of an unchanged tree
// produce identical results.
package fileutil
