// Package fs provides filesystem adapters for reading, walking and hashing
// stylesheet sources.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/precomp/internal/core/ports"
)

var _ ports.SourceWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root, skipping VCS metadata,
// node_modules and the directories listed in ignores. Ignores are compared
// by absolute path, so a nested directory that merely shares a name with an
// ignored one is still walked. Unreadable entries are skipped rather than
// aborting the walk.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	skip := make(map[string]bool, len(ignores))
	for _, ignore := range ignores {
		if abs, err := filepath.Abs(ignore); err == nil {
			skip[abs] = true
		}
	}

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(path, d.Name(), skip) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(path, name string, skip map[string]bool) bool {
	switch name {
	case ".git", ".jj", "node_modules":
		return true
	}

	if len(skip) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	return err == nil && skip[abs]
}
