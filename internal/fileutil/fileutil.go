// Package fileutil provides small filesystem helpers shared by the
// classification engine.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsEmptyDir reports whether path is a directory containing no entries.
// Unreadable paths report false.
func IsEmptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	return len(entries) == 0
}

// RemoveEmptyDirs deletes empty directories beneath root, deepest
// first, so chains of nested empty directories collapse in one pass.
// The root itself is never removed. Returns the removed paths.
func RemoveEmptyDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A directory vanishing mid-walk is not a failure here.
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(os.PathSeparator)) > strings.Count(dirs[j], string(os.PathSeparator))
	})

	var removed []string
	for _, dir := range dirs {
		if IsEmptyDir(dir) {
			if err := os.Remove(dir); err != nil {
				return removed, err
			}
			removed = append(removed, dir)
		}
	}
	return removed, nil
}
