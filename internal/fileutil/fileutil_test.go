package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"mediasort/internal/fileutil"
	"mediasort/internal/testsupport"
)

func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if !fileutil.IsEmptyDir(dir) {
		t.Fatal("fresh temp dir should be empty")
	}
	testsupport.WriteFile(t, filepath.Join(dir, "f"), 1)
	if fileutil.IsEmptyDir(dir) {
		t.Fatal("dir with a file is not empty")
	}
	if fileutil.IsEmptyDir(filepath.Join(dir, "missing")) {
		t.Fatal("missing path must not report empty")
	}
}

func TestRemoveEmptyDirsCollapsesNested(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	keep := filepath.Join(root, "keep")
	testsupport.WriteFile(t, filepath.Join(keep, "file.jpg"), 10)

	removed, err := fileutil.RemoveEmptyDirs(root)
	if err != nil {
		t.Fatalf("RemoveEmptyDirs: %v", err)
	}
	if len(removed) != 3 {
		t.Fatalf("expected 3 removals, got %v", removed)
	}
	if _, err := os.Stat(filepath.Join(root, "a")); !os.IsNotExist(err) {
		t.Fatal("expected nested empty chain removed")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("non-empty dir must survive: %v", err)
	}
	if _, err := os.Stat(root); err != nil {
		t.Fatalf("root must survive: %v", err)
	}
}
