package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediasort/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := fmt.Sprintf(`[global]
date_format = "YYYYMMDD"
directory_template = "Media/{ext}"
clean_empty_dirs = false

[logging]
format = "console"
level = "info"
file = %q

[[rules]]
name = "Photos"
extensions = ["jpg", "jpeg"]
min_size = "0"
max_size = "0"
directory_template = "Photos/{ext}"
enabled = true
`, filepath.Join(dir, "mediasort.log"))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}

func TestClassifyCommandMovesFiles(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "photo.jpg"), 512)

	out, err := runCLI(t, "-c", cfgPath, "classify", root)
	if err != nil {
		t.Fatalf("classify: %v\n%s", err, out)
	}
	requireContains(t, out, "MOVED")
	requireContains(t, out, "Total")

	if _, err := os.Stat(filepath.Join(root, "Photos", "JPG", "photo.jpg")); err != nil {
		t.Fatalf("expected classified file: %v", err)
	}
}

func TestClassifyCommandFallsBackToGlobalTemplate(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "song.mp3"), 512)

	out, err := runCLI(t, "-c", cfgPath, "classify", root)
	if err != nil {
		t.Fatalf("classify: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(root, "Media", "MP3", "song.mp3")); err != nil {
		t.Fatalf("expected fallback target: %v", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, err = runCLI(t, "-c", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, out)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if out, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v\n%s", err, out)
	}
}

func TestConfigShowListsRules(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "-c", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	requireContains(t, out, "Photos")
	requireContains(t, out, "Fallback template:")
}
