package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediasort/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if len(cfg.Rules) == 0 {
		t.Fatal("default config must carry rules")
	}
	if cfg.Global.DateFormat != "YYYYMMDD" {
		t.Fatalf("unexpected default date format %q", cfg.Global.DateFormat)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("file should not exist")
	}
	if path == "" {
		t.Fatal("expected resolved path")
	}
	if len(cfg.Rules) != len(config.Default().Rules) {
		t.Fatal("expected default rules")
	}
}

func TestLoadParsesRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[global]
date_format = "YYYY-MM-DD"
directory_template = "{type}/{date}"
clean_empty_dirs = false

[[rules]]
name = "Big JPGs"
extensions = ["JPG"]
min_size = "5MB"
max_size = "0"
directory_template = "Photos/{year}/{month}"
enabled = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Global.DateFormat != "YYYY-MM-DD" {
		t.Fatalf("unexpected date format %q", cfg.Global.DateFormat)
	}
	if cfg.Global.CleanEmptyDirs {
		t.Fatal("clean_empty_dirs should be false")
	}
	if len(cfg.Rules) != 1 || cfg.Rules[0].Name != "Big JPGs" {
		t.Fatalf("unexpected rules: %+v", cfg.Rules)
	}
	// Extensions are normalized to lowercase on load.
	if cfg.Rules[0].Extensions[0] != "jpg" {
		t.Fatalf("expected normalized extension, got %q", cfg.Rules[0].Extensions[0])
	}
}

func TestLoadRejectsBadSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[[rules]]
name = "Broken"
extensions = ["jpg"]
min_size = "lots"
directory_template = "X"
enabled = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected size parse failure")
	}
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = []config.Rule{{
		Name:              "Inverted",
		Extensions:        []string{"jpg"},
		MinSize:           "10MB",
		MaxSize:           "5MB",
		DirectoryTemplate: "X",
		Enabled:           true,
	}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected inverted range rejection")
	}
}

func TestCompiledRulesExpandAliases(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = []config.Rule{{
		Name:              "Photos",
		Extensions:        []string{"jpg"},
		MinSize:           "0",
		MaxSize:           "0",
		DirectoryTemplate: "Photos",
		Enabled:           true,
	}}

	compiled, err := cfg.CompiledRules()
	if err != nil {
		t.Fatalf("CompiledRules: %v", err)
	}
	if len(compiled) != 1 {
		t.Fatalf("expected one rule, got %d", len(compiled))
	}
	if !compiled[0].AdmitsExtension("jpeg") {
		t.Fatal("alias group member jpeg should be admitted via jpg")
	}
}

func TestCompiledRulesParseSizes(t *testing.T) {
	cfg := config.Default()
	compiled, err := cfg.CompiledRules()
	if err != nil {
		t.Fatalf("CompiledRules: %v", err)
	}
	if compiled[0].MinSize != 5*1024*1024 {
		t.Fatalf("expected 5MB min, got %d", compiled[0].MinSize)
	}
	if compiled[0].MaxSize != 0 {
		t.Fatalf("expected unbounded max, got %d", compiled[0].MaxSize)
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[[rules]]") {
		t.Fatal("sample should contain rule sections")
	}

	// The sample must itself load and validate.
	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
}
