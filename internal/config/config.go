// Package config loads and validates the mediasort configuration:
// global defaults, the ordered classification rule list, extension
// aliases, scanner exclusions, and log output settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Global holds the fallback settings used when no rule matches a file.
type Global struct {
	DateFormat        string `toml:"date_format"`
	DirectoryTemplate string `toml:"directory_template"`
	CleanEmptyDirs    bool   `toml:"clean_empty_dirs"`
}

// Rule is the on-disk form of a classification rule. Sizes are human
// strings ("5MB", "0" for unbounded); declaration order in the file is
// the rule priority.
type Rule struct {
	Name              string   `toml:"name"`
	Description       string   `toml:"description"`
	Extensions        []string `toml:"extensions"`
	MinSize           string   `toml:"min_size"`
	MaxSize           string   `toml:"max_size"`
	DirectoryTemplate string   `toml:"directory_template"`
	DateFormat        string   `toml:"date_format"`
	Enabled           bool     `toml:"enabled"`
}

// Exclude controls which files and directories the scanner skips.
type Exclude struct {
	HiddenFiles bool     `toml:"hidden_files"`
	Directories []string `toml:"directories"`
	Patterns    []string `toml:"patterns"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for mediasort.
type Config struct {
	Global           Global              `toml:"global"`
	Rules            []Rule              `toml:"rules"`
	ExtensionAliases map[string][]string `toml:"extension_aliases"`
	Exclude          Exclude             `toml:"exclude"`
	Logging          Logging             `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/mediasort/config.toml")
}

// Load locates, parses, and validates a configuration file. When the
// file does not exist the built-in defaults are returned. The second
// return is the resolved path, the third whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		loaded := Config{}
		if err := toml.NewDecoder(file).Decode(&loaded); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
		cfg = loaded
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("mediasort.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ExpandPath resolves a leading ~ and returns a cleaned absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a commented sample configuration file to the
// specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
