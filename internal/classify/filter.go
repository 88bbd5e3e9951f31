package classify

import (
	"strings"

	"mediasort/internal/config"
)

// Filter decides which files and directories the scanner ignores,
// driven by the exclude section of the configuration.
type Filter struct {
	cfg config.Exclude
}

// NewFilter builds a filter from exclusion config.
func NewFilter(cfg config.Exclude) *Filter {
	return &Filter{cfg: cfg}
}

// ExcludeDir reports whether a directory of the given name should be
// skipped entirely.
func (f *Filter) ExcludeDir(name string) bool {
	if f.cfg.HiddenFiles && strings.HasPrefix(name, ".") {
		return true
	}
	for _, excluded := range f.cfg.Directories {
		if strings.EqualFold(excluded, name) {
			return true
		}
	}
	return false
}

// ExcludeFile reports whether a file of the given name should be
// ignored by the scanner.
func (f *Filter) ExcludeFile(name string) bool {
	if f.cfg.HiddenFiles && strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range f.cfg.Patterns {
		if matchWildcard(pattern, name) {
			return true
		}
	}
	return false
}

// matchWildcard supports only * as a wildcard: "*.tmp", "temp*",
// "*cache*", or an exact case-insensitive name.
func matchWildcard(pattern, text string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return strings.EqualFold(pattern, text)
	}

	lowerText := strings.ToLower(text)
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") && len(pattern) > 2 {
		middle := strings.ToLower(pattern[1 : len(pattern)-1])
		return strings.Contains(lowerText, middle)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(lowerText, strings.ToLower(suffix))
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(lowerText, strings.ToLower(prefix))
	}
	return false
}
