// Package rules holds the classification rule model and the first-match
// selection logic. Matching is a pure function over an ordered rule
// slice; declaration order is the only tie-break between rules.
package rules

import "strings"

// Rule maps an extension set and size range to a directory template.
// Extensions are stored lowercase. MinSize is inclusive; MaxSize is
// exclusive, with 0 meaning unbounded above.
type Rule struct {
	Name              string
	Description       string
	Extensions        []string
	MinSize           int64
	MaxSize           int64
	DirectoryTemplate string
	DateFormat        string
	Enabled           bool
}

// AdmitsExtension reports whether ext belongs to the rule's extension
// set, ignoring case. A literal "*" entry admits every extension.
func (r *Rule) AdmitsExtension(ext string) bool {
	lower := strings.ToLower(ext)
	for _, candidate := range r.Extensions {
		if candidate == "*" || strings.ToLower(candidate) == lower {
			return true
		}
	}
	return false
}

// AdmitsSize reports whether size lies in [MinSize, MaxSize), treating
// MaxSize == 0 as unbounded.
func (r *Rule) AdmitsSize(size int64) bool {
	if size < r.MinSize {
		return false
	}
	if r.MaxSize == 0 {
		return true
	}
	return size < r.MaxSize
}

// Match returns the first enabled rule admitting the extension and
// size, or nil when no rule applies and the caller should fall back to
// the global default template. Rules are evaluated strictly in slice
// order.
func Match(ruleSet []Rule, ext string, size int64) *Rule {
	for i := range ruleSet {
		rule := &ruleSet[i]
		if !rule.Enabled {
			continue
		}
		if !rule.AdmitsExtension(ext) {
			continue
		}
		if !rule.AdmitsSize(size) {
			continue
		}
		return rule
	}
	return nil
}
