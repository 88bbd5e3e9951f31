package config

import (
	"errors"
	"fmt"

	"mediasort/internal/rules"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Global.DirectoryTemplate == "" {
		return errors.New("global.directory_template must be set")
	}
	if c.Global.DateFormat == "" {
		return errors.New("global.date_format must be set")
	}
	for i := range c.Rules {
		if err := c.validateRule(i); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateRule(index int) error {
	rule := &c.Rules[index]
	label := rule.Name
	if label == "" {
		return fmt.Errorf("rules[%d]: name must be set", index)
	}
	if len(rule.Extensions) == 0 {
		return fmt.Errorf("rule %q: extensions must not be empty", label)
	}
	for _, ext := range rule.Extensions {
		if ext == "" {
			return fmt.Errorf("rule %q: empty extension entry", label)
		}
	}
	if rule.DirectoryTemplate == "" {
		return fmt.Errorf("rule %q: directory_template must be set", label)
	}
	minSize, err := rules.ParseSize(rule.MinSize)
	if err != nil {
		return fmt.Errorf("rule %q: min_size: %w", label, err)
	}
	maxSize, err := rules.ParseSize(rule.MaxSize)
	if err != nil {
		return fmt.Errorf("rule %q: max_size: %w", label, err)
	}
	if maxSize != 0 && minSize >= maxSize {
		return fmt.Errorf("rule %q: min_size %s must be below max_size %s", label, rule.MinSize, rule.MaxSize)
	}
	return nil
}

// CompiledRules converts the configured rule list into the matcher's
// byte-level representation, expanding extension aliases so any member
// of an alias group admits the whole group.
func (c *Config) CompiledRules() ([]rules.Rule, error) {
	compiled := make([]rules.Rule, 0, len(c.Rules))
	for i := range c.Rules {
		src := &c.Rules[i]
		minSize, err := rules.ParseSize(src.MinSize)
		if err != nil {
			return nil, fmt.Errorf("rule %q: min_size: %w", src.Name, err)
		}
		maxSize, err := rules.ParseSize(src.MaxSize)
		if err != nil {
			return nil, fmt.Errorf("rule %q: max_size: %w", src.Name, err)
		}
		compiled = append(compiled, rules.Rule{
			Name:              src.Name,
			Description:       src.Description,
			Extensions:        c.expandAliases(src.Extensions),
			MinSize:           minSize,
			MaxSize:           maxSize,
			DirectoryTemplate: src.DirectoryTemplate,
			DateFormat:        src.DateFormat,
			Enabled:           src.Enabled,
		})
	}
	return compiled, nil
}

// expandAliases widens an extension list with the full alias group of
// any member, preserving first-seen order and dropping duplicates.
func (c *Config) expandAliases(extensions []string) []string {
	seen := make(map[string]struct{}, len(extensions))
	expanded := make([]string, 0, len(extensions))
	add := func(ext string) {
		if _, ok := seen[ext]; ok {
			return
		}
		seen[ext] = struct{}{}
		expanded = append(expanded, ext)
	}
	for _, ext := range extensions {
		add(ext)
		for _, group := range c.ExtensionAliases {
			for _, member := range group {
				if member == ext {
					for _, sibling := range group {
						add(sibling)
					}
					break
				}
			}
		}
	}
	return expanded
}
