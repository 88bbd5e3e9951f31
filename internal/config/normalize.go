package config

import "strings"

// normalize trims whitespace, lowercases extension entries, and fills
// unset ambient fields with repository defaults so later validation can
// assume a consistent shape.
func (c *Config) normalize() {
	c.Global.DateFormat = strings.TrimSpace(c.Global.DateFormat)
	if c.Global.DateFormat == "" {
		c.Global.DateFormat = defaultDateFormat
	}
	c.Global.DirectoryTemplate = strings.TrimSpace(c.Global.DirectoryTemplate)
	if c.Global.DirectoryTemplate == "" {
		c.Global.DirectoryTemplate = defaultDirectoryTemplate
	}

	for i := range c.Rules {
		rule := &c.Rules[i]
		rule.Name = strings.TrimSpace(rule.Name)
		rule.DirectoryTemplate = strings.TrimSpace(rule.DirectoryTemplate)
		rule.DateFormat = strings.TrimSpace(rule.DateFormat)
		rule.MinSize = strings.TrimSpace(rule.MinSize)
		rule.MaxSize = strings.TrimSpace(rule.MaxSize)
		if rule.MinSize == "" {
			rule.MinSize = "0"
		}
		if rule.MaxSize == "" {
			rule.MaxSize = "0"
		}
		for j, ext := range rule.Extensions {
			rule.Extensions[j] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
		}
	}

	normalized := make(map[string][]string, len(c.ExtensionAliases))
	for group, exts := range c.ExtensionAliases {
		lowered := make([]string, 0, len(exts))
		for _, ext := range exts {
			lowered = append(lowered, strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, "."))))
		}
		normalized[group] = lowered
	}
	c.ExtensionAliases = normalized

	c.Logging.Format = strings.TrimSpace(c.Logging.Format)
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.TrimSpace(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}
