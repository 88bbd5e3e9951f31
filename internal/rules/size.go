package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)

// byte-unit multipliers use binary prefixes; lowercase suffixes denote
// bits (1 Kb = 128 bytes).
var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"KB": 1024,
	"MB": 1024 * 1024,
	"GB": 1024 * 1024 * 1024,
	"TB": 1024 * 1024 * 1024 * 1024,
	"Kb": 128, "kb": 128,
	"Mb": 128 * 1024, "mb": 128 * 1024,
	"Gb": 128 * 1024 * 1024, "gb": 128 * 1024 * 1024,
	"Tb": 128 * 1024 * 1024 * 1024, "tb": 128 * 1024 * 1024 * 1024,
}

// ParseSize converts a size string such as "5MB", "100KB", or "1.5GB"
// into bytes. "0" and "0B" parse to the unbounded sentinel 0.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "0" || trimmed == "0B" || trimmed == "0b" {
		return 0, nil
	}

	caps := sizePattern.FindStringSubmatch(trimmed)
	if caps == nil {
		return 0, fmt.Errorf("invalid size format: %q", value)
	}

	number, err := strconv.ParseFloat(caps[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in size %q: %w", value, err)
	}

	unit := caps[2]
	if unit == "b" {
		return int64(number / 8), nil
	}
	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unknown size unit %q in %q", unit, value)
	}
	return int64(number * float64(multiplier)), nil
}

// FormatSize renders bytes for display. The 0 sentinel renders as the
// unbounded marker.
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "∞"
	}
	return humanize.IBytes(uint64(bytes))
}
