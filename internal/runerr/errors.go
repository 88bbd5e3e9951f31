// Package runerr defines the error classes used across a classification
// run and a helper for building errors that carry stage context.
package runerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks unusable configuration; fatal before a run starts.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation marks invalid per-file input such as a bad template.
	ErrValidation = errors.New("validation error")
	// ErrConflict marks an exhausted conflict-resolution search.
	ErrConflict = errors.New("conflict resolution error")
	// ErrIO marks a failed filesystem operation (stat, mkdir, rename).
	ErrIO = errors.New("io error")
)

// Wrap builds an error message that includes stage context while
// tagging it with the provided marker for later classification. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "classification failure"
	}
	return strings.Join(parts, ": ")
}
