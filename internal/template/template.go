// Package template expands directory-template strings into relative
// paths. Expansion fails closed: unknown placeholders and path segments
// that would escape or corrupt the target tree are hard errors, never
// silently dropped.
package template

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mediasort/internal/mediatype"
)

var (
	// ErrUnknownVariable marks a template referencing a placeholder the
	// renderer does not recognize.
	ErrUnknownVariable = errors.New("unknown template variable")
	// ErrInvalidSegment marks a rendered path containing an empty, "."
	// or ".." segment.
	ErrInvalidSegment = errors.New("invalid path segment")
)

// Context supplies the values substituted into a template.
type Context struct {
	Type mediatype.Type
	// Ext is the uppercase extension, e.g. "JPG".
	Ext  string
	Date time.Time
	// DateFormat drives the {date} placeholder. Rule overrides take
	// precedence over the global default; the caller resolves that
	// before rendering.
	DateFormat string
}

// Render expands template into a slash-separated relative path using a
// single left-to-right scan. Recognized placeholders: {type}, {ext},
// {year}, {month}, {day}, {date}.
func Render(template string, ctx Context) (string, error) {
	var out strings.Builder
	out.Grow(len(template) + 16)

	for i := 0; i < len(template); {
		ch := template[i]
		if ch != '{' {
			out.WriteByte(ch)
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder at offset %d", ErrUnknownVariable, i)
		}
		token := template[i+1 : i+end]
		value, err := expand(token, ctx)
		if err != nil {
			return "", err
		}
		out.WriteString(value)
		i += end + 1
	}

	rendered := out.String()
	if err := validateSegments(rendered); err != nil {
		return "", err
	}
	return rendered, nil
}

func expand(token string, ctx Context) (string, error) {
	switch token {
	case "type":
		return ctx.Type.String(), nil
	case "ext":
		return strings.ToUpper(ctx.Ext), nil
	case "year":
		return ctx.Date.Format("2006"), nil
	case "month":
		return ctx.Date.Format("01"), nil
	case "day":
		return ctx.Date.Format("02"), nil
	case "date":
		return FormatDate(ctx.Date, ctx.DateFormat), nil
	default:
		return "", fmt.Errorf("%w: {%s}", ErrUnknownVariable, token)
	}
}

func validateSegments(rendered string) error {
	for _, segment := range strings.Split(rendered, "/") {
		switch segment {
		case "":
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidSegment, rendered)
		case ".", "..":
			return fmt.Errorf("%w: %q in %q", ErrInvalidSegment, segment, rendered)
		}
	}
	return nil
}

// FormatDate renders a date according to a format string built from the
// tokens YYYY, MM and DD (e.g. "YYYYMMDD", "YYYY/MM", "YYYY-MM-DD").
// Text outside those tokens passes through literally, so fixed
// directory names remain usable as formats.
func FormatDate(date time.Time, format string) string {
	result := strings.TrimSpace(format)
	result = strings.ReplaceAll(result, "YYYY", date.Format("2006"))
	result = strings.ReplaceAll(result, "MM", date.Format("01"))
	result = strings.ReplaceAll(result, "DD", date.Format("02"))
	return result
}
