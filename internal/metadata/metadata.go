// Package metadata acquires a representative date for a media file.
// Extraction walks an ordered chain of providers and always yields a
// usable time: every candidate source has a further fallback, so the
// operation has no error path. Missing or malformed EXIF data surfaces
// only as a warning log event.
package metadata

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"mediasort/internal/logging"
	"mediasort/internal/mediatype"
)

// EXIF timestamps use colon-separated date components.
const exifTimeLayout = "2006:01:02 15:04:05"

type provider struct {
	name    string
	extract func(path string) (time.Time, error)
}

// Extractor resolves dates through an ordered fallback chain. Images
// try EXIF DateTimeOriginal, then EXIF DateTime, then filesystem birth
// time, then modification time; other media start at birth time.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor returns an extractor logging fallback warnings through
// logger. A nil logger discards them.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logging.NewComponentLogger(logger, "metadata")}
}

// ExtractDate returns the best available date for path. It never fails;
// when every source is unavailable the current time is used and a
// warning is logged.
func (e *Extractor) ExtractDate(path string, info mediatype.Info) time.Time {
	providers := e.chain(info)
	for _, p := range providers {
		ts, err := p.extract(path)
		if err != nil {
			e.logger.Warn("date source unavailable, falling back",
				logging.String("file", path),
				logging.String("source", p.name),
				logging.Error(err),
			)
			continue
		}
		e.logger.Debug("date resolved",
			logging.String("file", path),
			logging.String("source", p.name),
			logging.String("date", ts.Format(time.RFC3339)),
		)
		return ts
	}

	e.logger.Warn("no date source available, using current time", logging.String("file", path))
	return time.Now()
}

func (e *Extractor) chain(info mediatype.Info) []provider {
	var providers []provider
	if info.Type == mediatype.Image {
		providers = append(providers,
			provider{"exif DateTimeOriginal", func(path string) (time.Time, error) {
				return exifDate(path, exif.DateTimeOriginal)
			}},
			provider{"exif DateTime", func(path string) (time.Time, error) {
				return exifDate(path, exif.DateTime)
			}},
		)
	}
	return append(providers,
		provider{"file birth time", birthTime},
		provider{"file modification time", modTime},
	)
}

func exifDate(path string, tag exif.FieldName) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("open for exif: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif: %w", err)
	}

	field, err := x.Get(tag)
	if err != nil {
		return time.Time{}, fmt.Errorf("exif tag %s: %w", tag, err)
	}
	raw, err := field.StringVal()
	if err != nil {
		return time.Time{}, fmt.Errorf("exif tag %s value: %w", tag, err)
	}
	return ParseExifTime(raw)
}

// ParseExifTime parses an EXIF date string. The canonical layout is
// "YYYY:MM:DD HH:MM:SS"; a dash-separated variant written by some
// cameras is accepted too.
func ParseExifTime(value string) (time.Time, error) {
	cleaned := strings.TrimSpace(strings.Trim(strings.TrimSpace(value), `"`))
	if ts, err := time.ParseInLocation(exifTimeLayout, cleaned, time.Local); err == nil {
		return ts, nil
	}
	if ts, err := time.ParseInLocation("2006-01-02 15:04:05", cleaned, time.Local); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("malformed exif timestamp %q", value)
}

func modTime(path string) (time.Time, error) {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return st.ModTime(), nil
}
