package metadata_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediasort/internal/logging"
	"mediasort/internal/mediatype"
	"mediasort/internal/metadata"
)

func TestParseExifTime(t *testing.T) {
	cases := []string{
		"2025:11:18 14:30:45",
		`"2025:11:18 14:30:45"`,
		"2025-11-18 14:30:45",
		"  2025:11:18 14:30:45  ",
	}
	want := time.Date(2025, 11, 18, 14, 30, 45, 0, time.Local)
	for _, in := range cases {
		got, err := metadata.ParseExifTime(in)
		if err != nil {
			t.Fatalf("ParseExifTime(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseExifTime(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseExifTimeMalformed(t *testing.T) {
	for _, in := range []string{"", "not a date", "2025:13:45 99:99:99", "20251118"} {
		if _, err := metadata.ParseExifTime(in); err == nil {
			t.Fatalf("ParseExifTime(%q): expected error", in)
		}
	}
}

func TestExtractDateFallsBackToFileTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.flac")
	if err := os.WriteFile(path, []byte("not really audio"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	stamp := time.Date(2020, 3, 15, 12, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	extractor := metadata.NewExtractor(logging.NewNop())
	info, ok := mediatype.Resolve(path)
	if !ok {
		t.Fatal("expected flac to resolve as media")
	}
	got := extractor.ExtractDate(path, info)
	if got.IsZero() {
		t.Fatal("expected a usable date")
	}
	// The filesystem may or may not record a birth time; either the
	// explicit stamp or the recent creation instant is acceptable.
	if !got.Equal(stamp) && time.Since(got) > time.Minute {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestExtractDateImageWithoutExif(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("no exif here"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	extractor := metadata.NewExtractor(logging.NewNop())
	got := extractor.ExtractDate(path, mediatype.Info{Type: mediatype.Image, Ext: "JPG"})
	if got.IsZero() {
		t.Fatal("extraction must always yield a usable date")
	}
}

func TestExtractDateMissingFile(t *testing.T) {
	extractor := metadata.NewExtractor(logging.NewNop())
	got := extractor.ExtractDate(filepath.Join(t.TempDir(), "gone.jpg"), mediatype.Info{Type: mediatype.Image, Ext: "JPG"})
	if got.IsZero() || time.Since(got) > time.Minute {
		t.Fatalf("expected current-time fallback, got %v", got)
	}
}
