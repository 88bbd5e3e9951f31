package mediatype_test

import (
	"testing"

	"mediasort/internal/mediatype"
)

func TestResolveCaseInsensitive(t *testing.T) {
	upper, ok := mediatype.Resolve("IMG.JPG")
	if !ok {
		t.Fatal("expected IMG.JPG to resolve")
	}
	lower, ok := mediatype.Resolve("img.jpg")
	if !ok {
		t.Fatal("expected img.jpg to resolve")
	}
	if upper != lower {
		t.Fatalf("expected identical info, got %+v and %+v", upper, lower)
	}
	if upper.Ext != "JPG" {
		t.Fatalf("expected uppercase extension, got %q", upper.Ext)
	}
}

func TestResolveCategories(t *testing.T) {
	cases := []struct {
		name string
		want mediatype.Type
	}{
		{"photo.jpg", mediatype.Image},
		{"raw.NEF", mediatype.Image},
		{"scan.cr2", mediatype.Image},
		{"clip.mp4", mediatype.Video},
		{"movie.MKV", mediatype.Video},
		{"song.flac", mediatype.Audio},
		{"track.mp3", mediatype.Audio},
	}
	for _, tc := range cases {
		info, ok := mediatype.Resolve(tc.name)
		if !ok {
			t.Fatalf("%s: expected media", tc.name)
		}
		if info.Type != tc.want {
			t.Fatalf("%s: expected type %v, got %v", tc.name, tc.want, info.Type)
		}
	}
}

func TestResolveRejectsUnknown(t *testing.T) {
	for _, name := range []string{"document.pdf", "archive.zip", "noext", ".hidden", "trailingdot."} {
		if _, ok := mediatype.Resolve(name); ok {
			t.Fatalf("%s: expected no media info", name)
		}
	}
}

func TestIsMediaExtension(t *testing.T) {
	if !mediatype.IsMediaExtension("JPG") {
		t.Fatal("expected JPG to be a media extension name")
	}
	if !mediatype.IsMediaExtension("flac") {
		t.Fatal("expected flac to be a media extension name")
	}
	if mediatype.IsMediaExtension("Photos") {
		t.Fatal("Photos is not a media extension name")
	}
}
