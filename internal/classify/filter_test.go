package classify

import (
	"testing"

	"mediasort/internal/config"
)

func TestExcludeDir(t *testing.T) {
	filter := NewFilter(config.Exclude{
		HiddenFiles: true,
		Directories: []string{"node_modules", ".git"},
	})

	tests := []struct {
		name string
		want bool
	}{
		{"node_modules", true},
		{"Node_Modules", true},
		{".git", true},
		{".cache", true},
		{"Photos", false},
		{"src", false},
	}
	for _, tt := range tests {
		if got := filter.ExcludeDir(tt.name); got != tt.want {
			t.Errorf("ExcludeDir(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExcludeDirKeepsHiddenWhenDisabled(t *testing.T) {
	filter := NewFilter(config.Exclude{HiddenFiles: false})
	if filter.ExcludeDir(".hidden") {
		t.Fatal("hidden directories must pass when hidden_files is off")
	}
}

func TestExcludeFile(t *testing.T) {
	filter := NewFilter(config.Exclude{
		HiddenFiles: true,
		Patterns:    []string{"*.tmp", "Thumbs.db", "temp*", "*cache*"},
	})

	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},
		{"upload.tmp", true},
		{"upload.TMP", true},
		{"thumbs.db", true},
		{"temp_export.jpg", true},
		{"photo_cache_01.jpg", true},
		{"photo.jpg", false},
		{"export_final.jpg", false},
	}
	for _, tt := range tests {
		if got := filter.ExcludeFile(tt.name); got != tt.want {
			t.Errorf("ExcludeFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatchWildcard(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"*", "anything", true},
		{"desktop.ini", "Desktop.INI", true},
		{"desktop.ini", "desktop.ini.bak", false},
		{"*.bak", "notes.bak", true},
		{"*.bak", "bak.txt", false},
		{"draft*", "draft-v2.png", true},
		{"draft*", "my-draft.png", false},
		{"*old*", "photo_OLD_1.jpg", true},
		{"*old*", "photo.jpg", false},
	}
	for _, tt := range tests {
		if got := matchWildcard(tt.pattern, tt.text); got != tt.want {
			t.Errorf("matchWildcard(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
		}
	}
}
