// Package mediatype classifies file names into coarse media categories
// based on their extension. Resolution is pure: it never touches the
// filesystem and unknown extensions simply report no match.
package mediatype

import (
	"path/filepath"
	"strings"
)

// Type is the coarse media category derived from a file extension.
type Type int

const (
	Image Type = iota
	Video
	Audio
)

// String returns the display name used in directory templates.
func (t Type) String() string {
	switch t {
	case Image:
		return "Image"
	case Video:
		return "Video"
	case Audio:
		return "Audio"
	default:
		return "Unknown"
	}
}

// Info describes a recognized media file. Ext is stored uppercase
// without the leading dot, e.g. "JPG".
type Info struct {
	Type Type
	Ext  string
}

var imageExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "tiff": {}, "tif": {},
	"bmp": {}, "webp": {}, "heic": {}, "heif": {},
	// camera raw formats
	"nef": {}, "nrw": {},
	"cr2": {}, "cr3": {}, "crw": {},
	"arw": {}, "srf": {}, "sr2": {},
	"dng": {},
	"orf": {},
	"pef": {},
	"raf": {},
	"rw2": {},
	"3fr": {},
	"iiq": {},
	"mef": {},
	"mos": {},
	"erf": {},
	"k25": {}, "kdc": {}, "dcr": {}, "dcs": {},
}

var videoExtensions = map[string]struct{}{
	"mp4": {}, "m4v": {}, "mov": {}, "qt": {}, "avi": {}, "mkv": {},
	"webm": {}, "wmv": {}, "flv": {}, "f4v": {}, "mts": {}, "m2ts": {},
	"3gp": {}, "3g2": {}, "mpg": {}, "mpeg": {}, "mpe": {}, "mpv": {},
	"ogv": {}, "vob": {},
}

var audioExtensions = map[string]struct{}{
	"flac": {}, "wav": {}, "aiff": {}, "alac": {}, "ape": {},
	"mp3": {}, "aac": {}, "m4a": {}, "ogg": {}, "oga": {}, "opus": {}, "wma": {},
	"m4b": {}, "amr": {},
}

// Resolve derives media information from a file name. The second return
// is false when the extension is not a recognized media format; such
// files never enter the classification pipeline.
func Resolve(filename string) (Info, bool) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return Info{}, false
	}
	lower := strings.ToLower(ext)
	switch {
	case IsImageExtension(lower):
		return Info{Type: Image, Ext: strings.ToUpper(lower)}, true
	case IsVideoExtension(lower):
		return Info{Type: Video, Ext: strings.ToUpper(lower)}, true
	case IsAudioExtension(lower):
		return Info{Type: Audio, Ext: strings.ToUpper(lower)}, true
	}
	return Info{}, false
}

// IsImageExtension reports whether ext (lowercase, no dot) is a known image format.
func IsImageExtension(ext string) bool {
	_, ok := imageExtensions[ext]
	return ok
}

// IsVideoExtension reports whether ext (lowercase, no dot) is a known video format.
func IsVideoExtension(ext string) bool {
	_, ok := videoExtensions[ext]
	return ok
}

// IsAudioExtension reports whether ext (lowercase, no dot) is a known audio format.
func IsAudioExtension(ext string) bool {
	_, ok := audioExtensions[ext]
	return ok
}

// IsMediaExtension reports whether name matches any known media
// extension regardless of case. Used by the scanner to avoid descending
// into directories named after extensions (the classifier's own output).
func IsMediaExtension(name string) bool {
	lower := strings.ToLower(name)
	return IsImageExtension(lower) || IsVideoExtension(lower) || IsAudioExtension(lower)
}
