package classify

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mediasort/internal/logging"
	"mediasort/internal/mediatype"
)

// Recursion is capped so a misplaced run near the filesystem root does
// not crawl everything beneath it.
const maxScanDepth = 9

// Scanner enumerates the media files under a source root, honoring the
// exclusion filter and skipping directories named after media
// extensions (the classifier's own output tree).
type Scanner struct {
	filter *Filter
	logger *slog.Logger
}

// NewScanner builds a scanner using the provided exclusion filter.
func NewScanner(filter *Filter, logger *slog.Logger) *Scanner {
	return &Scanner{filter: filter, logger: logging.NewComponentLogger(logger, "scanner")}
}

// Scan walks root and returns the media file paths in deterministic
// (lexical) order. Failure to read the root itself is fatal;
// unreadable subdirectories are logged and skipped.
func (s *Scanner) Scan(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("enumerate source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("enumerate source root: %s is not a directory", root)
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("enumerate source root: %w", err)
			}
			s.logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		name := d.Name()

		if d.IsDir() {
			switch {
			case s.filter.ExcludeDir(name):
				return fs.SkipDir
			case mediatype.IsMediaExtension(name):
				// Classifier output directory; never rescan it.
				return fs.SkipDir
			case depth(rel) >= maxScanDepth:
				return fs.SkipDir
			}
			return nil
		}

		if s.filter.ExcludeFile(name) {
			return nil
		}
		if _, ok := mediatype.Resolve(name); ok {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return files, nil
}

func depth(rel string) int {
	return strings.Count(rel, string(os.PathSeparator)) + 1
}
