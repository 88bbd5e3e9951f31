// Package conflict decides what to do when a classification target
// path is already occupied. It inspects filesystem metadata only
// (existence and size), never file content: two files of equal length
// are treated as the same file and skipped. That approximation is part
// of the classifier's contract, not an optimization to revisit here.
package conflict

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Suffix probing gives up after this many candidates so a pathological
// directory cannot loop the resolver forever.
const maxAttempts = 10000

// Kind enumerates conflict outcomes.
type Kind int

const (
	// NoConflict means the target path is free.
	NoConflict Kind = iota
	// Skip means an existing file of identical size occupies the
	// target; the source should not be moved.
	Skip
	// Rename means the source should move to an alternate sibling path.
	Rename
)

// Resolution carries the decision for one proposed target.
type Resolution struct {
	Kind Kind
	// Path is the path to move to (NoConflict and Rename).
	Path string
	// Reason describes why a file was skipped.
	Reason string
}

// Resolve determines where, if anywhere, a source file of sourceSize
// bytes may land given the proposed target path. Candidates with a
// numeric suffix (stem_1.ext, stem_2.ext, ...) are probed in order when
// the target is taken by a different-sized file; a candidate occupied
// by an equal-sized file short-circuits to Skip.
func Resolve(sourceSize int64, target string) (Resolution, error) {
	decision, done, err := probe(sourceSize, target)
	if err != nil || done {
		return decision, err
	}

	dir := filepath.Dir(target)
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, attempt, ext))
		decision, done, err := probe(sourceSize, candidate)
		if err != nil {
			return Resolution{}, err
		}
		if done {
			if decision.Kind == NoConflict {
				return Resolution{Kind: Rename, Path: candidate}, nil
			}
			return decision, nil
		}
	}

	return Resolution{}, fmt.Errorf("no free name for %s after %d attempts", target, maxAttempts)
}

// probe checks a single candidate. done is false when the candidate is
// occupied by a different-sized file and the search should continue.
func probe(sourceSize int64, candidate string) (Resolution, bool, error) {
	st, err := os.Stat(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Resolution{Kind: NoConflict, Path: candidate}, true, nil
		}
		return Resolution{}, false, fmt.Errorf("stat %s: %w", candidate, err)
	}
	if st.Size() == sourceSize {
		reason := fmt.Sprintf("file already exists with same size (%d bytes): %s", sourceSize, candidate)
		return Resolution{Kind: Skip, Path: candidate, Reason: reason}, true, nil
	}
	return Resolution{}, false, nil
}
