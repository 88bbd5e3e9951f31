package classify

// OutcomeKind enumerates the terminal states of one classified file.
type OutcomeKind int

const (
	// OutcomeMoved means the file moved cleanly to its rendered target.
	OutcomeMoved OutcomeKind = iota
	// OutcomeRenamed means the file moved under a suffixed name after a
	// conflict.
	OutcomeRenamed
	// OutcomeSkipped means the file stayed in place (duplicate target or
	// already classified).
	OutcomeSkipped
	// OutcomeFailed means the file could not be classified; the source
	// is untouched.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMoved:
		return "moved"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records the terminal result for one processed file. Exactly
// one outcome is produced per file and never revised afterwards.
type Outcome struct {
	Kind OutcomeKind
	// Path is the source file.
	Path string
	// Target is set for moved and renamed files.
	Target string
	// Reason is set for skipped files.
	Reason string
	// Err is set for failed files.
	Err error
}

func moved(path, target string) Outcome {
	return Outcome{Kind: OutcomeMoved, Path: path, Target: target}
}

func renamed(path, target string) Outcome {
	return Outcome{Kind: OutcomeRenamed, Path: path, Target: target}
}

func skipped(path, reason string) Outcome {
	return Outcome{Kind: OutcomeSkipped, Path: path, Reason: reason}
}

func failed(path string, err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Path: path, Err: err}
}

// Statistics accumulates per-kind counters over one run. The engine
// owns the accumulator exclusively; it is returned, never shared.
type Statistics struct {
	Moved   int
	Renamed int
	Skipped int
	Failed  int
}

// Record tallies one outcome.
func (s *Statistics) Record(outcome Outcome) {
	switch outcome.Kind {
	case OutcomeMoved:
		s.Moved++
	case OutcomeRenamed:
		s.Renamed++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// Total returns the number of processed files.
func (s *Statistics) Total() int {
	return s.Moved + s.Renamed + s.Skipped + s.Failed
}
