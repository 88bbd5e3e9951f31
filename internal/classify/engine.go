// Package classify drives media files through the classification state
// machine: type resolution, date extraction, rule matching, template
// rendering, conflict resolution, and the final move. One run processes
// files strictly in sequence so the conflict check and the rename see
// the same filesystem state.
package classify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mediasort/internal/config"
	"mediasort/internal/conflict"
	"mediasort/internal/fileutil"
	"mediasort/internal/logging"
	"mediasort/internal/mediatype"
	"mediasort/internal/metadata"
	"mediasort/internal/rules"
	"mediasort/internal/runerr"
	"mediasort/internal/template"
)

const lockFileName = ".mediasort.lock"

// OutcomeFunc observes each terminal per-file outcome as it is
// produced. index is zero-based; total is the number of files in the
// run.
type OutcomeFunc func(index, total int, outcome Outcome)

// Option customizes engine construction.
type Option func(*Engine)

// WithOutcomeFunc registers an observer for per-file outcomes.
func WithOutcomeFunc(fn OutcomeFunc) Option {
	return func(e *Engine) { e.onOutcome = fn }
}

// Engine orchestrates one classification run.
type Engine struct {
	cfg       *config.Config
	rules     []rules.Rule
	extractor *metadata.Extractor
	scanner   *Scanner
	logger    *slog.Logger
	onOutcome OutcomeFunc
}

// New compiles the configured rules and builds an engine. The logger
// may be nil.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, runerr.Wrap(runerr.ErrConfiguration, "classifying", "build engine", "configuration is required", nil)
	}
	compiled, err := cfg.CompiledRules()
	if err != nil {
		return nil, runerr.Wrap(runerr.ErrConfiguration, "classifying", "compile rules", "invalid rule configuration", err)
	}

	engine := &Engine{
		cfg:       cfg,
		rules:     compiled,
		extractor: metadata.NewExtractor(logger),
		scanner:   NewScanner(NewFilter(cfg.Exclude), logger),
		logger:    logging.NewComponentLogger(logger, "engine"),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine, nil
}

// Process classifies every media file beneath root and returns the run
// statistics. Per-file failures never abort the run; only an unusable
// root or a concurrent run on the same root do.
func (e *Engine) Process(ctx context.Context, root string) (*Statistics, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, runerr.Wrap(runerr.ErrConfiguration, "classifying", "resolve root", "invalid source root", err)
	}

	logger := e.logger.With(logging.String("run_id", uuid.NewString()))

	lock := flock.New(filepath.Join(absRoot, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, runerr.Wrap(runerr.ErrIO, "classifying", "acquire run lock", "failed to lock source root", err)
	}
	if !locked {
		return nil, runerr.Wrap(runerr.ErrConfiguration, "classifying", "acquire run lock", "another mediasort run is active on this directory", nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	files, err := e.scanner.Scan(absRoot)
	if err != nil {
		return nil, err
	}
	logger.Info("classification started",
		logging.String("root", absRoot),
		logging.Int("files", len(files)),
		logging.Int("rules", len(e.rules)),
	)

	stats := &Statistics{}
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("run interrupted", logging.Int("processed", i), logging.Error(err))
			return stats, err
		}

		outcome := e.classifyFile(absRoot, file, logger)
		stats.Record(outcome)
		e.logOutcome(logger, outcome)
		if e.onOutcome != nil {
			e.onOutcome(i, len(files), outcome)
		}
	}

	if e.cfg.Global.CleanEmptyDirs {
		removed, err := fileutil.RemoveEmptyDirs(absRoot)
		if err != nil {
			logger.Warn("empty directory cleanup incomplete", logging.Error(err))
		}
		for _, dir := range removed {
			logger.Info("removed empty directory", logging.String("path", dir))
		}
	}

	logger.Info("classification completed",
		logging.Int("moved", stats.Moved),
		logging.Int("renamed", stats.Renamed),
		logging.Int("skipped", stats.Skipped),
		logging.Int("failed", stats.Failed),
	)
	return stats, nil
}

// classifyFile drives one file through the state machine and returns
// its terminal outcome.
func (e *Engine) classifyFile(root, source string, logger *slog.Logger) Outcome {
	info, ok := mediatype.Resolve(source)
	if !ok {
		return failed(source, runerr.Wrap(runerr.ErrValidation, "typing", "resolve media type", "not a media file", nil))
	}

	if alreadyClassified(source) {
		return skipped(source, "already classified")
	}

	st, err := os.Stat(source)
	if err != nil {
		return failed(source, runerr.Wrap(runerr.ErrIO, "typing", "stat source", "failed to read file metadata", err))
	}

	date := e.extractor.ExtractDate(source, info)

	dirTemplate := e.cfg.Global.DirectoryTemplate
	dateFormat := e.cfg.Global.DateFormat
	if rule := rules.Match(e.rules, info.Ext, st.Size()); rule != nil {
		dirTemplate = rule.DirectoryTemplate
		if rule.DateFormat != "" {
			dateFormat = rule.DateFormat
		}
		logger.Debug("rule matched",
			logging.String("file", source),
			logging.String("rule", rule.Name),
		)
	} else {
		logger.Info("no rule matched, using global defaults", logging.String("file", source))
	}

	rendered, err := template.Render(dirTemplate, template.Context{
		Type:       info.Type,
		Ext:        info.Ext,
		Date:       date,
		DateFormat: dateFormat,
	})
	if err != nil {
		return failed(source, runerr.Wrap(runerr.ErrValidation, "rendering", "expand template", "invalid directory template", err))
	}

	target := filepath.Join(root, filepath.FromSlash(rendered), filepath.Base(source))
	resolution, err := conflict.Resolve(st.Size(), target)
	if err != nil {
		return failed(source, runerr.Wrap(runerr.ErrConflict, "resolving", "probe target", "could not resolve target conflict", err))
	}

	switch resolution.Kind {
	case conflict.Skip:
		return skipped(source, resolution.Reason)
	case conflict.Rename:
		if err := moveFile(source, resolution.Path); err != nil {
			return failed(source, err)
		}
		return renamed(source, resolution.Path)
	default:
		if err := moveFile(source, resolution.Path); err != nil {
			return failed(source, err)
		}
		return moved(source, resolution.Path)
	}
}

// moveFile creates missing parents and renames source onto target.
// Rename either fully succeeds or leaves the source untouched; a
// cross-device boundary is a per-file failure, not a trigger for a
// copy fallback.
func moveFile(source, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return runerr.Wrap(runerr.ErrIO, "moving", "create target directory", "failed to create target directory", err)
	}
	if err := os.Rename(source, target); err != nil {
		return runerr.Wrap(runerr.ErrIO, "moving", "rename file", fmt.Sprintf("failed to move into %s", filepath.Dir(target)), err)
	}
	return nil
}

// alreadyClassified recognizes paths produced by the default
// "{ext}/{date}" layout: a parent directory of eight digits beneath a
// directory named in uppercase letters and digits.
func alreadyClassified(path string) bool {
	parent := filepath.Dir(path)
	dateDir := filepath.Base(parent)
	if len(dateDir) != 8 || !allDigits(dateDir) {
		return false
	}
	extDir := filepath.Base(filepath.Dir(parent))
	return extDir != "" && allUpperOrDigit(extDir)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allUpperOrDigit(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return len(s) > 0
}

func (e *Engine) logOutcome(logger *slog.Logger, outcome Outcome) {
	switch outcome.Kind {
	case OutcomeMoved:
		logger.Info("file moved",
			logging.String("from", outcome.Path),
			logging.String("to", outcome.Target),
		)
	case OutcomeRenamed:
		logger.Warn("file renamed due to conflict",
			logging.String("from", outcome.Path),
			logging.String("to", outcome.Target),
		)
	case OutcomeSkipped:
		logger.Info("file skipped",
			logging.String("path", outcome.Path),
			logging.String("reason", outcome.Reason),
		)
	case OutcomeFailed:
		logger.Error("file classification failed",
			logging.String("path", outcome.Path),
			logging.Error(outcome.Err),
		)
	}
}
