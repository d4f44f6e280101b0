package organize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mediasort/internal/archive"
	"mediasort/internal/logging"
	"mediasort/internal/media"
)

// Config carries the immutable parameters of one run.
type Config struct {
	SourceRoot      string
	DestinationRoot string
	Owner           string
	DryRun          bool
}

// Engine walks the source tree and drives per-entry relocation.
type Engine struct {
	cfg       Config
	destRoot  string
	logger    *slog.Logger
	onOutcome func(Outcome)
}

// Option customizes engine construction.
type Option func(*Engine)

// WithOutcomeFunc registers a callback invoked for every recorded outcome,
// in traversal order, as the run progresses.
func WithOutcomeFunc(fn func(Outcome)) Option {
	return func(e *Engine) { e.onOutcome = fn }
}

// New validates the run configuration and canonicalizes the destination
// root. Errors here are startup failures; the caller should exit non-zero.
func New(cfg Config, logger *slog.Logger, opts ...Option) (*Engine, error) {
	if strings.TrimSpace(cfg.SourceRoot) == "" {
		return nil, errors.New("source root is required")
	}
	if strings.TrimSpace(cfg.DestinationRoot) == "" {
		return nil, errors.New("destination root is required")
	}
	if strings.TrimSpace(cfg.Owner) == "" {
		return nil, errors.New("owner is required")
	}

	destRoot, err := filepath.EvalSymlinks(cfg.DestinationRoot)
	if err != nil {
		return nil, fmt.Errorf("canonicalize destination %s: %w", cfg.DestinationRoot, err)
	}
	destRoot, err = filepath.Abs(destRoot)
	if err != nil {
		return nil, fmt.Errorf("canonicalize destination %s: %w", cfg.DestinationRoot, err)
	}

	engine := &Engine{
		cfg:      cfg,
		destRoot: destRoot,
		logger:   logging.NewComponentLogger(logger, "organizer"),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine, nil
}

// Run walks the source tree once, start to end. Per-entry failures are
// recorded and logged; the returned error is non-nil only when the walk
// itself cannot proceed (unreadable source root, canceled context).
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	report := &Report{DryRun: e.cfg.DryRun, Started: time.Now()}
	if id, ok := logging.RunIDFromContext(ctx); ok {
		report.RunID = id
	}
	logger := logging.WithContext(ctx, e.logger)

	logger.Info("starting run",
		logging.String("source", e.cfg.SourceRoot),
		logging.String("destination", e.destRoot),
		logging.String("owner", e.cfg.Owner),
		logging.Bool("dry_run", e.cfg.DryRun),
	)

	walkErr := filepath.WalkDir(e.cfg.SourceRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d == nil && path == e.cfg.SourceRoot {
				// The walk cannot even start without a readable root.
				return fmt.Errorf("open source root: %w", err)
			}
			logger.Error("cannot read entry", logging.String("path", path), logging.Error(err))
			e.record(report, Outcome{Source: path, Status: StatusFailed, Err: wrap(ErrTraversal, path, err)})
			return nil
		}
		if d.IsDir() {
			logger.Debug("skipping directory", logging.String("path", path))
			return nil
		}
		e.record(report, e.processEntry(logger, path))
		return nil
	})

	report.Duration = time.Since(report.Started)
	if walkErr != nil {
		return report, walkErr
	}

	logger.Info("run completed",
		logging.Int("moved", report.Count(StatusMoved)),
		logging.Int("planned", report.Count(StatusPlanned)),
		logging.Int("skipped", report.Count(StatusSkipped)),
		logging.Int("failed", report.Count(StatusFailed)),
		logging.Duration("duration", report.Duration),
	)
	return report, nil
}

func (e *Engine) record(report *Report, outcome Outcome) {
	report.Outcomes = append(report.Outcomes, outcome)
	if e.onOutcome != nil {
		e.onOutcome(outcome)
	}
}

// processEntry takes one discovered file through classify, resolve, and
// move. It always returns an outcome; it never fails the walk.
func (e *Engine) processEntry(logger *slog.Logger, path string) Outcome {
	target, err := media.NewTarget(path)
	if err != nil {
		return e.rejectedOutcome(logger, path, err)
	}

	destination := archive.Resolve(e.destRoot, e.cfg.Owner, target)
	outcome := Outcome{
		Source:      target.AbsPath,
		Destination: destination,
		Category:    target.Category,
	}

	if e.cfg.DryRun {
		logger.Info("would move",
			logging.String("source", target.AbsPath),
			logging.String("destination", destination),
		)
		outcome.Status = StatusPlanned
		return outcome
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		logger.Error("cannot create destination directory",
			logging.String("destination", destination),
			logging.Error(err),
		)
		outcome.Status = StatusFailed
		outcome.Err = wrap(ErrIO, "create destination directory", err)
		return outcome
	}

	if err := move(target.AbsPath, destination); err != nil {
		if errors.Is(err, ErrCollision) {
			logger.Warn("already exists",
				logging.String("source", target.AbsPath),
				logging.String("destination", destination),
			)
			outcome.Status = StatusSkipped
		} else {
			logger.Error("move failed",
				logging.String("source", target.AbsPath),
				logging.String("destination", destination),
				logging.Error(err),
			)
			outcome.Status = StatusFailed
		}
		outcome.Err = err
		return outcome
	}

	logger.Info("moved",
		logging.String("source", target.AbsPath),
		logging.String("destination", destination),
	)
	outcome.Status = StatusMoved
	return outcome
}

func (e *Engine) rejectedOutcome(logger *slog.Logger, path string, err error) Outcome {
	outcome := Outcome{Source: path, Err: err}
	switch {
	case media.Ineligible(err):
		logger.Info("skipping entry", logging.String("path", path), logging.Error(err))
		outcome.Status = StatusSkipped
	case isDateTimeError(err):
		logger.Error("cannot derive date", logging.String("path", path), logging.Error(err))
		outcome.Status = StatusFailed
		outcome.Err = wrap(ErrDateTime, path, err)
	default:
		logger.Error("cannot build target", logging.String("path", path), logging.Error(err))
		outcome.Status = StatusFailed
		outcome.Err = wrap(ErrIO, path, err)
	}
	return outcome
}

func isDateTimeError(err error) bool {
	var dte *media.DateTimeError
	return errors.As(err, &dte)
}
