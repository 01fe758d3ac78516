// Package retention keeps a log directory down to a fixed number of
// timestamped files.
package retention

import (
	"context"
	"errors"
	"fmt"

	"github.com/raoulx24/logkeep/internal/fs"
	"github.com/raoulx24/logkeep/internal/logfile"
	"github.com/raoulx24/logkeep/internal/logging"
)

var (
	ErrDirectoryUnavailable = errors.New("log directory unavailable")
	ErrCorruptEntryCleanup  = errors.New("removing unparseable log entry failed")
	ErrEviction             = errors.New("evicting old log file failed")
	ErrInvalidLimit         = errors.New("retention limit must be at least 1")
)

type Engine struct {
	fs          fs.FS
	log         logging.Logger
	keepForeign bool
}

type Option func(*Engine)

// WithFS replaces the OS filesystem.
func WithFS(f fs.FS) Option {
	return func(e *Engine) { e.fs = f }
}

// WithLogger sets the logger the engine reports through.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// KeepForeign disables the removal of entries whose names do not decode.
func KeepForeign(keep bool) Option {
	return func(e *Engine) { e.keepForeign = keep }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		fs:  fs.New(),
		log: logging.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report summarises one pass.
type Report struct {
	Dir       string
	Kept      []logfile.Record
	Evicted   []logfile.Record
	Collected []string
}

// Apply runs one scan-and-evict pass over dir. Afterwards fewer than limit
// timestamped files remain, leaving room for the file of the current run.
// Any filesystem failure aborts the pass; nothing is retried.
func (e *Engine) Apply(ctx context.Context, dir string, limit int) (Report, error) {
	if limit < 1 {
		return Report{}, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	records, collected, err := e.scan(ctx, dir)
	if err != nil {
		return Report{}, err
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	kept, evicted, err := e.Enforce(records, limit)
	if err != nil {
		return Report{}, err
	}

	e.log.Info("retention pass complete",
		"dir", dir,
		"kept", len(kept),
		"evicted", len(evicted),
		"collected", len(collected))

	return Report{
		Dir:       dir,
		Kept:      kept,
		Evicted:   evicted,
		Collected: collected,
	}, nil
}

// Scan is the scan pass: list dir, remove foreign entries unless the
// engine keeps them, and return the valid records newest first.
func (e *Engine) Scan(ctx context.Context, dir string) ([]logfile.Record, error) {
	records, _, err := e.scan(ctx, dir)
	return records, err
}

func (e *Engine) scan(ctx context.Context, dir string) ([]logfile.Record, []string, error) {
	listing, err := e.List(dir)
	if err != nil {
		return nil, nil, err
	}

	if e.keepForeign {
		return listing.Records, nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if err := e.Collect(listing.Foreign); err != nil {
		return nil, nil, err
	}
	return listing.Records, listing.Foreign, nil
}

// Enforce deletes the oldest records until fewer than limit remain.
// records must be sorted newest first. It returns the records still on
// disk and those removed, oldest removed first.
func (e *Engine) Enforce(records []logfile.Record, limit int) (kept, evicted []logfile.Record, err error) {
	if limit < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	kept = records
	for len(kept) >= limit {
		last := kept[len(kept)-1]

		if err := e.fs.Remove(last.Path); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrEviction, last.Path, err)
		}
		e.log.Debug("evicted log file", "path", last.Path)

		evicted = append(evicted, last)
		kept = kept[:len(kept)-1]
	}

	return kept, evicted, nil
}
