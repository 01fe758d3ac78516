package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raoulx24/logkeep/internal/fs"
	"github.com/raoulx24/logkeep/internal/logging"
	"github.com/raoulx24/logkeep/internal/projectdirs"
	"github.com/raoulx24/logkeep/internal/retention"
	"github.com/raoulx24/logkeep/internal/stamp"
)

// Finish is FinishContext with a background context.
func (b Builder) Finish() (*Handle, error) {
	return b.FinishContext(context.Background())
}

// FinishContext validates the builder, trims the log directory and opens
// the file for this run. On error nothing is returned and no logger is
// installed.
func (b Builder) FinishContext(ctx context.Context) (*Handle, error) {
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	dir, err := b.LogDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	filesystem := b.fs
	if filesystem == nil {
		filesystem = fs.New()
	}
	log := b.log
	if log == nil {
		log = logging.Nop{}
	}

	engine := retention.New(
		retention.WithFS(filesystem),
		retention.WithLogger(log),
		retention.KeepForeign(b.keepForeign),
	)

	// The pass runs before the run file exists, so the new file is never
	// a candidate for eviction.
	report, err := engine.Apply(ctx, dir, b.maxFiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	path := filepath.Join(dir, stamp.Encode(b.now())+LogExt)
	file, err := filesystem.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: creating log file %s: %w", ErrSetup, path, err)
	}

	levels := b.levels()
	return &Handle{
		logger: logging.New(b.console, file, levels.Global),
		levels: levels,
		file:   file,
		path:   path,
		dir:    dir,
		report: report,
	}, nil
}

// LogDir returns the directory the builder manages: the explicit
// Directory, or the application cache directory plus LogSubdir.
func (b Builder) LogDir() (string, error) {
	if b.dir != "" {
		return b.dir, nil
	}

	cache, err := projectdirs.CacheDir(b.qualifier, b.organization, b.appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, LogSubdir), nil
}

func (b Builder) validate() error {
	var missing []string
	if strings.TrimSpace(b.appName) == "" {
		missing = append(missing, "app name")
	}
	if strings.TrimSpace(b.qualifier) == "" {
		missing = append(missing, "qualifier")
	}
	if strings.TrimSpace(b.organization) == "" {
		missing = append(missing, "organization")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	if b.maxFiles < 1 {
		return fmt.Errorf("%w: got %d", retention.ErrInvalidLimit, b.maxFiles)
	}
	if b.now == nil {
		return fmt.Errorf("%w: clock", ErrMissingField)
	}
	return nil
}
