package bootstrap

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raoulx24/logkeep/internal/fs"
	"github.com/raoulx24/logkeep/internal/logging"
	"github.com/raoulx24/logkeep/internal/retention"
)

// Handle represents active logging. The caller owns it and closes it on
// shutdown.
type Handle struct {
	logger zerolog.Logger
	levels logging.Levels

	file fs.File
	path string
	dir  string

	report retention.Report

	closeOnce sync.Once
	closeErr  error
}

// Logger returns the root logger at the global level.
func (h *Handle) Logger() zerolog.Logger {
	return h.logger
}

// Module returns a logger tagged with module, at the module's level if one
// was set and the global level otherwise.
func (h *Handle) Module(module string) zerolog.Logger {
	return h.logger.With().
		Str(logging.ModuleField, module).
		Logger().
		Level(h.levels.For(module))
}

// Path is the file this run writes to.
func (h *Handle) Path() string { return h.path }

// Dir is the managed log directory.
func (h *Handle) Dir() string { return h.dir }

// Report describes the retention pass that ran before the file was created.
func (h *Handle) Report() retention.Report { return h.report }

// SetDefault points zerolog's package-level logger at the handle.
func (h *Handle) SetDefault() {
	log.Logger = h.logger
}

// Close flushes and closes the run file. It is safe to call more than once.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		if err := h.file.Sync(); err != nil {
			h.closeErr = err
		}
		if err := h.file.Close(); err != nil && h.closeErr == nil {
			h.closeErr = err
		}
	})
	return h.closeErr
}
