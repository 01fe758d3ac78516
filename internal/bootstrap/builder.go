// Package bootstrap assembles process logging: it resolves the log
// directory, runs the retention pass, opens the file for the current run
// and wires the console and file sinks.
//
// A Builder is an immutable value. Every setter returns a modified copy, so
// a partially configured builder can be shared and specialised freely.
// Finish validates the result and returns a Handle owning the open file.
package bootstrap

import (
	"errors"
	"io"
	"maps"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/raoulx24/logkeep/internal/fs"
	"github.com/raoulx24/logkeep/internal/logging"
)

const (
	// DefaultMaxFiles is the retention limit when none is set.
	DefaultMaxFiles = 5

	// LogSubdir is appended to the application cache directory.
	LogSubdir = "logs"

	// LogExt is the extension of the files created for each run.
	LogExt = ".log"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrSetup        = errors.New("logging setup failed")
)

type Builder struct {
	appName      string
	qualifier    string
	organization string

	globalLevel zerolog.Level
	levelFor    map[string]zerolog.Level

	dir         string
	maxFiles    int
	keepForeign bool

	now     func() time.Time
	console io.Writer
	fs      fs.FS
	log     logging.Logger
}

// NewBuilder returns a builder logging at debug level to stdout, keeping
// DefaultMaxFiles files.
func NewBuilder() Builder {
	return Builder{
		globalLevel: zerolog.DebugLevel,
		maxFiles:    DefaultMaxFiles,
		now:         time.Now,
		console:     os.Stdout,
	}
}

func (b Builder) AppName(name string) Builder {
	b.appName = name
	return b
}

func (b Builder) Qualifier(q string) Builder {
	b.qualifier = q
	return b
}

func (b Builder) Organization(org string) Builder {
	b.organization = org
	return b
}

func (b Builder) GlobalLevel(level zerolog.Level) Builder {
	b.globalLevel = level
	return b
}

// LevelFor overrides the level of one module.
func (b Builder) LevelFor(module string, level zerolog.Level) Builder {
	levels := make(map[string]zerolog.Level, len(b.levelFor)+1)
	maps.Copy(levels, b.levelFor)
	levels[module] = level
	b.levelFor = levels
	return b
}

// Directory overrides the platform cache directory.
func (b Builder) Directory(dir string) Builder {
	b.dir = dir
	return b
}

func (b Builder) MaxFiles(n int) Builder {
	b.maxFiles = n
	return b
}

// KeepForeign leaves entries with unparseable names in place.
func (b Builder) KeepForeign(keep bool) Builder {
	b.keepForeign = keep
	return b
}

// Now sets the clock naming the run file.
func (b Builder) Now(now func() time.Time) Builder {
	b.now = now
	return b
}

// Console sets the console sink; nil disables it.
func (b Builder) Console(w io.Writer) Builder {
	b.console = w
	return b
}

func (b Builder) FS(f fs.FS) Builder {
	b.fs = f
	return b
}

// Logger receives the retention engine's own messages, which happen
// before the run logger exists.
func (b Builder) Logger(l logging.Logger) Builder {
	b.log = l
	return b
}

func (b Builder) levels() logging.Levels {
	return logging.Levels{
		Global:  b.globalLevel,
		Modules: maps.Clone(b.levelFor),
	}
}
