package logging

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLevel converts a level name (trace, debug, info, warn, error, off)
// to a zerolog.Level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug", "":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Levels holds the global level and the per-module overrides.
type Levels struct {
	Global  zerolog.Level
	Modules map[string]zerolog.Level
}

// For returns the level that applies to module.
func (l Levels) For(module string) zerolog.Level {
	if lvl, ok := l.Modules[module]; ok {
		return lvl
	}
	return l.Global
}
