package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/raoulx24/logkeep/internal/stamp"
)

const (
	// ModuleField is the event field carrying the emitting module.
	ModuleField = "module"

	// RootModule names events logged on the root logger.
	RootModule = "main"
)

// ConsoleWriter renders "[LEVEL] module - message".
func ConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		PartsOrder:    []string{zerolog.LevelFieldName, ModuleField, zerolog.MessageFieldName},
		FieldsExclude: []string{ModuleField},
		FormatLevel:   formatLevel,
		FormatMessage: formatMessage,
	}
}

// FileWriter renders "[LEVEL] <token> module - message", the timestamp in
// the same layout as the file names.
func FileWriter(out io.Writer) zerolog.ConsoleWriter {
	w := ConsoleWriter(out)
	w.TimeFormat = stamp.Layout
	w.PartsOrder = []string{zerolog.LevelFieldName, zerolog.TimestampFieldName, ModuleField, zerolog.MessageFieldName}
	return w
}

// New builds a logger fanning out to the console and file sinks.
// Both sinks accept every level; filtering happens on the logger.
func New(console, file io.Writer, global zerolog.Level) zerolog.Logger {
	var writers []io.Writer
	if console != nil {
		writers = append(writers, ConsoleWriter(console))
	}
	if file != nil {
		writers = append(writers, FileWriter(file))
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(global).
		With().
		Timestamp().
		Str(ModuleField, RootModule).
		Logger()
}

func formatLevel(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return "[???]"
	}
	return "[" + strings.ToUpper(s) + "]"
}

func formatMessage(v any) string {
	if v == nil {
		return "-"
	}
	return "- " + fmt.Sprint(v)
}
