package logging

import (
	"github.com/rs/zerolog"
)

// Provides a simple logger interface for the application.
// args are key/value pairs.

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ZeroLogger adapts a zerolog.Logger to Logger.
type ZeroLogger struct {
	zerolog.Logger
}

func NewZeroLogger(l zerolog.Logger) ZeroLogger {
	return ZeroLogger{Logger: l}
}

func (z ZeroLogger) Debug(msg string, args ...any) { emit(z.Logger.Debug(), msg, args) }
func (z ZeroLogger) Info(msg string, args ...any)  { emit(z.Logger.Info(), msg, args) }
func (z ZeroLogger) Warn(msg string, args ...any)  { emit(z.Logger.Warn(), msg, args) }
func (z ZeroLogger) Error(msg string, args ...any) { emit(z.Logger.Error(), msg, args) }

func emit(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	if len(args) > 0 {
		ev = ev.Fields(args)
	}
	ev.Msg(msg)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
