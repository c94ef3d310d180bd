package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger shared by the service layer and GORM
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing JSON lines to w at the given level.
// Timestamps use zerolog's TimeFieldFormat, which is left to the caller.
func New(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(level)

	return &Logger{zl: zl}
}

// NewConsole creates a human readable logger on stderr, used by the CLI
func NewConsole(level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, level)
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ParseLevel converts a config value such as "debug" or "warn" to a level.
// An empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

func (l *Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

func (l *Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

func (l *Logger) Warn() *zerolog.Event {
	return l.zl.Warn()
}

func (l *Logger) Error(err error) *zerolog.Event {
	return l.zl.Error().Err(err)
}

// Level returns the minimum level that is written
func (l *Logger) Level() zerolog.Level {
	return l.zl.GetLevel()
}
