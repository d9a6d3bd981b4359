package mkdirp

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger for walk diagnostics. Entries carry
// lib=mkdirp so they can be told apart from the notifications on stdout.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("lib", "mkdirp").
		Logger()
}

// NewLoggerFromString is NewLogger with the level given by name, as on the
// command line.
func NewLoggerFromString(w io.Writer, levelStr string) (zerolog.Logger, error) {
	level, err := LogLevelFromString(levelStr)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	return NewLogger(w, level), nil
}

// NewTestLogger maps a -v count style verbosity onto a level:
// 0 warn, 1 info, 2 debug, anything higher trace.
func NewTestLogger(w io.Writer, verbose int) zerolog.Logger {
	level := zerolog.TraceLevel
	switch verbose {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	}
	return NewLogger(w, level)
}

// LogLevelFromString parses a level name, ignoring case and surrounding space.
// The empty string is rejected rather than read as "no level".
func LogLevelFromString(levelStr string) (zerolog.Level, error) {
	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	if levelStr == "" {
		return zerolog.NoLevel, fmt.Errorf("empty log level")
	}
	return zerolog.ParseLevel(levelStr)
}

// DefaultLogger is what a PathCreator logs to unless WithLogger is given:
// warnings and errors on stderr.
func DefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.WarnLevel)
}
