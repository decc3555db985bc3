// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel converts a string level into zerolog.Level, falling back to
// info for empty or unknown input. "warning" is accepted as an alias of warn.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New builds a logger writing to w. format is "json" or "console".
func New(level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Setup installs a logger as the global zerolog logger and returns it.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	l := New(level, format, w)
	log.Logger = l
	zerolog.DefaultContextLogger = &l
	return l
}
