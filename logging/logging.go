// Package logging creates the zerolog logger shared by the commands.
package logging

import (
	"io"
	"time"

	"github.com/etnz/budget/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w according to the configuration.
//
// The console format is meant for humans, json for piping into other tools.
// An invalid level falls back to warn.
func New(c config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	out := w
	if c.LogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
