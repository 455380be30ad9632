// Package logging builds the zerolog loggers used by the engine and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is the level of Default.
const DefaultLevel = zerolog.WarnLevel

// New returns a human-readable logger writing to w at the given level.
// Timestamps are omitted so that diagnostics are reproducible.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(cw).Level(level)
}

// Default returns the logger used when none is configured: console output
// on stderr at warn level.
func Default() zerolog.Logger {
	return New(os.Stderr, DefaultLevel)
}

// ParseLevel maps a level name such as "debug" or "warn" to a zerolog level.
// The empty string selects DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultLevel, nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", name)
	}

	return level, nil
}
