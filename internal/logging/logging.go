// Package logging builds the zerolog loggers used across the editor.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
	"github.com/rs/zerolog"
)

// New returns a JSON logger at the given level. Logs go to file when one is
// given, otherwise to fallback. A nil fallback discards output.
//
// The returned closer releases the file and is safe to call when no file was
// opened.
func New(level, file string, fallback io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), closer, err
	}

	writer := fallback
	if writer == nil {
		writer = io.Discard
	}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Nop(), closer, errors.Annotatef(err, "creating log dir for %s", file)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, errors.Annotatef(err, "opening log file %s", file)
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

// ParseLevel parses a level name. "warning" is accepted as an alias of
// "warn" and an empty string means info.
func ParseLevel(level string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, errors.Annotatef(err, "invalid log level %q", level)
	}
	return lvl, nil
}

// Component derives a logger tagged with a component name.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
