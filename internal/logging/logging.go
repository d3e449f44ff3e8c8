// Package logging builds the diagnostic logger shared by the board commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every log line.
const Prefix = "board"

// Options configures a logger.
type Options struct {
	// Level is a level name such as "debug" or "warn". Empty means warn.
	Level string
}

// New returns a text logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:     level,
		Formatter: log.TextFormatter,
		Prefix:    Prefix,
	}), nil
}

// ParseLevel converts a level name to a log.Level. "warning" is accepted as
// an alias for warn.
func ParseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return log.WarnLevel, nil
	case "warning":
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid log level %q: must be debug, info, warn, error", name)
	}
	return level, nil
}
