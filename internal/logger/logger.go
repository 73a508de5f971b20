// Package logger builds the program-wide zerolog logger. Library packages
// never build their own; they take a *zerolog.Logger and default to Nop.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level is a zerolog level name; "disabled" silences everything.
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a logger writing JSON lines, or console output when
// HumanReadable is set.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		console.NoColor = true
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
