// Package logging builds the hclog root logger used across gravsim.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

const rootName = "gravsim"

// New returns the root logger writing to stderr at level. Unknown level
// strings fall back to info.
func New(level string) hclog.Logger {
	return NewWithOutput(level, os.Stderr)
}

func NewWithOutput(level string, w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       rootName,
		Level:      lvl,
		Output:     w,
		TimeFormat: "15:04:05.000",
	})
}

// Discard is for tests and for frontends that own the terminal.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
