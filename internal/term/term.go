// Package term provides ANSI color state and terminal detection.
//
// The package-level color variables describe stdout, where the result record
// is written. [Configure] sets them once during startup; when colors are
// disabled the variables are empty strings, making string concatenation a
// no-op. Other streams (stderr for logs and the banner) get their own
// [Colors] from [For].
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/guessit/internal/config"
)

// Stdout ANSI color codes. Empty when colors are disabled.
var (
	Cyan = ""
	NC   = "" // Reset sequence.
)

// Colors holds the ANSI sequences for one output stream. The zero value has
// colors disabled.
type Colors struct {
	Cyan    string
	Magenta string
	NC      string // Reset sequence.
}

var ansi = Colors{
	Cyan:    "\033[1;96m",
	Magenta: "\033[1;95m",
	NC:      "\033[0m",
}

// Enabled reports whether c carries any color.
func (c Colors) Enabled() bool { return c.NC != "" }

// For resolves the color mode against f, the stream the colors will be
// written to.
func For(mode config.ColorMode, f *os.File) Colors {
	if resolve(mode, f) {
		return ansi
	}
	return Colors{}
}

// Configure resolves the color mode against stdout f and sets the
// package-level ANSI variables.
func Configure(mode config.ColorMode, f *os.File) {
	c := For(mode, f)
	Cyan, NC = c.Cyan, c.NC
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
