// Package detector decides whether browse can run interactively.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode is how the browser renders.
type Mode int

const (
	// ModeAuto defers to Detect.
	ModeAuto Mode = iota
	// ModeInteractive runs the terminal browser.
	ModeInteractive
	// ModePlain prints the first page once and exits.
	ModePlain
)

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

// Detect returns ModeInteractive only for a terminal outside CI.
// A dumb TERM counts as no terminal.
func Detect(f *os.File) Mode {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	if ci := os.Getenv("CI"); ci == "true" || ci == "1" {
		return ModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return ModePlain
	}
	return ModeInteractive
}

// Resolve applies the --output flag to the detected mode.
// Unknown values fall back to detected.
func Resolve(detected Mode, flag string) Mode {
	switch strings.ToLower(flag) {
	case "interactive", "tui":
		return ModeInteractive
	case "plain", "ci":
		return ModePlain
	default:
		return detected
	}
}
