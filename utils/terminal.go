package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the size of the terminal attached to f, or the
// fallback size when f is not a terminal.
func TerminalSize(f *os.File, fallbackCols, fallbackRows int) (cols, rows int) {
	if !IsTerminal(f) {
		return fallbackCols, fallbackRows
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}
