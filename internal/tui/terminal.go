// Package tui renders missions for the terminal.
package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Size returns the width and height of the terminal behind w.
// ok is false when w is not a terminal.
func Size(w io.Writer) (width, height int, ok bool) {
	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	_, _, ok := Size(w)
	return ok
}

// Print writes lines to w, one per line.
func Print(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write: %w", err)
		}
	}
	return nil
}
