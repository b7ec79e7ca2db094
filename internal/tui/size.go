package tui

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// terminalWidth returns the current terminal column count, falling back
// to 80 when stdout is not a TTY (e.g. piped output in tests).
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// displayWidth measures s the way the terminal will render it, honoring
// wide runes.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
