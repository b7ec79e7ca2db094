package tui

import "github.com/muesli/reflow/wordwrap"

// wrapText word-wraps plain text to width; width <= 0 returns s
// unchanged. The presenter view does not call it: View wraps its whole
// output with a lipgloss width, and narration goes through glamour.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
