package tui

import (
	"fmt"
	"strings"

	"github.com/codemonkey-cli/codemonkey/internal/script"
	"github.com/codemonkey-cli/codemonkey/internal/ui"
)

// renderNarration runs narration text through glamour for a readable,
// wrapped rendering in the presenter's notes pane.
func renderNarration(narration string, width int) string {
	if narration == "" {
		return ""
	}
	return ui.RenderMarkdown(narration, width)
}

// renderActions renders a block's directives one per line, syntax
// highlighting Exec commands the way a shell snippet would be.
func renderActions(actions []script.Directive, styles *ui.Styles) string {
	shellHighlighter := ui.NewHighlighterForLanguage("bash")

	var b strings.Builder
	for _, a := range actions {
		line := a.String()
		if a.Kind == script.KindExec && shellHighlighter != nil {
			line = fmt.Sprintf("[EXEC] %s", shellHighlighter.HighlightLine(a.Text))
		}
		b.WriteString(styles.Command.Render(line))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
