package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	cur, total := m.ctrl.Progress()
	header := m.styles.Title.Render(fmt.Sprintf("codemonkey  [%d/%d]", cur, total))
	b.WriteString(header)
	b.WriteString("\n\n")

	if blk := m.ctrl.CurrentBlock(); blk != nil {
		if blk.Section != "" {
			b.WriteString(m.styles.Subtitle.Render("§ " + blk.Section))
			b.WriteString("\n\n")
		}
		if blk.HasNarration {
			b.WriteString(renderNarration(blk.Narration, m.width))
			b.WriteString("\n")
		}
		if len(blk.Actions) > 0 {
			b.WriteString(renderActions(blk.Actions, m.styles))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.styles.Success.Render("Done."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(helpLine(m.keys)))

	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

func (m Model) statusBar() string {
	if m.connecting {
		return m.styles.Muted.Render("connecting…")
	}
	if !m.connected && m.connectErr != nil {
		return m.styles.Error.Render(m.statusLine)
	}
	if m.lastResult.Kind.String() == "AgentError" {
		return m.styles.Error.Render(m.statusLine)
	}
	if m.statusLine == "" {
		return ""
	}
	return m.styles.Muted.Render(m.statusLine)
}

func helpLine(k KeyMap) string {
	var parts []string
	for _, b := range k.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ·  ")
}
