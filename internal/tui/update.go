package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codemonkey-cli/codemonkey/internal/controller"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case connectMsg:
		m.connecting = false
		if msg.err != nil {
			m.connectErr = msg.err
			m.statusLine = fmt.Sprintf("connect failed: %v (press r to retry)", msg.err)
			return m, nil
		}
		m.connected = true
		m.connectErr = nil
		m.statusLine = "connected"
		return m, nil

	case stepMsg:
		m.busy = false
		m.lastResult = msg.result
		return m.handleStepResult(msg.result)

	case pauseElapsedMsg:
		return m, stepCmd(m.ctrl)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleStepResult(r controller.StepResult) (Model, tea.Cmd) {
	switch r.Kind {
	case controller.StepFinished:
		m.statusLine = "presentation finished"
		return m, nil

	case controller.StepNarrationOnly:
		m.statusLine = ""
		return m, nil

	case controller.StepPaused:
		if r.PauseTimeout != nil {
			d := time.Duration(*r.PauseTimeout) * time.Second
			m.statusLine = fmt.Sprintf("paused for %ds", *r.PauseTimeout)
			return m, tea.Tick(d, func(time.Time) tea.Msg { return pauseElapsedMsg{} })
		}
		m.statusLine = "paused — press enter to continue"
		return m, nil

	case controller.StepExecuted:
		m.statusLine = "executed"
		return m, nil

	case controller.StepAgentError:
		m.statusLine = fmt.Sprintf("agent error: %s", r.Message)
		return m, nil

	case controller.StepConnectionLost:
		m.connected = false
		m.statusLine = "connection lost (press r to reconnect)"
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Retry):
		if !m.connected {
			m.connecting = true
			return m, connectCmd(m.ctrl)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.ctrl.GoBack()
		m.statusLine = ""
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.connected && !m.busy {
			m.busy = true
			return m, stepCmd(m.ctrl)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.busy {
			return m, nil
		}
		if requiresConnection(m.ctrl) && !m.connected {
			m.statusLine = "not connected (press r to connect)"
			return m, nil
		}
		m.busy = true
		return m, stepCmd(m.ctrl)
	}
	return m, nil
}

// requiresConnection reports whether the current block will need the
// Executor connection (i.e. it's an Action block).
func requiresConnection(ctrl *controller.Controller) bool {
	b := ctrl.CurrentBlock()
	return b != nil && b.Type.String() == "Action"
}
