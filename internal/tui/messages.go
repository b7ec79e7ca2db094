package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codemonkey-cli/codemonkey/internal/controller"
)

type connectMsg struct{ err error }

type stepMsg struct{ result controller.StepResult }

type pauseElapsedMsg struct{}

func connectCmd(ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.Connect()
		return connectMsg{err: err}
	}
}

func stepCmd(ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		return stepMsg{result: ctrl.Step()}
	}
}
