// Package tui is the Controller's interactive presenter screen: a
// bubbletea program that advances through blocks, renders narration
// with glamour, and reports Executor acks.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codemonkey-cli/codemonkey/internal/controller"
	"github.com/codemonkey-cli/codemonkey/internal/ui"
)

// Model is the bubbletea Model for the presenter screen.
type Model struct {
	ctrl   *controller.Controller
	styles *ui.Styles
	keys   KeyMap

	width  int
	height int

	connecting bool
	connected  bool
	connectErr error

	busy       bool // a Step is in flight
	lastResult controller.StepResult
	statusLine string

	quitting bool
}

// New constructs the presenter Model around an already-built Controller.
func New(ctrl *controller.Controller) Model {
	return Model{
		ctrl:       ctrl,
		styles:     ui.DefaultStyles(),
		keys:       DefaultKeyMap,
		width:      terminalWidth(),
		height:     24,
		connecting: true,
	}
}

// Init kicks off the initial connection attempt.
func (m Model) Init() tea.Cmd {
	return connectCmd(m.ctrl)
}
