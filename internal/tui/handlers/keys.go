package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/tui/state"
)

var tabOrder = []constants.SessionState{
	constants.StateDashboard,
	constants.StateTrack,
	constants.StateHistory,
	constants.StateSettings,
}

// HandleGlobalKeys handles key presses shared by every tab view
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case key.Matches(msg, m.Keys.Tab):
		return true, SwitchTo(m, nextTab(m.State, 1))
	case key.Matches(msg, m.Keys.ShiftTab):
		return true, SwitchTo(m, nextTab(m.State, -1))
	case key.Matches(msg, m.Keys.NewEntry):
		return true, SwitchTo(m, constants.StateTrack)
	}
	return false, nil
}

func nextTab(current constants.SessionState, step int) constants.SessionState {
	for i, s := range tabOrder {
		if s == current {
			return tabOrder[(i+step+len(tabOrder))%len(tabOrder)]
		}
	}
	// Sub-states return to their own tab first
	return constants.StateSettings
}

// SwitchTo makes s visible and reloads its snapshot.
func SwitchTo(m *state.Model, s constants.SessionState) tea.Cmd {
	m.Status = ""
	m.FormError = ""
	m.State = s
	switch s {
	case constants.StateDashboard:
		return LoadDashboard(m)
	case constants.StateTrack:
		return StartTrack(m)
	case constants.StateHistory:
		return LoadHistory(m)
	case constants.StateSettings:
		return LoadSettings(m)
	}
	return nil
}
