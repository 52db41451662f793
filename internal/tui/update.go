package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/tui/handlers"
)

// chromeHeight is the tab bar, status line and help line.
const chromeHeight = 4

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		h, v := docStyle.GetFrameSize()
		contentWidth := msg.Width - h
		contentHeight := msg.Height - v - chromeHeight
		m.Dashboard.SetSize(contentWidth, contentHeight)
		m.History.SetSize(contentWidth, contentHeight)
		m.SettingsView.SetSize(contentWidth, contentHeight)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
	}

	// Loads finish asynchronously and apply whatever the active view
	if handled, cmd := handlers.HandleLoaded(&m.Model, msg); handled {
		return m, cmd
	}

	switch m.State {
	case constants.StateTrack:
		return m, handlers.HandleTrackState(&m.Model, msg)
	case constants.StateEditSettings:
		return m, handlers.HandleEditSettingsState(&m.Model, msg)
	case constants.StateConfirmClear:
		return m, handlers.HandleConfirmClearState(&m.Model, msg)
	}

	if handled, cmd := handlers.HandleSettingsMessages(&m.Model, msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case constants.StateHistory:
		m.History, cmd = m.History.Update(msg)
	case constants.StateSettings:
		m.SettingsView, cmd = m.SettingsView.Update(msg)
	}
	return m, cmd
}
