package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/tui/handlers"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateDashboard:
		content = docStyle.Render(m.Dashboard.View())
	case constants.StateHistory:
		content = docStyle.Render(m.History.View())
	case constants.StateSettings:
		content = docStyle.Render(m.SettingsView.View())
	case constants.StateTrack, constants.StateEditSettings, constants.StateConfirmClear:
		content = m.viewForm()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.State
	if active == constants.StateEditSettings || active == constants.StateConfirmClear {
		active = constants.StateSettings
	}

	titles := []struct {
		state constants.SessionState
		title string
	}{
		{constants.StateDashboard, "Dashboard"},
		{constants.StateTrack, "Track"},
		{constants.StateHistory, "History"},
		{constants.StateSettings, "Settings"},
	}

	tabs := make([]string, len(titles))
	for i, t := range titles {
		if t.state == active {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = inactiveTabStyle.Render(t.title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.Status == "":
		return ""
	case m.Status == handlers.ClearFailedMessage:
		return dangerStyle.Render(m.Status)
	case strings.HasPrefix(m.Status, "✓"):
		return successStyle.Render(m.Status)
	}
	return m.Status
}

func (m Model) viewForm() string {
	if m.Form == nil {
		return ""
	}
	view := m.Form.View()
	if m.FormError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, dangerStyle.Render(m.FormError))
	}
	return docStyle.Render(view)
}
