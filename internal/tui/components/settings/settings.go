package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthlog/internal/models"
)

type EditSettingsMsg struct{}

type ClearDataMsg struct{}

type Model struct {
	settings  models.Settings
	storePath string
	width     int
	height    int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(20)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func New(settings models.Settings, storePath string, width, height int) Model {
	return Model{
		settings:  settings,
		storePath: storePath,
		width:     width,
		height:    height,
	}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

func (m Model) Settings() models.Settings {
	return m.settings
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return m, func() tea.Msg { return EditSettingsMsg{} }
		case "c":
			return m, func() tea.Msg { return ClearDataMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	general := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("%s %s", labelStyle.Render("History window:"), valueStyle.Render(fmt.Sprintf("%d days", m.settings.WindowDays))),
		fmt.Sprintf("%s %s", labelStyle.Render("Timezone:"), valueStyle.Render(m.settings.Timezone)),
		fmt.Sprintf("%s %s", labelStyle.Render("Storage:"), valueStyle.Render(m.storePath)),
	)

	data := lipgloss.JoinVertical(
		lipgloss.Left,
		dangerStyle.Render("Clear all data"),
		"Permanently deletes every entry. Settings are kept.",
	)

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(2).
		Render("Press 'e' to edit settings, 'c' to clear all data")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		sectionStyle.Render(titleStyle.Render("Settings")+"\n"+general),
		sectionStyle.Render(titleStyle.Render("Data")+"\n"+data),
		helpText,
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
