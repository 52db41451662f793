package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/tui/handlers"
	"github.com/julianstephens/healthlog/internal/tui/state"
)

type Model struct {
	state.Model
	initCmd tea.Cmd
}

func NewModel(app *cli.Context) Model {
	m := Model{Model: state.New(app)}
	// Issued here so the sequence numbers stick to the returned model
	m.initCmd = tea.Batch(
		handlers.LoadSettings(&m.Model),
		handlers.LoadDashboard(&m.Model),
	)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) ShortHelp() []key.Binding {
	switch m.State {
	case constants.StateTrack, constants.StateEditSettings, constants.StateConfirmClear:
		return []key.Binding{m.Keys.Back}
	}
	keys := []key.Binding{m.Keys.Tab, m.Keys.NewEntry, m.Keys.Quit, m.Keys.Help}
	switch m.State {
	case constants.StateHistory:
		keys = append(keys, m.Keys.Up, m.Keys.Down)
	case constants.StateSettings:
		keys = append(keys, m.Keys.Edit, m.Keys.Clear)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.NewEntry, m.Keys.Quit, m.Keys.Help}
	navigation := []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Back}

	var actions []key.Binding
	if m.State == constants.StateSettings {
		actions = []key.Binding{m.Keys.Edit, m.Keys.Clear}
	}
	return [][]key.Binding{global, navigation, actions}
}
