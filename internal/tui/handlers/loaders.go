package handlers

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/healthlog/internal/logger"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/tui/state"
	"github.com/julianstephens/healthlog/internal/utils"
)

type DashboardLoadedMsg struct {
	Seq  int
	Date string
	Log  models.DayLog
	Err  error
}

type HistoryLoadedMsg struct {
	Seq    int
	Anchor time.Time
	Days   int
	Window models.HistoryWindow
	Err    error
}

type SettingsLoadedMsg struct {
	Seq      int
	Settings models.Settings
	Location *time.Location
	Err      error
}

// LoadDashboard reads today's log in the background.
func LoadDashboard(m *state.Model) tea.Cmd {
	m.DashboardSeq++
	seq, app := m.DashboardSeq, m.App
	return func() tea.Msg {
		ctx, cancel := app.StoreContext()
		defer cancel()

		_, loc, err := app.Settings(ctx)
		if err != nil {
			return DashboardLoadedMsg{Seq: seq, Err: err}
		}
		date := utils.FormatDate(app.Today(loc))
		log, err := app.Loader.LoadDay(ctx, date)
		return DashboardLoadedMsg{Seq: seq, Date: date, Log: log, Err: err}
	}
}

// LoadHistory reads the trailing window ending today in the background.
func LoadHistory(m *state.Model) tea.Cmd {
	m.HistorySeq++
	seq, app := m.HistorySeq, m.App
	return func() tea.Msg {
		ctx, cancel := app.StoreContext()
		defer cancel()

		s, loc, err := app.Settings(ctx)
		if err != nil {
			return HistoryLoadedMsg{Seq: seq, Err: err}
		}
		anchor := app.Today(loc)
		window, err := app.Loader.LoadWindow(ctx, anchor, s.WindowDays)
		return HistoryLoadedMsg{Seq: seq, Anchor: anchor, Days: s.WindowDays, Window: window, Err: err}
	}
}

// LoadSettings reads the user settings in the background.
func LoadSettings(m *state.Model) tea.Cmd {
	m.SettingsSeq++
	seq, app := m.SettingsSeq, m.App
	return func() tea.Msg {
		ctx, cancel := app.StoreContext()
		defer cancel()

		s, loc, err := app.Settings(ctx)
		return SettingsLoadedMsg{Seq: seq, Settings: s, Location: loc, Err: err}
	}
}

// HandleLoaded applies finished loads. Failed and stale loads leave the
// current snapshot in place.
func HandleLoaded(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case DashboardLoadedMsg:
		if msg.Seq != m.DashboardSeq {
			return true, nil
		}
		if msg.Err != nil {
			logger.Error("Failed to load dashboard", "error", msg.Err)
			return true, nil
		}
		m.Dashboard.SetDay(msg.Date, msg.Log)
		return true, nil

	case HistoryLoadedMsg:
		if msg.Seq != m.HistorySeq {
			return true, nil
		}
		if msg.Err != nil {
			logger.Error("Failed to load history", "error", msg.Err)
			return true, nil
		}
		m.History.SetWindow(msg.Anchor, msg.Days, msg.Window)
		return true, nil

	case SettingsLoadedMsg:
		if msg.Seq != m.SettingsSeq {
			return true, nil
		}
		if msg.Err != nil {
			logger.Error("Failed to load settings", "error", msg.Err)
			return true, nil
		}
		m.Settings = msg.Settings
		m.Location = msg.Location
		m.SettingsView.SetSettings(msg.Settings)
		if m.Tracker != nil {
			m.Tracker.SetLocation(msg.Location)
		}
		return true, nil
	}
	return false, nil
}
