package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/settings"
	"github.com/julianstephens/healthlog/internal/tracker"
	"github.com/julianstephens/healthlog/internal/tui/components/dashboard"
	"github.com/julianstephens/healthlog/internal/tui/components/history"
	settingsview "github.com/julianstephens/healthlog/internal/tui/components/settings"
)

// TrackFormModel holds the issue selection bound to the entry form
type TrackFormModel struct {
	Issues []string
}

// SettingsFormModel represents the form model for settings
type SettingsFormModel struct {
	WindowDays string
	Timezone   string
}

// ConfirmationFormModel represents the clear-all confirmation
type ConfirmationFormModel struct {
	Confirmed bool
}

// Model represents the shared state for the TUI
type Model struct {
	App      *cli.Context
	State    constants.SessionState
	Keys     KeyMap
	Help     help.Model
	Settings models.Settings
	Location *time.Location

	Dashboard    dashboard.Model
	History      history.Model
	SettingsView settingsview.Model

	Form             *huh.Form
	Tracker          *tracker.Form
	TrackForm        *TrackFormModel
	SettingsForm     *SettingsFormModel
	ConfirmationForm *ConfirmationFormModel

	// Each view's last issued load; replies with an older sequence are stale
	DashboardSeq int
	HistorySeq   int
	SettingsSeq  int

	Status    string // Result of the last save or clear
	FormError string // Error message to display for form operations
	Quitting  bool
	Width     int
	Height    int
}

// New creates a new state Model
func New(app *cli.Context) Model {
	s := settings.Defaults()
	return Model{
		App:          app,
		State:        constants.StateDashboard,
		Keys:         DefaultKeyMap(),
		Help:         help.New(),
		Settings:     s,
		Location:     time.Local,
		Dashboard:    dashboard.New(0, 0),
		History:      history.New(0, 0),
		SettingsView: settingsview.New(s, app.Store.GetConfigPath(), 0, 0),
	}
}
