package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/settings"
	settingsview "github.com/julianstephens/healthlog/internal/tui/components/settings"
	"github.com/julianstephens/healthlog/internal/tui/state"
	"github.com/julianstephens/healthlog/internal/utils"
)

// NewSettingsForm creates a new form for editing settings
func NewSettingsForm(fm *state.SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("History window (days)").
				Value(&fm.WindowDays).
				Validate(func(s string) error {
					days, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					if days < constants.MinWindowDays || days > constants.MaxWindowDays {
						return fmt.Errorf("must be between %d and %d", constants.MinWindowDays, constants.MaxWindowDays)
					}
					return nil
				}),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name such as Europe/Paris, or Local").
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if !utils.ValidateTimezone(strings.TrimSpace(s)) {
						return fmt.Errorf("unknown timezone")
					}
					return nil
				}),
		),
	)
}

// HandleEditSettingsState handles the edit settings state
func HandleEditSettingsState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.FormError = ""
		m.State = constants.StateSettings
		return nil
	}

	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if err := SaveSettings(m); err != nil {
			// Stay in the form to allow retry
			m.FormError = "Failed to update settings: " + err.Error()
			m.Form.State = huh.StateNormal
			return tea.Batch(cmds...)
		}
		m.FormError = ""
		cmds = append(cmds, SwitchTo(m, constants.StateSettings))
	case huh.StateAborted:
		m.FormError = ""
		m.State = constants.StateSettings
	}
	return tea.Batch(cmds...)
}

// SaveSettings validates and stores the edited settings.
func SaveSettings(m *state.Model) error {
	days, err := strconv.Atoi(strings.TrimSpace(m.SettingsForm.WindowDays))
	if err != nil {
		return fmt.Errorf("invalid window days %q", m.SettingsForm.WindowDays)
	}
	s := models.Settings{
		WindowDays: days,
		Timezone:   strings.TrimSpace(m.SettingsForm.Timezone),
	}

	ctx, cancel := m.App.StoreContext()
	defer cancel()
	if err := settings.Save(ctx, m.App.Store, s); err != nil {
		return err
	}
	m.Settings = s
	m.SettingsView.SetSettings(s)
	return nil
}

// HandleSettingsMessages handles messages from the settings component
func HandleSettingsMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg.(type) {
	case settingsview.EditSettingsMsg:
		m.SettingsForm = &state.SettingsFormModel{
			WindowDays: strconv.Itoa(m.Settings.WindowDays),
			Timezone:   m.Settings.Timezone,
		}
		m.FormError = ""
		m.Form = NewSettingsForm(m.SettingsForm)
		m.State = constants.StateEditSettings
		return true, m.Form.Init()
	case settingsview.ClearDataMsg:
		return true, StartConfirmClear(m)
	}
	return false, nil
}
