package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/logger"
	"github.com/julianstephens/healthlog/internal/tui/state"
)

// ClearFailedMessage is shown when clearing all data fails.
const ClearFailedMessage = "Failed to clear data. Please try again."

// StartConfirmClear asks before deleting every entry.
func StartConfirmClear(m *state.Model) tea.Cmd {
	m.ConfirmationForm = &state.ConfirmationFormModel{}
	m.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all health data?").
				Description("Every recorded entry will be permanently deleted. Settings are kept.").
				Affirmative("Clear").
				Negative("Cancel").
				Value(&m.ConfirmationForm.Confirmed),
		),
	)
	m.Status = ""
	m.State = constants.StateConfirmClear
	return m.Form.Init()
}

// HandleConfirmClearState handles the clear-all confirmation
func HandleConfirmClearState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.ConfirmationForm = nil
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
		if m.ConfirmationForm.Confirmed {
			ClearAll(m)
		}
		m.ConfirmationForm = nil
		m.State = constants.StateSettings
	case huh.StateAborted:
		m.ConfirmationForm = nil
		m.State = constants.StateSettings
	}
	return tea.Batch(cmds...)
}

// ClearAll removes every day log and reports the outcome in the status line.
func ClearAll(m *state.Model) {
	ctx, cancel := m.App.StoreContext()
	defer cancel()

	n, err := m.App.Journal.ClearAll(ctx)
	if err != nil {
		logger.Error("Failed to clear health data", "error", err)
		m.Status = ClearFailedMessage
		return
	}
	logger.Info("Cleared health data", "days", n)
	m.Status = fmt.Sprintf("✓ Cleared %d day logs", n)
}
