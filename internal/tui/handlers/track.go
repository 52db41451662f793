package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlog/internal/cli/entries"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/logger"
	"github.com/julianstephens/healthlog/internal/tracker"
	"github.com/julianstephens/healthlog/internal/tui/state"
)

// StartTrack shows the entry form bound to the current tracker values.
func StartTrack(m *state.Model) tea.Cmd {
	if m.Tracker == nil {
		m.Tracker = tracker.New(m.App.Journal, m.Location).WithClock(m.App.Now)
	}
	m.Tracker.SetLocation(m.Location)
	m.TrackForm = &state.TrackFormModel{Issues: m.Tracker.Issues()}
	m.Form = entries.NewEntryForm(m.Tracker, &m.TrackForm.Issues)
	m.State = constants.StateTrack
	return m.Form.Init()
}

// HandleTrackState handles the entry form
func HandleTrackState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return SwitchTo(m, constants.StateDashboard)
	}

	var cmds []tea.Cmd
	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		cmds = append(cmds, CompleteTrack(m))
	case huh.StateAborted:
		cmds = append(cmds, SwitchTo(m, constants.StateDashboard))
	}
	return tea.Batch(cmds...)
}

// CompleteTrack saves the finished form. A saved entry returns to the
// dashboard with the saved status; a failed save reopens the form with the
// entered values.
func CompleteTrack(m *state.Model) tea.Cmd {
	if !SubmitEntry(m) {
		return StartTrack(m)
	}
	status := m.Status
	cmd := SwitchTo(m, constants.StateDashboard)
	m.Status = status
	return cmd
}

// SubmitEntry saves the tracker values. A failed save is logged and the
// values stay in the form.
func SubmitEntry(m *state.Model) bool {
	if err := m.Tracker.SetIssues(m.TrackForm.Issues); err != nil {
		logger.Error("Invalid issue selection", "error", err)
		return false
	}

	ctx, cancel := m.App.StoreContext()
	defer cancel()

	entry, err := m.Tracker.Submit(ctx)
	if err != nil {
		logger.Error("Failed to save entry", "error", err)
		return false
	}
	m.Status = fmt.Sprintf("✓ Entry saved at %s", entry.Time)
	return true
}
