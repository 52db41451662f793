package dashboard

import (
	"strings"
	"testing"

	"github.com/julianstephens/healthlog/internal/models"
)

func TestView(t *testing.T) {
	m := New(80, 30)
	if !strings.Contains(m.View(), "Loading...") {
		t.Error("expected loading placeholder before the first snapshot")
	}

	m.SetDay("2024-03-15", models.DayLog{
		{Mood: 7, Stress: 3, HealthScore: 8, HealthIssues: []string{"Headache"}, Time: "9:00 AM"},
	})
	view := m.View()
	for _, want := range []string{"Today · 2024-03-15", "Mood", "7", "9:00 AM", "Headache"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m.SetDay("2024-03-16", nil)
	if !strings.Contains(m.View(), "No entries yet") {
		t.Error("expected empty message")
	}
}

func TestViewWithoutSize(t *testing.T) {
	m := New(0, 0)
	if m.View() != "" {
		t.Error("unsized dashboard should render nothing")
	}
}
