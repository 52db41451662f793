package history

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthlog/internal/cli/entries"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/tui/components/dashboard"
)

var (
	detailStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

const listWidth = 36

type Item struct {
	Date string
	Log  models.DayLog
}

func (i Item) Title() string { return i.Date }

func (i Item) Description() string {
	avg := journal.Averages(i.Log)
	return fmt.Sprintf("%d entries · mood %d stress %d health %d", len(i.Log), avg.Mood, avg.Stress, avg.Health)
}

func (i Item) FilterValue() string { return i.Date }

type Model struct {
	list   list.Model
	window models.HistoryWindow
	anchor time.Time
	days   int
	width  int
	height int
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), listWidth, height)
	l.Title = "History"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("day", "days")

	m := Model{list: l, window: models.HistoryWindow{}}
	m.SetSize(width, height)
	return m
}

// SetWindow replaces the snapshot. The selection stays on the same date
// when it is still in the window.
func (m *Model) SetWindow(anchor time.Time, days int, window models.HistoryWindow) {
	selected := m.Selected()

	m.anchor = anchor
	m.days = days
	m.window = window
	m.list.Title = fmt.Sprintf("Last %d days", days)

	dates := window.Dates()
	items := make([]list.Item, len(dates))
	index := 0
	for i, date := range dates {
		items[i] = Item{Date: date, Log: window.Get(date)}
		if date == selected {
			index = i
		}
	}
	m.list.SetItems(items)
	m.list.Select(index)
}

// Selected returns the highlighted date, or "" when the window is empty.
func (m Model) Selected() string {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Date
	}
	return ""
}

func (m Model) Window() models.HistoryWindow {
	return m.window
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(listWidth, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), detailStyle.Render(m.detail()))
}

func (m Model) detail() string {
	month := m.anchor
	if month.IsZero() {
		month = time.Now()
	}

	selected := m.Selected()
	if selected == "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			entries.RenderCalendar(month, m.window),
			emptyStyle.Render("No entries in this window."),
		)
	}

	if t, err := time.ParseInLocation(constants.DateFormat, selected, month.Location()); err == nil {
		month = t
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		entries.RenderCalendar(month, m.window),
		headerStyle.Render(selected),
		dashboard.RenderEntries(m.window.Get(selected)),
	)
}
