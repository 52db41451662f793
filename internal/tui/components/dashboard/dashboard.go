package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(1).
			Align(lipgloss.Center)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingLeft(2)

	issueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// headerHeight is the title plus the bordered average cards.
const headerHeight = 6

type Model struct {
	viewport viewport.Model
	date     string
	log      models.DayLog
	loaded   bool
	width    int
	height   int
}

func New(width, height int) Model {
	m := Model{viewport: viewport.New(width, max(height-headerHeight, 1))}
	m.SetSize(width, height)
	return m
}

// SetDay replaces the snapshot shown on the dashboard.
func (m *Model) SetDay(date string, log models.DayLog) {
	m.date = date
	m.log = log
	m.loaded = true
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m Model) Date() string {
	return m.date
}

func (m Model) Log() models.DayLog {
	return m.log
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-headerHeight, 1)
	m.viewport.SetContent(m.content())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	title := "Today"
	if m.date != "" {
		title = fmt.Sprintf("Today · %s", m.date)
	}

	avg := journal.Averages(m.log)
	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		card("Mood", avg.Mood),
		card("Stress", avg.Stress),
		card("Health", avg.Health),
		card("Entries", len(m.log)),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		cards,
		"",
		m.viewport.View(),
	)
}

func (m Model) content() string {
	if !m.loaded {
		return emptyStyle.Render("Loading...")
	}
	if len(m.log) == 0 {
		return emptyStyle.Render("No entries yet. Press n to add one.")
	}
	return RenderEntries(m.log)
}

func card(label string, value int) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + cardValueStyle.Render(strconv.Itoa(value)))
}

// RenderEntries lists a day's entries in save order.
func RenderEntries(log models.DayLog) string {
	var b strings.Builder
	for i, e := range log {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  mood %d · stress %d · health %d\n", timeStyle.Render(e.Time), e.Mood, e.Stress, e.HealthScore)
		if len(e.HealthIssues) > 0 {
			b.WriteString(detailStyle.Render(issueStyle.Render(strings.Join(e.HealthIssues, ", "))) + "\n")
		}
		if e.StressReasons != "" {
			b.WriteString(detailStyle.Render("Stress: "+e.StressReasons) + "\n")
		}
		if e.Fever != "" {
			b.WriteString(detailStyle.Render("Fever: "+e.Fever) + "\n")
		}
		if e.HealthBriefs != "" {
			b.WriteString(detailStyle.Render("Notes: "+e.HealthBriefs) + "\n")
		}
	}
	return b.String()
}
