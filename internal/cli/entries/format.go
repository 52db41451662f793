package entries

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/utils"
)

// FormatAverages renders the one-line summary used by today and history.
func FormatAverages(a models.Averages) string {
	return fmt.Sprintf("mood %d  stress %d  health %d", a.Mood, a.Stress, a.Health)
}

// FormatEntry renders one entry, indented details below its time line.
func FormatEntry(e models.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s  mood %d  stress %d  health %d\n", e.Time, e.Mood, e.Stress, e.HealthScore)
	if len(e.HealthIssues) > 0 {
		fmt.Fprintf(&b, "          issues: %s\n", strings.Join(e.HealthIssues, ", "))
	}
	if e.StressReasons != "" {
		fmt.Fprintf(&b, "          stress reasons: %s\n", e.StressReasons)
	}
	if e.Fever != "" {
		fmt.Fprintf(&b, "          fever: %s\n", e.Fever)
	}
	if e.HealthBriefs != "" {
		fmt.Fprintf(&b, "          notes: %s\n", e.HealthBriefs)
	}
	return b.String()
}

// RenderCalendar draws month as a Sunday-first grid. Days present in window
// carry a * marker.
func RenderCalendar(month time.Time, window models.HistoryWindow) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	days := utils.DaysInMonth(first)

	var b strings.Builder
	title := first.Format("January 2006")
	fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", max(0, (27-len(title))/2)), title)
	b.WriteString("Su  Mo  Tu  We  Th  Fr  Sa\n")

	var line []string
	for i := 0; i < int(first.Weekday()); i++ {
		line = append(line, "   ")
	}
	for day := 1; day <= days; day++ {
		date := first.AddDate(0, 0, day-1)
		mark := " "
		if window.HasData(utils.FormatDate(date)) {
			mark = "*"
		}
		line = append(line, fmt.Sprintf("%2d%s", day, mark))
		if len(line) == 7 {
			b.WriteString(strings.TrimRight(strings.Join(line, " "), " ") + "\n")
			line = nil
		}
	}
	if len(line) > 0 {
		b.WriteString(strings.TrimRight(strings.Join(line, " "), " ") + "\n")
	}
	return b.String()
}
