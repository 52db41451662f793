// Package tracker assembles one new entry from form input and saves it to
// today's day log.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/logger"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/utils"
)

// Appender is the part of the entry store the form writes through.
type Appender interface {
	Append(ctx context.Context, date string, entry models.Entry) error
}

// Form holds provisional field values until Submit. Anger is collected and
// range-checked like the other scales but is not part of the saved entry.
type Form struct {
	Mood          int
	Stress        int
	Anger         int
	HealthScore   int
	StressReasons string
	Fever         string
	HealthBriefs  string

	issues []string

	store Appender
	loc   *time.Location
	now   func() time.Time
}

// New returns a form at its defaults. Entries are dated and timed in loc.
func New(store Appender, loc *time.Location) *Form {
	if loc == nil {
		loc = time.Local
	}
	f := &Form{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
	f.Reset()
	return f
}

// WithClock replaces the clock used to stamp entries.
func (f *Form) WithClock(now func() time.Time) *Form {
	f.now = now
	return f
}

// SetLocation changes the timezone later entries are stamped in.
func (f *Form) SetLocation(loc *time.Location) {
	if loc != nil {
		f.loc = loc
	}
}

// Reset restores every field to its default.
func (f *Form) Reset() {
	f.Mood = constants.DefaultMood
	f.Stress = constants.DefaultStress
	f.Anger = constants.DefaultAnger
	f.HealthScore = constants.DefaultHealthScore
	f.StressReasons = ""
	f.Fever = ""
	f.HealthBriefs = ""
	f.issues = nil
}

// Issues returns the selected issues in selection order.
func (f *Form) Issues() []string {
	out := make([]string, len(f.issues))
	copy(out, f.issues)
	return out
}

// IsSelected reports whether issue is currently selected.
func (f *Form) IsSelected(issue string) bool {
	return f.indexOf(issue) >= 0
}

func (f *Form) indexOf(issue string) int {
	for i, selected := range f.issues {
		if selected == issue {
			return i
		}
	}
	return -1
}

// ToggleIssue adds issue when absent and removes it when present.
func (f *Form) ToggleIssue(issue string) error {
	if !constants.IsKnownIssue(issue) {
		return fmt.Errorf("unknown health issue: %q", issue)
	}
	if i := f.indexOf(issue); i >= 0 {
		f.issues = append(f.issues[:i:i], f.issues[i+1:]...)
		return nil
	}
	f.issues = append(f.issues, issue)
	return nil
}

// SetIssues replaces the selection with issues, keeping their order and
// dropping repeats. The selection is unchanged if any issue is unknown.
func (f *Form) SetIssues(issues []string) error {
	for _, issue := range issues {
		if !constants.IsKnownIssue(issue) {
			return fmt.Errorf("unknown health issue: %q", issue)
		}
	}
	f.issues = nil
	for _, issue := range issues {
		if !f.IsSelected(issue) {
			f.issues = append(f.issues, issue)
		}
	}
	return nil
}

// Build stamps the current field values with the time and date now and
// validates the result without saving it.
func (f *Form) Build() (string, models.Entry, error) {
	now := f.now().In(f.loc)
	entry := models.Entry{
		Mood:          f.Mood,
		Stress:        f.Stress,
		StressReasons: f.StressReasons,
		Fever:         f.Fever,
		HealthBriefs:  f.HealthBriefs,
		HealthIssues:  f.Issues(),
		HealthScore:   f.HealthScore,
		Time:          utils.FormatEntryTime(now),
	}

	if f.Anger < constants.MinScale || f.Anger > constants.MaxScale {
		return "", models.Entry{}, fmt.Errorf("invalid entry: anger must be between %d and %d, got %d", constants.MinScale, constants.MaxScale, f.Anger)
	}
	if err := entry.Validate(); err != nil {
		return "", models.Entry{}, fmt.Errorf("invalid entry: %w", err)
	}
	return utils.FormatDate(now), entry, nil
}

// Submit appends the assembled entry to today's log and resets the form.
// On any error the form keeps its values so the user can retry.
func (f *Form) Submit(ctx context.Context) (models.Entry, error) {
	date, entry, err := f.Build()
	if err != nil {
		return models.Entry{}, err
	}
	if err := f.store.Append(ctx, date, entry); err != nil {
		return models.Entry{}, err
	}

	logger.Info("Saved entry", "date", date, "time", entry.Time, "issues", len(entry.HealthIssues))
	f.Reset()
	return entry, nil
}
