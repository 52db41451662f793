package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/utils"
)

// ProblemType represents the kind of stored-data problem
type ProblemType string

const (
	ProblemInvalidKey         ProblemType = "invalid_key"
	ProblemMalformedJSON      ProblemType = "malformed_json"
	ProblemEmptyLog           ProblemType = "empty_log"
	ProblemOutOfRange         ProblemType = "out_of_range"
	ProblemMissingHealthScore ProblemType = "missing_health_score"
	ProblemTextTooLong        ProblemType = "text_too_long"
	ProblemUnknownIssue       ProblemType = "unknown_issue"
	ProblemDuplicateIssue     ProblemType = "duplicate_issue"
	ProblemInvalidTime        ProblemType = "invalid_time"
	ProblemFutureDate         ProblemType = "future_date"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is one finding. Entry is the zero-based index within the day log,
// or -1 for problems with the whole day.
type Problem struct {
	Type        ProblemType
	Severity    Severity
	Date        string
	Entry       int
	Description string
}

// Result contains every problem found in a scan.
type Result struct {
	Problems       []Problem
	DaysChecked    int
	EntriesChecked int
}

// HasProblems returns true if anything was found
func (r *Result) HasProblems() bool {
	return len(r.Problems) > 0
}

// HasErrors returns true if any problem is an error rather than a warning
func (r *Result) HasErrors() bool {
	for _, p := range r.Problems {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all problems
func (r *Result) FormatReport() string {
	if !r.HasProblems() {
		return fmt.Sprintf("No problems found in %d day(s), %d entries.", r.DaysChecked, r.EntriesChecked)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Problems found in %d day(s), %d entries:\n", r.DaysChecked, r.EntriesChecked)
	for _, p := range r.Problems {
		fmt.Fprintf(&b, "- [%s] %s\n", p.Severity, p.Description)
	}
	return b.String()
}

// Validator checks stored day logs. Dates after today are reported.
type Validator struct {
	today string
}

// New creates a new Validator with today as yyyy-MM-dd
func New(today string) *Validator {
	return &Validator{today: today}
}

// ValidateStore scans every key in the health namespace.
func (v *Validator) ValidateStore(ctx context.Context, p storage.Provider) (Result, error) {
	result := Result{Problems: []Problem{}}

	dates, err := journal.NewStore(p).Dates(ctx)
	if err != nil {
		return result, err
	}

	for _, date := range dates {
		raw, ok, err := p.Get(ctx, journal.Key(date))
		if err != nil {
			return result, &journal.StorageError{Op: "get", Date: date, Err: err}
		}
		if !ok {
			continue
		}
		problems, entries := v.ValidateDay(date, raw)
		result.Problems = append(result.Problems, problems...)
		result.DaysChecked++
		result.EntriesChecked += entries
	}

	return result, nil
}

// ValidateDay checks one stored value and returns its problems and the
// number of entries it holds.
func (v *Validator) ValidateDay(date, raw string) ([]Problem, int) {
	var problems []Problem
	day := func(t ProblemType, sev Severity, format string, args ...interface{}) {
		problems = append(problems, Problem{
			Type:        t,
			Severity:    sev,
			Date:        date,
			Entry:       -1,
			Description: fmt.Sprintf("%s: ", date) + fmt.Sprintf(format, args...),
		})
	}

	if err := utils.ValidateDate(date); err != nil {
		day(ProblemInvalidKey, SeverityError, "key %q is not a valid date", journal.Key(date))
	} else if v.today != "" && date > v.today {
		day(ProblemFutureDate, SeverityWarning, "date is after today (%s)", v.today)
	}

	var log models.DayLog
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		day(ProblemMalformedJSON, SeverityError, "value is not a list of entries: %v", err)
		return problems, 0
	}
	if len(log) == 0 {
		day(ProblemEmptyLog, SeverityWarning, "day log is empty")
	}

	for i, e := range log {
		problems = append(problems, v.validateEntry(date, i, e)...)
	}
	return problems, len(log)
}

func (v *Validator) validateEntry(date string, index int, e models.Entry) []Problem {
	var problems []Problem
	add := func(t ProblemType, sev Severity, format string, args ...interface{}) {
		problems = append(problems, Problem{
			Type:        t,
			Severity:    sev,
			Date:        date,
			Entry:       index,
			Description: fmt.Sprintf("%s entry %d: ", date, index+1) + fmt.Sprintf(format, args...),
		})
	}

	scales := []struct {
		name  string
		value int
	}{
		{"mood", e.Mood},
		{"stress", e.Stress},
		{"health score", e.HealthScore},
	}
	for _, s := range scales {
		if s.name == "health score" && s.value == 0 {
			add(ProblemMissingHealthScore, SeverityWarning, "health score missing, averaged as 0")
			continue
		}
		if s.value < constants.MinScale || s.value > constants.MaxScale {
			add(ProblemOutOfRange, SeverityError, "%s %d outside %d-%d", s.name, s.value, constants.MinScale, constants.MaxScale)
		}
	}

	texts := []struct {
		name  string
		value string
		max   int
	}{
		{"stress reasons", e.StressReasons, constants.MaxNoteLength},
		{"fever", e.Fever, constants.MaxFeverLength},
		{"health briefs", e.HealthBriefs, constants.MaxNoteLength},
	}
	for _, t := range texts {
		if n := utf8.RuneCountInString(t.value); n > t.max {
			add(ProblemTextTooLong, SeverityWarning, "%s is %d characters (max %d)", t.name, n, t.max)
		}
	}

	seen := make(map[string]bool, len(e.HealthIssues))
	for _, issue := range e.HealthIssues {
		if !constants.IsKnownIssue(issue) {
			add(ProblemUnknownIssue, SeverityWarning, "unknown health issue %q", issue)
		}
		if seen[issue] {
			add(ProblemDuplicateIssue, SeverityWarning, "health issue %q listed twice", issue)
		}
		seen[issue] = true
	}

	if _, err := time.Parse(constants.EntryTimeFormat, e.Time); err != nil {
		add(ProblemInvalidTime, SeverityWarning, "time %q is not h:mm AM/PM", e.Time)
	}

	return problems
}
