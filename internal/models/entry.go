package models

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/julianstephens/healthlog/internal/constants"
)

// Entry is one journaling record. Field names are the stored JSON contract.
type Entry struct {
	Mood          int      `json:"mood"`
	Stress        int      `json:"stress"`
	StressReasons string   `json:"stressReasons"`
	Fever         string   `json:"fever"`
	HealthBriefs  string   `json:"healthBriefs"`
	HealthIssues  []string `json:"healthIssues"`
	HealthScore   int      `json:"healthScore"`
	Time          string   `json:"time"` // h:mm AM/PM, not sortable
}

// MarshalJSON always writes healthIssues as an array.
func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	p := plain(e)
	if p.HealthIssues == nil {
		p.HealthIssues = []string{}
	}
	return json.Marshal(p)
}

// Validate range-checks the scales, caps free text and checks issue tags
// against the fixed vocabulary.
func (e Entry) Validate() error {
	if err := validateScale("mood", e.Mood); err != nil {
		return err
	}
	if err := validateScale("stress", e.Stress); err != nil {
		return err
	}
	if err := validateScale("health score", e.HealthScore); err != nil {
		return err
	}

	if n := utf8.RuneCountInString(e.StressReasons); n > constants.MaxNoteLength {
		return fmt.Errorf("stress reasons too long: %d characters (max %d)", n, constants.MaxNoteLength)
	}
	if n := utf8.RuneCountInString(e.HealthBriefs); n > constants.MaxNoteLength {
		return fmt.Errorf("health briefs too long: %d characters (max %d)", n, constants.MaxNoteLength)
	}
	if n := utf8.RuneCountInString(e.Fever); n > constants.MaxFeverLength {
		return fmt.Errorf("fever note too long: %d characters (max %d)", n, constants.MaxFeverLength)
	}

	seen := make(map[string]bool, len(e.HealthIssues))
	for _, issue := range e.HealthIssues {
		if !constants.IsKnownIssue(issue) {
			return fmt.Errorf("unknown health issue: %q", issue)
		}
		if seen[issue] {
			return fmt.Errorf("duplicate health issue: %q", issue)
		}
		seen[issue] = true
	}

	if e.Time == "" {
		return fmt.Errorf("time is required")
	}
	if _, err := time.Parse(constants.EntryTimeFormat, e.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected h:mm AM/PM): %w", e.Time, err)
	}

	return nil
}

func validateScale(name string, v int) error {
	if v < constants.MinScale || v > constants.MaxScale {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, constants.MinScale, constants.MaxScale, v)
	}
	return nil
}

// DayLog holds a single date's entries in the order they were saved.
type DayLog []Entry

// Averages are the rounded per-field means over a DayLog.
type Averages struct {
	Mood   int `json:"mood"`
	Stress int `json:"stress"`
	Health int `json:"health"`
}
