package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func validEntry() Entry {
	return Entry{
		Mood:         7,
		Stress:       3,
		HealthScore:  8,
		HealthIssues: []string{"Headache"},
		Time:         "4:05 PM",
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *Entry)
		wantErr string
	}{
		{name: "valid", mutate: func(e *Entry) {}},
		{name: "lower bound", mutate: func(e *Entry) { e.Mood, e.Stress, e.HealthScore = 1, 1, 1 }},
		{name: "upper bound", mutate: func(e *Entry) { e.Mood, e.Stress, e.HealthScore = 10, 10, 10 }},
		{name: "mood too low", mutate: func(e *Entry) { e.Mood = 0 }, wantErr: "mood must be between 1 and 10"},
		{name: "stress too high", mutate: func(e *Entry) { e.Stress = 11 }, wantErr: "stress must be between 1 and 10"},
		{name: "missing health score", mutate: func(e *Entry) { e.HealthScore = 0 }, wantErr: "health score"},
		{name: "long briefs", mutate: func(e *Entry) { e.HealthBriefs = strings.Repeat("a", 1001) }, wantErr: "health briefs too long"},
		{name: "long stress reasons", mutate: func(e *Entry) { e.StressReasons = strings.Repeat("é", 1001) }, wantErr: "stress reasons too long"},
		{name: "multibyte at cap", mutate: func(e *Entry) { e.StressReasons = strings.Repeat("é", 1000) }},
		{name: "long fever", mutate: func(e *Entry) { e.Fever = strings.Repeat("9", 65) }, wantErr: "fever note too long"},
		{name: "unknown issue", mutate: func(e *Entry) { e.HealthIssues = []string{"Gout"} }, wantErr: "unknown health issue"},
		{name: "duplicate issue", mutate: func(e *Entry) { e.HealthIssues = []string{"Eyes", "Eyes"} }, wantErr: "duplicate health issue"},
		{name: "missing time", mutate: func(e *Entry) { e.Time = "" }, wantErr: "time is required"},
		{name: "24h time", mutate: func(e *Entry) { e.Time = "16:05" }, wantErr: "invalid time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEntryJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Entry{Mood: 5, Stress: 5, HealthScore: 5, Time: "9:00 AM"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	want := []string{"time", "mood", "stress", "stressReasons", "fever", "healthBriefs", "healthIssues", "healthScore"}
	if len(raw) != len(want) {
		t.Errorf("got %d fields, want %d: %s", len(raw), len(want), data)
	}
	for _, field := range want {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing field %q in %s", field, data)
		}
	}
	if string(raw["healthIssues"]) != "[]" {
		t.Errorf("healthIssues = %s, want []", raw["healthIssues"])
	}
}

func TestEntryMissingHealthScoreDecodesToZero(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"time":"4:05 PM","mood":6,"stress":2,"healthIssues":[]}`), &e); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if e.HealthScore != 0 {
		t.Errorf("HealthScore = %d, want 0", e.HealthScore)
	}
}

func TestHistoryWindow(t *testing.T) {
	w := HistoryWindow{
		"2024-03-13": DayLog{validEntry()},
		"2024-03-15": DayLog{validEntry(), validEntry()},
	}

	if !w.HasData("2024-03-15") {
		t.Error("HasData(2024-03-15) = false, want true")
	}
	if w.HasData("2024-03-14") {
		t.Error("HasData(2024-03-14) = true, want false")
	}
	if got := w.Get("2024-03-14"); got != nil {
		t.Errorf("Get(2024-03-14) = %v, want nil", got)
	}

	dates := w.Dates()
	if len(dates) != 2 || dates[0] != "2024-03-15" || dates[1] != "2024-03-13" {
		t.Errorf("Dates() = %v, want newest first", dates)
	}
	if w.EntryCount() != 3 {
		t.Errorf("EntryCount() = %d, want 3", w.EntryCount())
	}
}
