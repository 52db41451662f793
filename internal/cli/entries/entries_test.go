package entries

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/storage/storagetest"
	"github.com/julianstephens/healthlog/internal/tracker"
)

var testNow = time.Date(2024, 3, 15, 16, 5, 0, 0, time.UTC)

func newTestContext(t *testing.T) (*cli.Context, *storagetest.Memory, *bytes.Buffer) {
	t.Helper()
	mem := storagetest.NewMemory()
	mem.Put(constants.SettingTimezone, "UTC")

	out := &bytes.Buffer{}
	ctx := cli.NewContext(mem)
	ctx.Out = out
	ctx.Now = func() time.Time { return testNow }
	ctx.Confirm = func(title, description string) (bool, error) {
		t.Fatalf("unexpected confirmation prompt %q", title)
		return false, nil
	}
	return ctx, mem, out
}

func seedDay(t *testing.T, mem *storagetest.Memory, date, value string) {
	t.Helper()
	mem.Put(journal.Key(date), value)
}

func TestLogCmd(t *testing.T) {
	ctx, mem, out := newTestContext(t)

	cmd := &LogCmd{
		Mood:          7,
		Stress:        3,
		Anger:         9,
		Health:        8,
		StressReasons: "deadline",
		Issue:         []string{"Headache", "Fatigue"},
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	raw, ok := mem.Raw(journal.Key("2024-03-15"))
	if !ok {
		t.Fatal("expected day log to be written")
	}
	want := `[{"mood":7,"stress":3,"stressReasons":"deadline","fever":"","healthBriefs":"","healthIssues":["Headache","Fatigue"],"healthScore":8,"time":"4:05 PM"}]`
	if raw != want {
		t.Errorf("stored value =\n%s\nwant\n%s", raw, want)
	}
	if !strings.Contains(out.String(), "Entry saved for 2024-03-15 at 4:05 PM") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLogCmdRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  LogCmd
	}{
		{"mood out of range", LogCmd{Mood: 11, Stress: 5, Anger: 5, Health: 5}},
		{"anger out of range", LogCmd{Mood: 5, Stress: 5, Anger: 0, Health: 5}},
		{"unknown issue", LogCmd{Mood: 5, Stress: 5, Anger: 5, Health: 5, Issue: []string{"Sneezing"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, mem, _ := newTestContext(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Fatal("expected error")
			}
			if _, ok := mem.Raw(journal.Key("2024-03-15")); ok {
				t.Error("nothing should be written on invalid input")
			}
		})
	}
}

func TestLogCmdInteractiveOutlastsStoreTimeout(t *testing.T) {
	ctx, mem, out := newTestContext(t)
	ctx.StoreTimeout = 20 * time.Millisecond

	orig := runEntryForm
	t.Cleanup(func() { runEntryForm = orig })
	runEntryForm = func(f *tracker.Form, selected *[]string) error {
		time.Sleep(4 * ctx.StoreTimeout)
		f.Mood = 9
		*selected = []string{"Eyes"}
		return nil
	}

	cmd := &LogCmd{Interactive: true, Mood: 5, Stress: 5, Anger: 5, Health: 5}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	raw, ok := mem.Raw(journal.Key("2024-03-15"))
	if !ok {
		t.Fatal("expected entry to be saved after a slow form")
	}
	if !strings.Contains(raw, `"mood":9`) || !strings.Contains(raw, `"healthIssues":["Eyes"]`) {
		t.Errorf("stored value = %s", raw)
	}
	if !strings.Contains(out.String(), "Entry saved") {
		t.Errorf("output = %q", out.String())
	}
}

func TestTodayCmd(t *testing.T) {
	ctx, mem, out := newTestContext(t)
	seedDay(t, mem, "2024-03-15", `[{"mood":6,"stress":4,"healthScore":7,"healthIssues":["Eyes"],"time":"9:00 AM"},{"mood":7,"stress":5,"healthScore":8,"healthIssues":[],"time":"1:30 PM"}]`)

	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Today (2024-03-15)", "mood 7  stress 5  health 8  (2 entries)", "issues: Eyes", "1:30 PM"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTodayCmdEmpty(t *testing.T) {
	ctx, _, out := newTestContext(t)
	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "No entries yet") {
		t.Errorf("output = %q", out.String())
	}
}

func TestTodayCmdStorageFailure(t *testing.T) {
	ctx, mem, _ := newTestContext(t)
	mem.FailGet = func(key string) error {
		if key == journal.Key("2024-03-15") {
			return errors.New("disk error")
		}
		return nil
	}
	err := (&TodayCmd{}).Run(ctx)
	if !journal.IsStorageError(err) {
		t.Fatalf("Run() error = %v, want StorageError", err)
	}
}

func TestHistoryCmd(t *testing.T) {
	ctx, mem, out := newTestContext(t)
	seedDay(t, mem, "2024-03-15", `[{"mood":5,"stress":5,"healthScore":5,"healthIssues":[],"time":"9:00 AM"}]`)
	seedDay(t, mem, "2024-03-10", `[{"mood":8,"stress":2,"healthScore":9,"healthIssues":[],"time":"9:00 AM"}]`)
	seedDay(t, mem, "2024-01-01", `[{"mood":1,"stress":1,"healthScore":1,"healthIssues":[],"time":"9:00 AM"}]`)

	if err := (&HistoryCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "History 2024-02-15 to 2024-03-15 (30 days)") {
		t.Errorf("missing header:\n%s", got)
	}
	if strings.Index(got, "2024-03-15  ") > strings.Index(got, "2024-03-10  ") {
		t.Errorf("dates should be newest first:\n%s", got)
	}
	if strings.Contains(got, "2024-01-01") {
		t.Errorf("date outside the window listed:\n%s", got)
	}
	if !strings.Contains(got, "2 days with data, 2 entries") {
		t.Errorf("missing totals:\n%s", got)
	}
}

func TestHistoryCmdDate(t *testing.T) {
	ctx, mem, out := newTestContext(t)
	seedDay(t, mem, "2024-03-10", `[{"mood":8,"stress":2,"healthScore":9,"healthIssues":["Back Pain"],"time":"9:00 AM"}]`)

	if err := (&HistoryCmd{Date: "2024-03-10"}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "issues: Back Pain") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&HistoryCmd{Date: "2024-03-11"}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "No entries for this date.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHistoryCmdDateOutsideWindow(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	if err := (&HistoryCmd{Date: "2024-02-14"}).Run(ctx); err == nil {
		t.Error("expected error for date before the window")
	}
	if err := (&HistoryCmd{Date: "2024-02-14", Days: 31}).Run(ctx); err != nil {
		t.Errorf("Run() with wider window error: %v", err)
	}
	if err := (&HistoryCmd{Date: "2024-03-16"}).Run(ctx); err == nil {
		t.Error("expected error for future date")
	}
	if err := (&HistoryCmd{Date: "15/03/2024"}).Run(ctx); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestHistoryCmdUsesWindowSetting(t *testing.T) {
	ctx, mem, out := newTestContext(t)
	mem.Put(constants.SettingWindowDays, "7")
	if err := (&HistoryCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "History 2024-03-09 to 2024-03-15 (7 days)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHistoryCmdBadWindowSettingUsesDefault(t *testing.T) {
	ctx, mem, out := newTestContext(t)
	mem.Put(constants.SettingWindowDays, "0")
	if err := (&HistoryCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "History 2024-02-15 to 2024-03-15 (30 days)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRenderCalendar(t *testing.T) {
	window := models.HistoryWindow{
		"2024-03-01": {{Mood: 5}},
		"2024-03-15": {{Mood: 5}},
	}
	got := RenderCalendar(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), window)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if strings.TrimSpace(lines[0]) != "March 2024" {
		t.Errorf("title = %q", lines[0])
	}
	// March 1st 2024 is a Friday
	if lines[2] != "                     1*  2" {
		t.Errorf("first week = %q", lines[2])
	}
	if !strings.Contains(got, "15*") {
		t.Errorf("15th should be marked:\n%s", got)
	}
	if strings.Contains(got, "14*") || strings.Contains(got, "16*") {
		t.Errorf("unmarked days carry a marker:\n%s", got)
	}
	if !strings.HasPrefix(lines[len(lines)-1], "31") {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}

func TestCalendarCmd(t *testing.T) {
	ctx, mem, out := newTestContext(t)
	seedDay(t, mem, "2024-03-02", `[]`)

	if err := (&CalendarCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), " 2*") {
		t.Errorf("output = %q", out.String())
	}

	if err := (&CalendarCmd{Month: "March 2024"}).Run(ctx); err == nil {
		t.Error("expected error for malformed month")
	}
}

func TestClearCmd(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		ctx, mem, out := newTestContext(t)
		seedDay(t, mem, "2024-03-14", `[]`)
		seedDay(t, mem, "2024-03-15", `[]`)
		asked := false
		ctx.Confirm = func(title, description string) (bool, error) {
			asked = true
			return true, nil
		}

		if err := (&ClearCmd{}).Run(ctx); err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if !asked {
			t.Error("clear must ask for confirmation")
		}
		if _, ok := mem.Raw(journal.Key("2024-03-15")); ok {
			t.Error("day log not removed")
		}
		if _, ok := mem.Raw(constants.SettingTimezone); !ok {
			t.Error("settings must survive clear")
		}
		if !strings.Contains(out.String(), "Cleared 2 day logs") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("declined", func(t *testing.T) {
		ctx, mem, out := newTestContext(t)
		seedDay(t, mem, "2024-03-15", `[]`)
		ctx.Confirm = func(title, description string) (bool, error) { return false, nil }

		if err := (&ClearCmd{}).Run(ctx); err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if _, ok := mem.Raw(journal.Key("2024-03-15")); !ok {
			t.Error("declined clear removed data")
		}
		if !strings.Contains(out.String(), "Cancelled.") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("yes flag skips prompt", func(t *testing.T) {
		ctx, mem, _ := newTestContext(t)
		seedDay(t, mem, "2024-03-15", `[]`)
		if err := (&ClearCmd{Yes: true}).Run(ctx); err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if _, ok := mem.Raw(journal.Key("2024-03-15")); ok {
			t.Error("day log not removed")
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctx, mem, _ := newTestContext(t)
		seedDay(t, mem, "2024-03-15", `[]`)
		mem.FailRemove = errors.New("locked")

		err := (&ClearCmd{Yes: true}).Run(ctx)
		if !errors.Is(err, ErrClearFailed) {
			t.Fatalf("Run() error = %v, want ErrClearFailed", err)
		}
		if _, ok := mem.Raw(journal.Key("2024-03-15")); !ok {
			t.Error("failed clear must leave data in place")
		}
	})
}
