package entries

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/errors"
	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/tracker"
	"github.com/julianstephens/healthlog/internal/utils"
)

type LogCmd struct {
	Interactive   bool     `short:"i" help:"Fill in the entry with an interactive form."`
	Mood          int      `help:"Mood from 1 to 10." default:"5"`
	Stress        int      `help:"Stress from 1 to 10." default:"5"`
	Anger         int      `help:"Anger from 1 to 10. Collected but not saved." default:"5"`
	Health        int      `help:"Health score from 1 to 10." default:"5"`
	StressReasons string   `help:"What is causing stress."`
	Fever         string   `help:"Body temperature note."`
	Briefs        string   `help:"Short notes about your health."`
	Issue         []string `help:"Health issue (repeatable): Respiratory Issues, Headache, Stomachache, Back Pain, Vomits, Fatigue, Eyes, Pcod, Anxiety." sep:"none"`
}

// runEntryForm blocks on the interactive form and is replaced in tests.
var runEntryForm = func(f *tracker.Form, selected *[]string) error {
	return NewEntryForm(f, selected).Run()
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	loc, err := c.location(ctx)
	if err != nil {
		return err
	}

	form := tracker.New(ctx.Journal, loc).WithClock(ctx.Now)
	form.Mood = c.Mood
	form.Stress = c.Stress
	form.Anger = c.Anger
	form.HealthScore = c.Health
	form.StressReasons = c.StressReasons
	form.Fever = c.Fever
	form.HealthBriefs = c.Briefs
	if err := form.SetIssues(c.Issue); err != nil {
		return err
	}

	if c.Interactive {
		selected := form.Issues()
		if err := runEntryForm(form, &selected); err != nil {
			return fmt.Errorf("entry form cancelled: %w", err)
		}
		if err := form.SetIssues(selected); err != nil {
			return err
		}
	}

	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	date := utils.FormatDate(ctx.Today(loc))
	entry, err := form.Submit(storeCtx)
	if err != nil {
		if journal.IsStorageError(err) {
			return errors.Logged("Failed to save entry", err, "date", date)
		}
		return err
	}

	ctx.Printf("✓ Entry saved for %s at %s\n", date, entry.Time)
	return nil
}

func (c *LogCmd) location(ctx *cli.Context) (*time.Location, error) {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	_, loc, err := ctx.Settings(storeCtx)
	return loc, err
}

// NewEntryForm builds the huh form editing f in place. Issue selection is
// written to selected and applied by the caller with SetIssues.
func NewEntryForm(f *tracker.Form, selected *[]string) *huh.Form {
	issueOptions := make([]huh.Option[string], len(constants.HealthIssues))
	for i, issue := range constants.HealthIssues {
		issueOptions[i] = huh.NewOption(issue, issue)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title("Mood").Options(scaleOptions()...).Value(&f.Mood),
			huh.NewSelect[int]().Title("Stress").Options(scaleOptions()...).Value(&f.Stress),
			huh.NewSelect[int]().Title("Anger").Description("Not saved with the entry.").Options(scaleOptions()...).Value(&f.Anger),
			huh.NewSelect[int]().Title("Health score").Options(scaleOptions()...).Value(&f.HealthScore),
		),
		huh.NewGroup(
			huh.NewInput().Title("Stress reasons").CharLimit(constants.MaxNoteLength).Value(&f.StressReasons),
			huh.NewInput().Title("Fever").Placeholder("e.g. 37.8").CharLimit(constants.MaxFeverLength).Value(&f.Fever),
			huh.NewText().Title("Health briefs").CharLimit(constants.MaxNoteLength).Value(&f.HealthBriefs),
			huh.NewMultiSelect[string]().Title("Health issues").Options(issueOptions...).Value(selected),
		),
	)
}

func scaleOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, constants.MaxScale-constants.MinScale+1)
	for v := constants.MinScale; v <= constants.MaxScale; v++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(v), v))
	}
	return opts
}
