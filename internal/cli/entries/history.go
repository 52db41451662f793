package entries

import (
	"fmt"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/errors"
	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/utils"
)

type HistoryCmd struct {
	Date string `help:"Show the entries for this date (YYYY-MM-DD)."`
	Days int    `help:"Window size in days. Defaults to the window-days setting."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	s, loc, err := ctx.Settings(storeCtx)
	if err != nil {
		return err
	}
	days := s.WindowDays
	if c.Days != 0 {
		days = c.Days
	}

	today := ctx.Today(loc)
	oldest, newest := utils.WindowBounds(today, days)
	if c.Date != "" {
		if err := utils.ValidateDate(c.Date); err != nil {
			return err
		}
		if c.Date < oldest || c.Date > newest {
			return fmt.Errorf("date %s is outside the %d-day window (%s to %s)", c.Date, days, oldest, newest)
		}
	}

	window, err := ctx.Loader.LoadWindow(storeCtx, today, days)
	if err != nil {
		return errors.Logged("Failed to load history", err, "days", days)
	}

	if c.Date != "" {
		log := window.Get(c.Date)
		ctx.Printf("%s\n\n", c.Date)
		if len(log) == 0 {
			ctx.Println("No entries for this date.")
			return nil
		}
		ctx.Printf("Averages: %s  (%d entries)\n\n", FormatAverages(journal.Averages(log)), len(log))
		for _, e := range log {
			ctx.Printf("%s", FormatEntry(e))
		}
		return nil
	}

	ctx.Printf("History %s to %s (%d days)\n\n", oldest, newest, days)
	dates := window.Dates()
	if len(dates) == 0 {
		ctx.Println("No entries in this window.")
		return nil
	}
	for _, date := range dates {
		log := window.Get(date)
		ctx.Printf("%s  %2d entries  %s\n", date, len(log), FormatAverages(journal.Averages(log)))
	}
	ctx.Printf("\n%d days with data, %d entries\n", len(dates), window.EntryCount())
	return nil
}
