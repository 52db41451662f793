package entries

import (
	"fmt"
	"time"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/errors"
)

type CalendarCmd struct {
	Month string `help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	s, loc, err := ctx.Settings(storeCtx)
	if err != nil {
		return err
	}
	today := ctx.Today(loc)

	month := today
	if c.Month != "" {
		m, err := time.ParseInLocation(constants.MonthFormat, c.Month, loc)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM): %w", c.Month, err)
		}
		month = m
	}

	window, err := ctx.Loader.LoadWindow(storeCtx, today, s.WindowDays)
	if err != nil {
		return errors.Logged("Failed to load history", err, "days", s.WindowDays)
	}

	ctx.Printf("%s", RenderCalendar(month, window))
	ctx.Printf("\n* entries recorded (last %d days)\n", s.WindowDays)
	return nil
}
