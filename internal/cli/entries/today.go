package entries

import (
	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/errors"
	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	_, loc, err := ctx.Settings(storeCtx)
	if err != nil {
		return err
	}
	date := utils.FormatDate(ctx.Today(loc))

	log, err := ctx.Loader.LoadDay(storeCtx, date)
	if err != nil {
		return errors.Logged("Failed to load today's entries", err, "date", date)
	}

	ctx.Printf("Today (%s)\n\n", date)
	if len(log) == 0 {
		ctx.Println("No entries yet. Add one with 'healthlog log'.")
		return nil
	}

	ctx.Printf("Averages: %s  (%d entries)\n\n", FormatAverages(journal.Averages(log)), len(log))
	for _, e := range log {
		ctx.Printf("%s", FormatEntry(e))
	}
	return nil
}
