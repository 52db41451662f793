package entries

import (
	stderrors "errors"
	"fmt"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/errors"
)

// ErrClearFailed is shown to the user when clearing the journal fails.
var ErrClearFailed = stderrors.New("Failed to clear data. Please try again.")

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm(
			"Clear all health data?",
			"Every recorded entry will be permanently deleted. Settings are kept.",
		)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}

	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	n, err := ctx.Journal.ClearAll(storeCtx)
	if err != nil {
		errors.Logged("Failed to clear health data", err)
		return ErrClearFailed
	}

	ctx.Printf("✓ Cleared %d day logs\n", n)
	return nil
}
