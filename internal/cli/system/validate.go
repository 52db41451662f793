package system

import (
	"fmt"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/errors"
	"github.com/julianstephens/healthlog/internal/utils"
	"github.com/julianstephens/healthlog/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	_, loc, err := ctx.Settings(storeCtx)
	if err != nil {
		return err
	}

	result, err := validation.New(utils.FormatDate(ctx.Today(loc))).ValidateStore(storeCtx, ctx.Store)
	if err != nil {
		return errors.Logged("Failed to scan stored data", err)
	}

	ctx.Println(result.FormatReport())
	if result.HasErrors() {
		return fmt.Errorf("validation found %d problem(s)", len(result.Problems))
	}
	return nil
}
