package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/storage/postgres"
)

type InitCmd struct {
	Force bool `help:"Delete the existing local data file before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force {
		if _, ok := ctx.Store.(*postgres.Store); ok {
			return errors.New("--force is not supported for PostgreSQL storage; drop the healthlog schema manually")
		}
		if _, err := os.Stat(path); err == nil {
			// Close first so the file is not held open while it is removed
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			ctx.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		if errors.Is(err, storage.ErrAlreadyInitialized) {
			ctx.Printf("Storage already initialized at: %s\n", path)
			return nil
		}
		return err
	}
	ctx.Printf("Initialized healthlog storage at: %s\n", path)
	return nil
}
