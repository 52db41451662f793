package settings

import (
	"fmt"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/settings"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WindowDays *int    `help:"Number of days shown in history and the calendar."`
	Timezone   *string `help:"IANA timezone used to date entries, or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	s, err := settings.Load(storeCtx, ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Window Days: %d\n", s.WindowDays)
		ctx.Printf("  Timezone:    %s\n", s.Timezone)
		ctx.Printf("  Storage:     %s\n", ctx.Store.GetConfigPath())
		return nil
	}

	updated := false
	if c.WindowDays != nil {
		s.WindowDays = *c.WindowDays
		updated = true
	}
	if c.Timezone != nil {
		s.Timezone = *c.Timezone
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settings.Save(storeCtx, ctx.Store, s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}
