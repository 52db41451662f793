package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/cli/entries"
	"github.com/julianstephens/healthlog/internal/cli/settings"
	"github.com/julianstephens/healthlog/internal/cli/system"
	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/errors"
	"github.com/julianstephens/healthlog/internal/lock"
	"github.com/julianstephens/healthlog/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path (.db for SQLite, .json for a JSON file), a PostgreSQL connection string, or 'keyring'. PostgreSQL passwords must NOT be embedded here; use the OS keyring, HEALTHLOG_DB_CONNECTION or .pgpass instead." type:"string" default:"~/.config/healthlog/healthlog.db" env:"HEALTHLOG_CONFIG"`
	Debug   bool   `help:"Also write logs to stderr." env:"HEALTHLOG_DEBUG"`

	Init     system.InitCmd       `cmd:"" help:"Initialize healthlog storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd   `cmd:"" help:"Check stored entries for problems."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log      entries.LogCmd       `cmd:"" help:"Record a new entry for today."`
	Today    entries.TodayCmd     `cmd:"" help:"Show today's entries and averages."`
	History  entries.HistoryCmd   `cmd:"" help:"Show the days with entries in the history window."`
	Calendar entries.CalendarCmd  `cmd:"" help:"Show a month calendar marking days with entries."`
	Clear    entries.ClearCmd     `cmd:"" help:"Delete all recorded entries."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// writers change stored data and hold the lockfile while they run.
var writers = map[string]bool{
	"init":     true,
	"migrate":  true,
	"tui":      true,
	"log":      true,
	"clear":    true,
	"settings": true,
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal mood and health journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	errors.Fatal(run(ctx))
}

// run executes the selected command so deferred cleanup happens before any
// exit.
func run(ctx *kong.Context) error {
	command := strings.Fields(ctx.Command())[0]

	// Keyring commands manage the credentials and never open storage
	if command == "keyring" {
		return ctx.Run(cli.NewContext(nil))
	}

	store, dir, err := openStore(CLI.Config)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: dir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Starting", "version", constants.Version, "command", ctx.Command(), "storage", store.GetConfigPath())

	if writers[command] {
		l, err := lock.Acquire(dir)
		if err != nil {
			return err
		}
		defer func() {
			if err := l.Release(); err != nil {
				logger.Warn("Failed to release lock", "error", err)
			}
		}()
	}

	// Init creates the store and doctor reports load failures itself
	if command != "init" && command != "doctor" {
		if err := store.Load(); err != nil {
			return err
		}
	}
	defer store.Close()

	return ctx.Run(cli.NewContext(store))
}
