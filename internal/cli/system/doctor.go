package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/healthlog/internal/cli"
	"github.com/julianstephens/healthlog/internal/logger"
	"github.com/julianstephens/healthlog/internal/settings"
	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/utils"
	"github.com/julianstephens/healthlog/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsStore checks are skipped when storage is unreachable
	needsStore bool
	run        func(ctx *cli.Context) (warning string, err error)
}

var checks = []check{
	{name: "Schema version", needsStore: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsStore: true, run: checkMigrationsComplete},
	{name: "Settings", needsStore: true, run: checkSettings},
	{name: "Data validation", needsStore: true, run: checkValidation},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true

	if err := checkStorageReachable(ctx); err != nil {
		ctx.Printf("❌ Storage reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		reachable = false
	} else {
		ctx.Printf("✓ Storage reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		warning, err := c.run(ctx)
		switch {
		case err != nil:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		case warning != "":
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %s\n", warning)
		default:
			ctx.Printf("✓ %s: OK\n", c.name)
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		if path := logger.Path(); path != "" {
			ctx.Printf("Details are logged to %s\n", path)
		}
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()
	if _, err := ctx.Store.Keys(storeCtx); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) (string, error) {
	migrator, ok := ctx.Store.(storage.Migrator)
	if !ok {
		// The JSON engine has no schema
		return "", nil
	}
	current, latest, err := migrator.SchemaVersion()
	if err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return "", fmt.Errorf("database schema version (%d) is newer than supported (%d); please upgrade healthlog", current, latest)
	}
	if current < 1 {
		return "", fmt.Errorf("database schema version is %d, run 'healthlog init'", current)
	}
	return "", nil
}

func checkMigrationsComplete(ctx *cli.Context) (string, error) {
	migrator, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return "", nil
	}
	current, latest, err := migrator.SchemaVersion()
	if err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	if pending := latest - current; pending > 0 {
		return "", fmt.Errorf("%d pending migration(s), run 'healthlog migrate'", pending)
	}
	return "", nil
}

func checkSettings(ctx *cli.Context) (string, error) {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()
	return "", settings.Check(storeCtx, ctx.Store)
}

func checkValidation(ctx *cli.Context) (string, error) {
	storeCtx, cancel := ctx.StoreContext()
	defer cancel()

	_, loc, err := ctx.Settings(storeCtx)
	if err != nil {
		return "", err
	}
	result, err := validation.New(utils.FormatDate(ctx.Today(loc))).ValidateStore(storeCtx, ctx.Store)
	if err != nil {
		return "", err
	}
	if result.HasErrors() {
		return "", fmt.Errorf("%d problem(s) found, run 'healthlog validate' for details", len(result.Problems))
	}
	if result.HasProblems() {
		return fmt.Sprintf("%d warning(s), run 'healthlog validate' for details", len(result.Problems)), nil
	}
	return "", nil
}

func checkClockTimezone(ctx *cli.Context) (string, error) {
	now := ctx.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return "", fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return "", nil
}
