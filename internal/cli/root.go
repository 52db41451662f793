package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/journal"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/settings"
	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/utils"
)

// ConfirmFunc asks a yes/no question and reports the answer.
type ConfirmFunc func(title, description string) (bool, error)

type Context struct {
	Store   storage.Provider
	Journal *journal.Store
	Loader  *journal.Loader
	Out     io.Writer
	Now     func() time.Time
	Confirm ConfirmFunc

	// StoreTimeout bounds each StoreContext. Zero means the default.
	StoreTimeout time.Duration
}

// NewContext wires the journal over store with terminal defaults.
func NewContext(store storage.Provider) *Context {
	j := journal.NewStore(store)
	return &Context{
		Store:   store,
		Journal: j,
		Loader:  journal.NewLoader(j),
		Out:     os.Stdout,
		Now:     time.Now,
		Confirm: HuhConfirm,

		StoreTimeout: constants.DefaultStoreTimeout,
	}
}

// StoreContext bounds a single command's storage work. Open it after any
// prompt so time spent waiting on the user does not count against it.
func (c *Context) StoreContext() (context.Context, context.CancelFunc) {
	timeout := c.StoreTimeout
	if timeout <= 0 {
		timeout = constants.DefaultStoreTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// Settings loads the user settings and the location they name.
func (c *Context) Settings(ctx context.Context) (models.Settings, *time.Location, error) {
	s, err := settings.Load(ctx, c.Store)
	if err != nil {
		return s, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	loc, err := utils.LoadLocation(s.Timezone)
	if err != nil {
		return s, nil, fmt.Errorf("invalid timezone %q in settings: %w", s.Timezone, err)
	}
	return s, loc, nil
}

// Today returns the current instant in loc.
func (c *Context) Today(loc *time.Location) time.Time {
	return c.Now().In(loc)
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// HuhConfirm shows a blocking confirmation prompt.
func HuhConfirm(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
