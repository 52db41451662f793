package journal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/utils"
)

// Loader reads trailing windows of day logs.
type Loader struct {
	store *Store
	limit int
}

func NewLoader(store *Store) *Loader {
	return &Loader{store: store, limit: constants.HistoryReadLimit}
}

// WithLimit sets the number of concurrent reads; values below 1 mean one.
func (l *Loader) WithLimit(n int) *Loader {
	if n < 1 {
		n = 1
	}
	l.limit = n
	return l
}

// LoadWindow reads anchor and the days-1 calendar days before it. Dates with
// nothing stored are absent from the result. Any failed read fails the whole
// window so callers can keep their previous snapshot.
func (l *Loader) LoadWindow(ctx context.Context, anchor time.Time, days int) (models.HistoryWindow, error) {
	if days < 1 {
		return nil, fmt.Errorf("window must cover at least 1 day, got %d", days)
	}

	dates := make([]string, days)
	for i := range dates {
		dates[i] = utils.FormatDate(utils.SubtractDays(anchor, i))
	}

	// one slot per offset; no goroutine touches another's slot
	logs := make([]models.DayLog, days)
	found := make([]bool, days)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)
	for i, date := range dates {
		g.Go(func() error {
			log, ok, err := l.store.Get(gctx, date)
			if err != nil {
				return err
			}
			logs[i], found[i] = log, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	window := make(models.HistoryWindow)
	for i, date := range dates {
		if found[i] {
			window[date] = logs[i]
		}
	}
	return window, nil
}

// LoadDay returns the log for a single date, or an empty log when nothing
// is stored.
func (l *Loader) LoadDay(ctx context.Context, date string) (models.DayLog, error) {
	log, ok, err := l.store.Get(ctx, date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.DayLog{}, nil
	}
	return log, nil
}
