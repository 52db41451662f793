// Package journal persists day logs in the health_ key namespace and derives
// averages and trailing history windows from them.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/utils"
)

// Key returns the storage key for a yyyy-MM-dd date.
func Key(date string) string {
	return constants.HealthKeyPrefix + date
}

// DateFromKey strips the namespace prefix. ok is false for keys outside it.
func DateFromKey(key string) (date string, ok bool) {
	if !strings.HasPrefix(key, constants.HealthKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, constants.HealthKeyPrefix), true
}

// Store reads and writes whole day logs. Append is a read-modify-write of
// one key and is not safe against a second writer on the same date.
type Store struct {
	provider storage.Provider
}

func NewStore(provider storage.Provider) *Store {
	return &Store{provider: provider}
}

// Provider returns the underlying engine.
func (s *Store) Provider() storage.Provider {
	return s.provider
}

// Get returns the day log stored for date. ok is false when nothing is
// stored; an empty log is never synthesized.
func (s *Store) Get(ctx context.Context, date string) (models.DayLog, bool, error) {
	log, ok, err := s.read(ctx, date)
	if err != nil {
		return nil, false, &StorageError{Op: "get", Date: date, Err: err}
	}
	return log, ok, nil
}

func (s *Store) read(ctx context.Context, date string) (models.DayLog, bool, error) {
	raw, ok, err := s.provider.Get(ctx, Key(date))
	if err != nil || !ok {
		return nil, false, err
	}
	log, err := Decode(raw)
	if err != nil || log == nil {
		return nil, false, err
	}
	return log, true, nil
}

// Append adds entry to the end of date's log and writes the whole log back
// with a single set.
func (s *Store) Append(ctx context.Context, date string, entry models.Entry) error {
	if err := utils.ValidateDate(date); err != nil {
		return err
	}

	log, _, err := s.read(ctx, date)
	if err != nil {
		return &StorageError{Op: "append", Date: date, Err: err}
	}

	next := make(models.DayLog, 0, len(log)+1)
	next = append(next, log...)
	next = append(next, entry)

	raw, err := json.Marshal(next)
	if err != nil {
		return &StorageError{Op: "append", Date: date, Err: err}
	}
	if err := s.provider.Set(ctx, Key(date), string(raw)); err != nil {
		return &StorageError{Op: "append", Date: date, Err: err}
	}
	return nil
}

// Dates lists every date in the namespace, oldest first, including keys
// whose suffix is not a valid date.
func (s *Store) Dates(ctx context.Context) ([]string, error) {
	keys, err := s.provider.Keys(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	dates := []string{}
	for _, key := range keys {
		if date, ok := DateFromKey(key); ok {
			dates = append(dates, date)
		}
	}
	return dates, nil
}

// ClearAll removes every key in the health namespace with one bulk remove
// and returns how many day logs were deleted. Other keys are untouched.
func (s *Store) ClearAll(ctx context.Context) (int, error) {
	keys, err := s.provider.Keys(ctx)
	if err != nil {
		return 0, &StorageError{Op: "clear", Err: err}
	}

	var doomed []string
	for _, key := range keys {
		if _, ok := DateFromKey(key); ok {
			doomed = append(doomed, key)
		}
	}
	if len(doomed) == 0 {
		return 0, nil
	}

	if err := s.provider.MultiRemove(ctx, doomed); err != nil {
		return 0, &StorageError{Op: "clear", Err: err}
	}
	return len(doomed), nil
}

// Decode parses a stored value. A JSON null decodes to a nil log, which
// readers treat as no data for the date; an empty array stays non-nil.
func Decode(raw string) (models.DayLog, error) {
	var log models.DayLog
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, fmt.Errorf("malformed day log: %w", err)
	}
	return log, nil
}
