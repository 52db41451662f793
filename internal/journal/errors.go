package journal

import (
	"errors"
	"fmt"
)

// StorageError is the single failure kind of the journal: the engine failed
// to read, write or enumerate, or a stored value could not be decoded.
type StorageError struct {
	Op   string // get, append, clear, list
	Date string // empty for namespace-wide operations
	Err  error
}

func (e *StorageError) Error() string {
	if e.Date == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s failed: %v", e.Op, e.Date, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is or wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
