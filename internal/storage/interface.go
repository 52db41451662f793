package storage

import (
	"context"
	"errors"
)

// ErrNotLoaded is returned by engines used before Init or Load.
var ErrNotLoaded = errors.New("storage not loaded")

// ErrAlreadyInitialized is returned by engines whose Init refuses to touch
// existing data.
var ErrAlreadyInitialized = errors.New("storage already initialized")

// Provider is a flat string key-value engine. Per-key Get and Set are atomic;
// nothing else is.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set creates or replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
	// MultiRemove deletes all keys in one operation. Missing keys are ignored.
	MultiRemove(ctx context.Context, keys []string) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by engines with a versioned SQL schema.
type Migrator interface {
	SchemaVersion() (current, latest int, err error)
	Migrate(logFn func(string)) (int, error)
}
