package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/storage/storagetest"
)

func setupTestJSONStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "healthlog.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init JSON store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestJSONStoreProvider(t *testing.T) {
	storagetest.RunProviderTests(t, func(t *testing.T) storage.Provider {
		return setupTestJSONStore(t)
	})
}

func TestJSONStorePersistsAcrossLoad(t *testing.T) {
	ctx := context.Background()
	store := setupTestJSONStore(t)

	if err := store.Set(ctx, "health_2024-03-15", `[]`); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	reopened := storage.NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	value, ok, err := reopened.Get(ctx, "health_2024-03-15")
	if err != nil || !ok || value != "[]" {
		t.Errorf("Get() after reload = %q, %v, %v", value, ok, err)
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	store := setupTestJSONStore(t)
	again := storage.NewJSONStore(store.GetConfigPath())
	if err := again.Init(); err == nil || !strings.Contains(err.Error(), "already initialized") {
		t.Errorf("second Init() error = %v, want already initialized", err)
	}
}

func TestJSONStoreLoadMissing(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil || !strings.Contains(err.Error(), "healthlog init") {
		t.Errorf("Load() error = %v, want hint to run init", err)
	}
}

func TestJSONStoreNotLoaded(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "x.json"))
	if _, _, err := store.Get(context.Background(), "k"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Get() before Load error = %v, want ErrNotLoaded", err)
	}
}

func TestJSONStoreFailedWriteKeepsState(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	ctx := context.Background()
	store := setupTestJSONStore(t)
	if err := store.Set(ctx, "health_2024-03-15", "[1]"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	dir := filepath.Dir(store.GetConfigPath())
	if err := os.Chmod(dir, 0500); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(dir, 0700)

	if err := store.Set(ctx, "health_2024-03-15", "[1,2]"); err == nil {
		t.Fatal("Set() into read-only directory = nil, want error")
	}
	value, _, err := store.Get(ctx, "health_2024-03-15")
	if err != nil || value != "[1]" {
		t.Errorf("Get() after failed Set = %q, %v, want previous value", value, err)
	}
}
