// Package storagetest holds the behavior every storage.Provider must share.
package storagetest

import (
	"context"
	"reflect"
	"testing"

	"github.com/julianstephens/healthlog/internal/storage"
)

// RunProviderTests exercises get/set/keys/multiRemove semantics against a
// freshly initialized provider returned by open.
func RunProviderTests(t *testing.T, open func(t *testing.T) storage.Provider) {
	t.Helper()
	ctx := context.Background()

	t.Run("get absent key", func(t *testing.T) {
		p := open(t)
		value, ok, err := p.Get(ctx, "health_2024-03-15")
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if ok || value != "" {
			t.Errorf("Get() = %q, %v, want absent", value, ok)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		p := open(t)
		if err := p.Set(ctx, "health_2024-03-15", `[{"mood":7}]`); err != nil {
			t.Fatalf("Set() error: %v", err)
		}
		value, ok, err := p.Get(ctx, "health_2024-03-15")
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if !ok || value != `[{"mood":7}]` {
			t.Errorf("Get() = %q, %v", value, ok)
		}
	})

	t.Run("set replaces", func(t *testing.T) {
		p := open(t)
		for _, v := range []string{"[1]", "[1,2]"} {
			if err := p.Set(ctx, "k", v); err != nil {
				t.Fatalf("Set(%s) error: %v", v, err)
			}
		}
		value, _, err := p.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if value != "[1,2]" {
			t.Errorf("Get() = %q, want [1,2]", value)
		}
	})

	t.Run("keys sorted", func(t *testing.T) {
		p := open(t)
		for _, k := range []string{"settings_timezone", "health_2024-03-15", "health_2024-03-01"} {
			if err := p.Set(ctx, k, "x"); err != nil {
				t.Fatalf("Set(%s) error: %v", k, err)
			}
		}
		keys, err := p.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys() error: %v", err)
		}
		want := []string{"health_2024-03-01", "health_2024-03-15", "settings_timezone"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("Keys() = %v, want %v", keys, want)
		}
	})

	t.Run("multi remove", func(t *testing.T) {
		p := open(t)
		for _, k := range []string{"a", "b", "c"} {
			if err := p.Set(ctx, k, "x"); err != nil {
				t.Fatalf("Set(%s) error: %v", k, err)
			}
		}
		if err := p.MultiRemove(ctx, []string{"a", "c", "missing"}); err != nil {
			t.Fatalf("MultiRemove() error: %v", err)
		}
		keys, err := p.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys() error: %v", err)
		}
		if !reflect.DeepEqual(keys, []string{"b"}) {
			t.Errorf("Keys() after MultiRemove = %v, want [b]", keys)
		}
	})

	t.Run("multi remove empty", func(t *testing.T) {
		p := open(t)
		if err := p.MultiRemove(ctx, nil); err != nil {
			t.Errorf("MultiRemove(nil) error: %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		p := open(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if err := p.Set(canceled, "k", "v"); err == nil {
			t.Error("Set() with canceled context = nil, want error")
		}
	})
}
