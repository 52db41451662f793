package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL);")},
		"002_extra.sql":  {Data: []byte("ALTER TABLE kv_store ADD COLUMN updated_at TEXT NOT NULL DEFAULT '';")},
		"README.md":      {Data: []byte("ignored")},
		"nested/003.sql": {Data: []byte("ignored")},
	}
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	var logs []string
	applied, err := runner.ApplyMigrations(func(msg string) { logs = append(logs, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations() error: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(logs) == 0 {
		t.Error("expected progress messages")
	}

	version, err := runner.GetCurrentVersion()
	if err != nil || version != 2 {
		t.Errorf("GetCurrentVersion() = %d, %v, want 2", version, err)
	}

	if _, err := db.Exec("INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v', 'now')"); err != nil {
		t.Errorf("schema not applied: %v", err)
	}

	// second run is a no-op
	applied, err = runner.ApplyMigrations(nil)
	if err != nil || applied != 0 {
		t.Errorf("second ApplyMigrations() = %d, %v, want 0, nil", applied, err)
	}

	pending, err := runner.PendingCount()
	if err != nil || pending != 0 {
		t.Errorf("PendingCount() = %d, %v, want 0", pending, err)
	}
}

func TestPendingCountFreshDatabase(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS())
	pending, err := runner.PendingCount()
	if err != nil || pending != 2 {
		t.Errorf("PendingCount() = %d, %v, want 2", pending, err)
	}
}

func TestFailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE kv_store (key TEXT PRIMARY KEY);")},
		"002_broken.sql": {Data: []byte("ALTER TABLE missing_table ADD COLUMN x TEXT;")},
	}
	runner := NewRunner(db, fsys)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations() = nil, want error")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	version, _ := runner.GetCurrentVersion()
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestValidateVersionNewerDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations() error: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	err := runner.ValidateVersion()
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("ValidateVersion() error = %v, want newer than supported", err)
	}
}

func TestReadMigrationFilesErrors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{"bad name", fstest.MapFS{"init.sql": {Data: []byte("")}}, "invalid migration filename"},
		{"bad version", fstest.MapFS{"abc_init.sql": {Data: []byte("")}}, "invalid version number"},
		{"zero version", fstest.MapFS{"000_init.sql": {Data: []byte("")}}, "at least 1"},
		{"duplicate", fstest.MapFS{"001_a.sql": {Data: []byte("")}, "01_b.sql": {Data: []byte("")}}, "duplicate migration version 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(nil, tt.fsys).ReadMigrationFiles()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ReadMigrationFiles() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
