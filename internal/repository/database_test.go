package repository

import (
	"path/filepath"
	"testing"
)

func TestNewDatabaseMigratesToLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "habits.db")
	db, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase error: %v", err)
	}
	defer db.Close()

	if db.SafeMode {
		t.Fatalf("unexpected safe mode: %s", db.MigrationError)
	}
	if db.SchemaVersion != latestSchemaVersion {
		t.Fatalf("schema_version=%d, want %d", db.SchemaVersion, latestSchemaVersion)
	}
	for _, table := range []string{"habits", "checkins", "user_progress", "schema_meta"} {
		if !db.DB.Migrator().HasTable(table) {
			t.Fatalf("table %s not migrated", table)
		}
	}
}

func TestNewDatabaseReopenKeepsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.db")
	first, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase error: %v", err)
	}
	_ = first.Close()

	second, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer second.Close()
	if second.SafeMode || second.SchemaVersion != latestSchemaVersion {
		t.Fatalf("reopen safe=%v version=%d", second.SafeMode, second.SchemaVersion)
	}
}
