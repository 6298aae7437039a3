package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmarquezl/aurora-rrhh/internal/domain"
	"github.com/dmarquezl/aurora-rrhh/internal/repository/sqlite"
)

// Verify that *sqlite.DB implements domain.Database at compile time.
var _ domain.Database = (*sqlite.DB)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	// Verify the file was created.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	// Verify foreign keys are enabled.
	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestMigrate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Verify the users table exists by inserting a row.
	_, err := db.SqlDB.ExecContext(ctx,
		"INSERT INTO users (email, nombre, apellido, password_hash) VALUES (?, ?, ?, ?)",
		"test@example.com", "Test", "User", "hash123",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}

	// Verify the empleados table exists.
	var count int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM empleados").Scan(&count); err != nil {
		t.Fatalf("count empleados: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty empleados table, got %d rows", count)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)

	// A second run must be a no-op, not an error.
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}
