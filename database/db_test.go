package database

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestMain(m *testing.M) {
	// Directly create an in-memory database for tests
	var err error
	DB, err = sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	DB.SetMaxOpenConns(1)

	if err := CreateSchema(DB); err != nil {
		panic(err)
	}

	code := m.Run()

	DB.Close()
	os.Exit(code)
}

func TestSchemaTablesExist(t *testing.T) {
	for _, table := range []string{"users", "saved_filters", "program_targets"} {
		var name string
		err := DB.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %s to exist: %v", table, err)
		}
	}
}

func TestSeededTargets(t *testing.T) {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM program_targets").Scan(&count); err != nil {
		t.Fatalf("failed to count targets: %v", err)
	}
	if count != 6 {
		t.Errorf("expected 6 seeded targets, got %d", count)
	}

	var target float64
	err := DB.QueryRow("SELECT target FROM program_targets WHERE metric = 'boreholes'").Scan(&target)
	if err != nil {
		t.Fatalf("failed to read boreholes target: %v", err)
	}
	if target != 40 {
		t.Errorf("expected boreholes target 40, got %v", target)
	}
}

func TestSeedTargetsPreservesEdits(t *testing.T) {
	if _, err := DB.Exec("UPDATE program_targets SET target = 75 WHERE metric = 'boreholes'"); err != nil {
		t.Fatalf("failed to edit target: %v", err)
	}

	// Re-running the schema setup must not reset an edited value.
	if err := CreateSchema(DB); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	var target float64
	err := DB.QueryRow("SELECT target FROM program_targets WHERE metric = 'boreholes'").Scan(&target)
	if err != nil {
		t.Fatalf("failed to read boreholes target: %v", err)
	}
	if target != 75 {
		t.Errorf("expected edited target 75 to survive, got %v", target)
	}
}

func TestUserDefaultRole(t *testing.T) {
	if _, err := DB.Exec("INSERT INTO users (id, username, name) VALUES ('u-1', 'u1@example.org', 'User One')"); err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
	defer DB.Exec("DELETE FROM users WHERE id = 'u-1'")

	var role string
	if err := DB.QueryRow("SELECT role FROM users WHERE id = 'u-1'").Scan(&role); err != nil {
		t.Fatalf("failed to read role: %v", err)
	}
	if role != "field_staff" {
		t.Errorf("expected default role field_staff, got %q", role)
	}
}
