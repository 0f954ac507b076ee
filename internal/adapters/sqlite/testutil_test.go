// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB, which loads the authoritative
// schema from internal/db. Do not hardcode CREATE TABLE statements here;
// schema drift between tests and production must surface immediately.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/pointage/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedEmployee inserts a test employee and returns its id.
func seedEmployee(t *testing.T, database *sql.DB, id int, surname, contract string, rate float64) int {
	t.Helper()
	if surname == "" {
		surname = "Dupont"
	}
	if contract == "" {
		contract = "CDI"
	}
	_, err := database.Exec(
		"INSERT INTO employees (id, surname, given_name, phone, email, hire_date, contract, hourly_rate) VALUES (?, ?, 'Marie', '0612345678', 'marie@example.com', '15/01/2023', ?, ?)",
		id, surname, contract, rate,
	)
	if err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	return id
}

// seedProject inserts a test project and returns its id.
func seedProject(t *testing.T, database *sql.DB, id int, name string) int {
	t.Helper()
	if name == "" {
		name = "Site Web Corporate"
	}
	_, err := database.Exec(
		"INSERT INTO projects (id, name, code, hour_budget) VALUES (?, ?, 'WEB01', 500)",
		id, name,
	)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return id
}
