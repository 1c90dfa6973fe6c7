package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"farmhub/backend/database"
	"farmhub/backend/middleware"
	"farmhub/backend/models"
	"farmhub/backend/services"
	"farmhub/backend/store"

	_ "github.com/mattn/go-sqlite3"
)

// TestUserID is the authenticated user every handler test runs as.
const TestUserID = "test-user-id"

// SetupTestAuth adds authentication context to the request
func SetupTestAuth(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, TestUserID)
	return req.WithContext(ctx)
}

// SetupTestDB points the handlers at an in-memory record store and an
// in-memory sqlite database, with the test user seeded as a chief admin. It
// returns the record store so tests can seed collections directly.
func SetupTestDB() *store.MemoryStore {
	var err error
	database.DB, err = sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	database.DB.SetMaxOpenConns(1)

	if err := database.CreateSchema(database.DB); err != nil {
		panic(err)
	}

	_, err = database.DB.Exec(
		"INSERT INTO users (id, username, name, role) VALUES (?, ?, ?, ?)",
		TestUserID, "testuser@example.org", "Test User", models.RoleChiefAdmin,
	)
	if err != nil {
		panic(err)
	}

	mem := store.NewMemoryStore()
	store.Records = mem
	services.InitAnalytics(mem, time.Minute)
	return mem
}

// CleanupTestDB closes the test database connection
func CleanupTestDB() {
	services.StopAnalytics()
	if database.DB != nil {
		tables := []string{"users", "saved_filters", "program_targets"}
		for _, table := range tables {
			database.DB.Exec("DROP TABLE IF EXISTS " + table)
		}
		database.DB.Close()
	}
	store.Records = nil
}
