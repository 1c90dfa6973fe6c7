package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// InitDB opens the local sqlite database that holds the session-side state
// (users/roles, saved filters, program targets). Record collections live in
// Firestore, not here.
func InitDB() error {
	var dbPath string
	if os.Getenv("FLY_APP_NAME") != "" {
		// Running on Fly.io, use the mounted volume
		dbPath = filepath.Join("/data", "farmhub.db")
	} else if os.Getenv("TEST_DB") == "1" {
		// Shared cache so every pooled connection sees the same in-memory
		// database.
		dbPath = "file::memory:?cache=shared"
	} else {
		dbPath = "./farmhub.db"
	}

	var err error
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	dsn := dbPath + sep + "_journal=WAL&_timeout=10000&_busy_timeout=10000"
	DB, err = sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(5)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(time.Minute * 5)

	if _, err = DB.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	if _, err = DB.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	return CreateSchema(DB)
}

// Close releases the sqlite handle.
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}
