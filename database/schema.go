package database

import "database/sql"

// CreateSchema creates the local tables if they do not exist and seeds the
// program targets with their launch-plan defaults.
func CreateSchema(db *sql.DB) error {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		region TEXT,
		role TEXT NOT NULL DEFAULT 'field_staff'
	);
	`
	if _, err := db.Exec(createUsersTable); err != nil {
		return err
	}

	createSavedFiltersTable := `
	CREATE TABLE IF NOT EXISTS saved_filters (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		user_id TEXT NOT NULL,
		resource_type TEXT NOT NULL,
		filter_config TEXT NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := db.Exec(createSavedFiltersTable); err != nil {
		return err
	}

	createTargetsTable := `
	CREATE TABLE IF NOT EXISTS program_targets (
		metric TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		target REAL NOT NULL
	);
	`
	if _, err := db.Exec(createTargetsTable); err != nil {
		return err
	}

	return seedTargets(db)
}

// seedTargets inserts the launch-plan targets, leaving any value an
// administrator has already edited untouched.
func seedTargets(db *sql.DB) error {
	defaults := []struct {
		metric string
		label  string
		target float64
	}{
		{"livestockFarmers", "Livestock farmers registered", 5000},
		{"fodderFarmers", "Fodder farmers registered", 1500},
		{"boreholes", "Boreholes commissioned", 40},
		{"animalsVaccinated", "Animals vaccinated", 120000},
		{"farmersTrained", "Farmers trained", 8000},
		{"offtakeValue", "Offtake value (KES)", 25000000},
	}
	for _, d := range defaults {
		_, err := db.Exec(`
			INSERT OR IGNORE INTO program_targets (metric, label, target)
			VALUES (?, ?, ?)
		`, d.metric, d.label, d.target)
		if err != nil {
			return err
		}
	}
	return nil
}
