package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at    TEXT NOT NULL,
			root        TEXT NOT NULL,
			app_count   INTEGER NOT NULL,
			active_path TEXT,
			version     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS scan_apps (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id         INTEGER NOT NULL REFERENCES scans(id),
			path            TEXT NOT NULL,
			laravel_version TEXT NOT NULL,
			version_kind    TEXT NOT NULL,
			has_sail        BOOLEAN NOT NULL,
			sail_running    BOOLEAN NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_scan_apps_scan ON scan_apps(scan_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_root ON scans(root)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
