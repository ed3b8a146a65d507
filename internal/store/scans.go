package store

import (
	"database/sql"
	"time"
)

// InsertScan records a new scan snapshot and returns its ID.
func (db *DB) InsertScan(root, activePath, version string, appCount int) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO scans (taken_at, root, app_count, active_path, version) VALUES (?, ?, ?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), root, appCount, activePath, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertScanApp records one application under a snapshot.
func (db *DB) InsertScanApp(app *AppRow) error {
	_, err := db.conn.Exec(
		`INSERT INTO scan_apps
		(scan_id, path, laravel_version, version_kind, has_sail, sail_running)
		VALUES (?, ?, ?, ?, ?, ?)`,
		app.ScanID, app.Path, app.LaravelVersion, app.VersionKind,
		app.HasSail, app.SailRunning,
	)
	return err
}

// ListScans returns the most recent snapshots, newest first.
func (db *DB) ListScans(limit int) ([]ScanRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.conn.Query(
		"SELECT id, taken_at, root, app_count, active_path, version FROM scans ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scans []ScanRow
	for rows.Next() {
		var s ScanRow
		var takenAt string
		var activePath sql.NullString
		if err := rows.Scan(&s.ID, &takenAt, &s.Root, &s.AppCount, &activePath, &s.Version); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		s.ActivePath = activePath.String
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// GetScanApps returns all application rows for a snapshot.
func (db *DB) GetScanApps(scanID int64) ([]AppRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, scan_id, path, laravel_version, version_kind, has_sail, sail_running
		 FROM scan_apps WHERE scan_id = ?`,
		scanID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var apps []AppRow
	for rows.Next() {
		var a AppRow
		if err := rows.Scan(&a.ID, &a.ScanID, &a.Path, &a.LaravelVersion,
			&a.VersionKind, &a.HasSail, &a.SailRunning); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
