// Package store persists scan snapshots so operators can compare Laravel
// environment state over time. The SessionStart hook never touches the
// store; every hook invocation scans fresh.
package store

import "time"

// ScanRow is one persisted scan snapshot.
type ScanRow struct {
	ID         int64     `json:"id"`
	TakenAt    time.Time `json:"taken_at"`
	Root       string    `json:"root"`
	AppCount   int       `json:"app_count"`
	ActivePath string    `json:"active_path,omitempty"`
	Version    string    `json:"version"`
}

// AppRow is one application as recorded in a snapshot.
type AppRow struct {
	ID             int64  `json:"id"`
	ScanID         int64  `json:"scan_id"`
	Path           string `json:"path"`
	LaravelVersion string `json:"laravel_version"`
	VersionKind    string `json:"version_kind"`
	HasSail        bool   `json:"has_sail"`
	SailRunning    bool   `json:"sail_running"`
}
