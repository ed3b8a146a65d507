// Package laravel discovers Laravel applications in a directory tree and
// classifies their environment: framework version, Sail availability, and
// container state.
package laravel

// App represents one discovered Laravel application root.
type App struct {
	// Path is the directory path relative to the scan root. "." denotes
	// the scan root itself.
	Path string `json:"path"`

	// Version is the resolved framework version for this application.
	Version Version `json:"laravel_version"`

	// HasSail indicates whether a Sail runner script was found.
	HasSail bool `json:"has_sail"`

	// SailRunning indicates whether Sail containers are up. Only
	// meaningful when HasSail is true.
	SailRunning bool `json:"sail_running"`
}

// Scan is the aggregate result of one scan invocation. It is built fresh
// on every run; nothing persists between invocations.
type Scan struct {
	// Root is the absolute path of the scanned tree.
	Root string `json:"root"`

	// Apps holds every discovered application in discovery order.
	Apps []App `json:"apps"`

	// Active points at the application the caller's working directory
	// belongs to, or nil when the caller is outside every root and more
	// than one root exists.
	Active *App `json:"active,omitempty"`
}
