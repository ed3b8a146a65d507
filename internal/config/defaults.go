// Package config provides configuration loading and defaults for larascan.
package config

import (
	"time"

	"github.com/oakwell-systems/larascan/internal/laravel"
)

// DefaultConfigDir is the default location for larascan configuration.
const DefaultConfigDir = "~/.config/larascan"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "larascan.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultProbeTimeout bounds the container status subprocess.
const DefaultProbeTimeout = 2 * time.Second

// DefaultExcludeDirs are the directory names pruned during discovery.
var DefaultExcludeDirs = laravel.DefaultExcludeDirs

// DefaultSailPaths are the Sail script locations checked per application.
var DefaultSailPaths = laravel.DefaultSailPaths

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
