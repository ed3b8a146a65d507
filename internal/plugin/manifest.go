package plugin

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Manifest is the .claude-plugin/plugin.json descriptor.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Author      any    `json:"author,omitempty"`
}

// LoadManifest reads the plugin manifest under dir. Returns nil without
// error when the file does not exist.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ".claude-plugin", "plugin.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
