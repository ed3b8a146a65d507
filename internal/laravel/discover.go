package laravel

import (
	"io/fs"
	"path/filepath"
)

// entrypointFile is the filename whose presence marks a directory as a
// Laravel application root.
const entrypointFile = "artisan"

// DefaultExcludeDirs are directory names pruned from traversal entirely.
// Their contents are never visited, both to avoid false positives inside
// vendored dependencies and to keep the walk fast on large trees.
var DefaultExcludeDirs = []string{
	".git",
	".svn",
	".hg",
	".idea",
	".vscode",
	"vendor",
	"node_modules",
	"storage",
	"bootstrap",
	"cache",
	"build",
	"dist",
}

// Discover walks root looking for application entrypoint files and returns
// the relative directory path of each match, in discovery order. The scan
// root itself is reported as ".". Duplicate directories collapse to a
// single entry. Unreadable subtrees are skipped, never fatal.
func Discover(root string, excludeDirs []string) ([]string, error) {
	if excludeDirs == nil {
		excludeDirs = DefaultExcludeDirs
	}
	excluded := make(map[string]bool, len(excludeDirs))
	for _, name := range excludeDirs {
		excluded[name] = true
	}

	var dirs []string
	seen := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied, broken symlink, etc. Skip the subtree
			// and keep walking elsewhere.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != entrypointFile {
			return nil
		}

		rel, relErr := filepath.Rel(root, filepath.Dir(path))
		if relErr != nil {
			return nil
		}
		if !seen[rel] {
			seen[rel] = true
			dirs = append(dirs, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}
