package laravel

import "path/filepath"

// SelectActive picks the application the caller's working directory
// belongs to. It walks upward from cwd (inclusive) looking for an exact
// match with a discovered root. When the walk reaches the filesystem root
// without a match, a sole candidate wins by default; with two or more
// candidates the ambiguity is left unresolved and nil is returned.
func SelectActive(apps []App, root, cwd string) *App {
	if len(apps) == 0 {
		return nil
	}

	absRoot := normalizePath(root)
	byPath := make(map[string]int, len(apps))
	for i, app := range apps {
		byPath[filepath.Clean(filepath.Join(absRoot, app.Path))] = i
	}

	dir := normalizePath(cwd)
	for {
		if i, ok := byPath[dir]; ok {
			return &apps[i]
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Single-application repositories are always "active" regardless of
	// where inside them the session starts.
	if len(apps) == 1 {
		return &apps[0]
	}
	return nil
}

// normalizePath resolves a path to its cleaned absolute form, following
// symlinks so that matches do not depend on how the caller spelled the
// path. Resolution failures fall back to the cleaned input.
func normalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
