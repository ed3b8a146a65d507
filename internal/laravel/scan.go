package laravel

import (
	"context"
	"path/filepath"
	"time"
)

// Options controls a scan. Zero values select the package defaults.
type Options struct {
	// ExcludeDirs overrides the directory names pruned during discovery.
	ExcludeDirs []string

	// SailPaths overrides the Sail script locations checked per app.
	SailPaths []string

	// Prober overrides the container-state probe. When nil, the env
	// override is honored first, then the real Docker Compose query.
	Prober Prober

	// ProbeTimeout bounds the real probe subprocess. Ignored when Prober
	// is set. Zero means the default.
	ProbeTimeout time.Duration
}

// Run scans root for Laravel applications and classifies each one. It is a
// pure function over the tree snapshot and cwd: no state survives the
// call. A nil Scan (with nil error) means no application was found, which
// callers treat as "not applicable" rather than an empty result.
func Run(ctx context.Context, root, cwd string, opts Options) (*Scan, error) {
	dirs, err := Discover(root, opts.ExcludeDirs)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, nil
	}

	prober := opts.Prober
	if prober == nil {
		if p := ProberFromEnv(); p != nil {
			prober = p
		} else {
			prober = ExecProber{Timeout: opts.ProbeTimeout}
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = filepath.Clean(root)
	}

	apps := make([]App, 0, len(dirs))
	for _, rel := range dirs {
		dir := filepath.Join(absRoot, rel)
		app := App{
			Path:    rel,
			Version: ResolveVersion(dir),
			HasSail: HasSail(dir, opts.SailPaths),
		}
		if app.HasSail {
			app.SailRunning = prober.Running(ctx, dir)
		}
		apps = append(apps, app)
	}

	return &Scan{
		Root:   absRoot,
		Apps:   apps,
		Active: SelectActive(apps, absRoot, cwd),
	}, nil
}
