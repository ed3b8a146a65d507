package laravel

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// EnvForceSailRunning forces the container probe result for every
// candidate when set to exactly "true" or "false". Any other value falls
// through to the real probe.
const EnvForceSailRunning = "LARASCAN_FORCE_SAIL_RUNNING"

// DefaultSailPaths are the conventional Sail script locations, relative to
// an application root.
var DefaultSailPaths = []string{
	filepath.Join("vendor", "bin", "sail"),
	"sail",
}

// defaultProbeTimeout bounds the container status subprocess. The probe is
// a local query and should return well under a second.
const defaultProbeTimeout = 2 * time.Second

// HasSail reports whether an executable Sail script exists at any of the
// given locations under dir. This is a presence check only; composer.json
// is never consulted, since a declared dependency does not mean the
// binary is installed yet.
func HasSail(dir string, sailPaths []string) bool {
	if sailPaths == nil {
		sailPaths = DefaultSailPaths
	}
	for _, rel := range sailPaths {
		info, err := os.Stat(filepath.Join(dir, rel))
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode().Perm()&0o111 != 0 {
			return true
		}
	}
	return false
}

// Prober answers whether Sail containers are running for an application
// directory. It is injected so tests and the env override can replace the
// real subprocess probe with a fixed value.
type Prober interface {
	Running(ctx context.Context, dir string) bool
}

// FixedProber always reports the same state. Used for the env override
// and in tests.
type FixedProber struct {
	Value bool
}

// Running returns the fixed value.
func (p FixedProber) Running(ctx context.Context, dir string) bool {
	return p.Value
}

// ExecProber queries Docker Compose for running containers scoped to an
// application directory. It prefers the integrated "docker compose" form
// and falls back to the legacy standalone "docker-compose" binary. The
// probe is read-only; it never starts, stops, or modifies containers.
type ExecProber struct {
	// Timeout bounds each status query. Zero means the default.
	Timeout time.Duration

	// commands overrides the probe command list in tests.
	commands [][]string
}

// Running reports whether at least one container entry is returned by the
// status query. Every failure mode (tool absent, non-zero exit, empty
// output) degrades to false; confirming "running" is the only way to get
// true.
func (p ExecProber) Running(ctx context.Context, dir string) bool {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	commands := p.commands
	if commands == nil {
		commands = [][]string{
			{"docker", "compose", "ps", "-q"},
			{"docker-compose", "ps", "-q"},
		}
	}

	for _, argv := range commands {
		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		out, err := probeOnce(probeCtx, dir, argv)
		cancel()
		if err != nil {
			continue
		}
		return countContainerIDs(out) > 0
	}
	return false
}

func probeOnce(ctx context.Context, dir string, argv []string) (string, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// countContainerIDs counts non-empty lines in a `ps -q` style listing.
func countContainerIDs(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// ProberFromEnv returns a FixedProber when the override variable is set to
// a recognized value, or nil when the real probe should be used.
func ProberFromEnv() Prober {
	switch os.Getenv(EnvForceSailRunning) {
	case "true":
		return FixedProber{Value: true}
	case "false":
		return FixedProber{Value: false}
	default:
		return nil
	}
}
