package laravel

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
)

// frameworkPackage is the Composer package whose version identifies the
// Laravel framework release.
const frameworkPackage = "laravel/framework"

// VersionKind distinguishes how a version string was obtained.
type VersionKind int

const (
	// VersionUnknown means neither the lockfile nor the manifest yielded
	// a version.
	VersionUnknown VersionKind = iota

	// VersionExact is a resolved version taken from composer.lock.
	VersionExact

	// VersionConstraint is a declared constraint (e.g. "^12.0") taken
	// from composer.json. It is not a resolved version.
	VersionConstraint
)

// String returns the kind as a lowercase label.
func (k VersionKind) String() string {
	switch k {
	case VersionExact:
		return "exact"
	case VersionConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its label.
func (k VersionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Version is the framework version for one application, tagged with how
// it was resolved so downstream consumers never conflate an exact release
// with a constraint string.
type Version struct {
	Kind  VersionKind `json:"kind"`
	Value string      `json:"value,omitempty"`
}

// String returns the version value, or "unknown" for the sentinel.
func (v Version) String() string {
	if v.Kind == VersionUnknown {
		return "unknown"
	}
	return v.Value
}

// Plain-text fallbacks for when the structured parse fails. They accept a
// small risk of false negatives on unusually formatted files.
var (
	lockVersionPattern     = regexp.MustCompile(`(?s)"name"\s*:\s*"laravel/framework"\s*,.*?"version"\s*:\s*"([^"]+)"`)
	manifestVersionPattern = regexp.MustCompile(`"laravel/framework"\s*:\s*"([^"]+)"`)
)

// ResolveVersion determines the framework version for the application at
// dir. Precedence is fixed: composer.lock resolved version, then the
// composer.json constraint, then the unknown sentinel. Parse failures are
// never surfaced; they fall through to the next source.
func ResolveVersion(dir string) Version {
	if v, ok := lockfileVersion(filepath.Join(dir, "composer.lock")); ok {
		return Version{Kind: VersionExact, Value: v}
	}
	if v, ok := manifestConstraint(filepath.Join(dir, "composer.json")); ok {
		return Version{Kind: VersionConstraint, Value: v}
	}
	return Version{Kind: VersionUnknown}
}

// lockfileVersion extracts the resolved framework version from a
// composer.lock file. The resolved string is returned verbatim.
func lockfileVersion(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var lock struct {
		Packages []struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"packages"`
	}
	if err := json.Unmarshal(data, &lock); err == nil {
		for _, pkg := range lock.Packages {
			if pkg.Name == frameworkPackage && pkg.Version != "" {
				return pkg.Version, true
			}
		}
		return "", false
	}

	// Structured parse failed; try the plain-text pattern.
	if m := lockVersionPattern.FindSubmatch(data); m != nil {
		return string(m[1]), true
	}
	return "", false
}

// manifestConstraint extracts the declared framework constraint from a
// composer.json file.
func manifestConstraint(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var manifest struct {
		Require map[string]string `json:"require"`
	}
	if err := json.Unmarshal(data, &manifest); err == nil {
		if c, ok := manifest.Require[frameworkPackage]; ok && c != "" {
			return c, true
		}
		return "", false
	}

	if m := manifestVersionPattern.FindSubmatch(data); m != nil {
		return string(m[1]), true
	}
	return "", false
}
