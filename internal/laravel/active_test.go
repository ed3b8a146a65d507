package laravel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSelectActive_SingleAppDefault(t *testing.T) {
	root := t.TempDir()
	writeArtisan(t, filepath.Join(root, "backend"))
	apps := []App{{Path: "backend"}}

	// Caller is at the repo root, outside the sole app: it still wins.
	active := SelectActive(apps, root, root)
	if active == nil {
		t.Fatal("expected sole app to be active by default")
	}
	if active.Path != "backend" {
		t.Errorf("expected backend, got %q", active.Path)
	}
}

func TestSelectActive_MultiAppNoDefault(t *testing.T) {
	root := t.TempDir()
	writeArtisan(t, filepath.Join(root, "apps", "api"))
	writeArtisan(t, filepath.Join(root, "apps", "admin"))
	apps := []App{
		{Path: filepath.Join("apps", "admin")},
		{Path: filepath.Join("apps", "api")},
	}

	// Two candidates and the caller outside both: ambiguity is not
	// resolved by picking the first.
	if active := SelectActive(apps, root, root); active != nil {
		t.Errorf("expected no active app, got %q", active.Path)
	}
}

func TestSelectActive_ByLocation(t *testing.T) {
	root := t.TempDir()
	writeArtisan(t, filepath.Join(root, "apps", "api"))
	writeArtisan(t, filepath.Join(root, "apps", "admin"))
	apps := []App{
		{Path: filepath.Join("apps", "admin")},
		{Path: filepath.Join("apps", "api")},
	}

	// From inside a subtree of api, api wins regardless of discovery order.
	deep := filepath.Join(root, "apps", "api", "app", "Http")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	active := SelectActive(apps, root, deep)
	if active == nil {
		t.Fatal("expected an active app")
	}
	if active.Path != filepath.Join("apps", "api") {
		t.Errorf("expected apps/api, got %q", active.Path)
	}
}

func TestSelectActive_ExactAppRoot(t *testing.T) {
	root := t.TempDir()
	writeArtisan(t, filepath.Join(root, "apps", "admin"))
	writeArtisan(t, filepath.Join(root, "apps", "api"))
	apps := []App{
		{Path: filepath.Join("apps", "admin")},
		{Path: filepath.Join("apps", "api")},
	}

	active := SelectActive(apps, root, filepath.Join(root, "apps", "admin"))
	if active == nil || active.Path != filepath.Join("apps", "admin") {
		t.Errorf("expected apps/admin active, got %v", active)
	}
}

func TestSelectActive_RootApp(t *testing.T) {
	root := t.TempDir()
	writeArtisan(t, root)
	apps := []App{{Path: "."}}

	sub := filepath.Join(root, "app", "Models")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	active := SelectActive(apps, root, sub)
	if active == nil || active.Path != "." {
		t.Errorf("expected root app active, got %v", active)
	}
}

func TestSelectActive_NoApps(t *testing.T) {
	if active := SelectActive(nil, t.TempDir(), "/"); active != nil {
		t.Errorf("expected nil, got %v", active)
	}
}

func TestSelectActive_CallerOutsideTree(t *testing.T) {
	root := t.TempDir()
	elsewhere := t.TempDir()
	writeArtisan(t, filepath.Join(root, "a"))
	writeArtisan(t, filepath.Join(root, "b"))
	apps := []App{{Path: "a"}, {Path: "b"}}

	if active := SelectActive(apps, root, elsewhere); active != nil {
		t.Errorf("expected no active app for caller outside tree, got %q", active.Path)
	}
}
