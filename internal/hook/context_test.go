package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oakwell-systems/larascan/internal/laravel"
)

func exactVersion(v string) laravel.Version {
	return laravel.Version{Kind: laravel.VersionExact, Value: v}
}

func TestSummaryLine_WithSail(t *testing.T) {
	app := laravel.App{Path: "apps/api", Version: exactVersion("v11.0.0"), HasSail: true, SailRunning: true}
	got := SummaryLine(app)
	want := "- apps/api (Laravel v11.0.0; Sail: yes, containers: yes)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummaryLine_SailDown(t *testing.T) {
	app := laravel.App{Path: ".", Version: exactVersion("v12.1.0"), HasSail: true}
	got := SummaryLine(app)
	want := "- . (Laravel v12.1.0; Sail: yes, containers: no)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummaryLine_NoSailOmitsContainerState(t *testing.T) {
	app := laravel.App{Path: "backend", Version: laravel.Version{Kind: laravel.VersionUnknown}}
	got := SummaryLine(app)
	want := "- backend (Laravel unknown; Sail: no)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "containers") {
		t.Error("container state must not be claimed without a runner binary")
	}
}

func TestSummaryLine_ConstraintNotPresentedAsExact(t *testing.T) {
	app := laravel.App{Path: ".", Version: laravel.Version{Kind: laravel.VersionConstraint, Value: "^12.0"}}
	got := SummaryLine(app)
	if !strings.Contains(got, "^12.0") {
		t.Errorf("expected constraint string preserved, got %q", got)
	}
}

func TestBuildContext_ActiveAndApps(t *testing.T) {
	scan := &laravel.Scan{
		Root: "/repo",
		Apps: []laravel.App{
			{Path: "apps/admin", Version: exactVersion("v12.1.0")},
			{Path: "apps/api", Version: exactVersion("v11.0.0")},
		},
	}
	scan.Active = &scan.Apps[1]

	ctx := BuildContext(scan, "")
	if !strings.Contains(ctx, "Active application: apps/api") {
		t.Errorf("missing active line:\n%s", ctx)
	}
	if !strings.Contains(ctx, "- apps/admin (Laravel v12.1.0; Sail: no)") {
		t.Errorf("missing admin summary:\n%s", ctx)
	}
	if !strings.Contains(ctx, "- apps/api (Laravel v11.0.0; Sail: no)") {
		t.Errorf("missing api summary:\n%s", ctx)
	}
}

func TestBuildContext_NoActive(t *testing.T) {
	scan := &laravel.Scan{
		Apps: []laravel.App{{Path: "a"}, {Path: "b"}},
	}
	ctx := BuildContext(scan, "")
	if strings.Contains(ctx, "Active application:") {
		t.Error("must not name an active application when none is selected")
	}
}

func TestBuildContext_SailStartGuidance(t *testing.T) {
	scan := &laravel.Scan{
		Apps: []laravel.App{{Path: ".", Version: exactVersion("v11.0.0"), HasSail: true, SailRunning: false}},
	}
	scan.Active = &scan.Apps[0]

	ctx := BuildContext(scan, "")
	if !strings.Contains(ctx, "sail up -d") {
		t.Errorf("expected start instruction:\n%s", ctx)
	}
	if strings.Contains(ctx, "containers: yes") || strings.Contains(ctx, "containers are running") {
		t.Errorf("must not claim containers are running:\n%s", ctx)
	}
}

func TestBuildContext_SailRunningGuidance(t *testing.T) {
	scan := &laravel.Scan{
		Apps: []laravel.App{{Path: ".", Version: exactVersion("v11.0.0"), HasSail: true, SailRunning: true}},
	}
	scan.Active = &scan.Apps[0]

	ctx := BuildContext(scan, "")
	if !strings.Contains(ctx, "containers are running") {
		t.Errorf("expected running guidance:\n%s", ctx)
	}
	if strings.Contains(ctx, "sail up -d") {
		t.Errorf("must not suggest starting containers that are up:\n%s", ctx)
	}
}

func TestBuildContext_NoSailNoGuidance(t *testing.T) {
	scan := &laravel.Scan{
		Apps: []laravel.App{{Path: "."}},
	}
	scan.Active = &scan.Apps[0]

	ctx := BuildContext(scan, "")
	if strings.Contains(ctx, "sail up -d") || strings.Contains(ctx, "Sail is installed") {
		t.Errorf("unexpected sail guidance without a runner:\n%s", ctx)
	}
}

func TestBuildContext_OnboardingVerbatim(t *testing.T) {
	scan := &laravel.Scan{Apps: []laravel.App{{Path: "."}}}
	scan.Active = &scan.Apps[0]

	onboarding := "Always run php artisan test before committing."
	ctx := BuildContext(scan, onboarding)
	if !strings.Contains(ctx, onboarding) {
		t.Errorf("onboarding text must appear verbatim:\n%s", ctx)
	}
}

func TestBuildContext_DefaultOnboarding(t *testing.T) {
	scan := &laravel.Scan{Apps: []laravel.App{{Path: "."}}}
	scan.Active = &scan.Apps[0]

	ctx := BuildContext(scan, "")
	if !strings.Contains(ctx, "artisan") {
		t.Errorf("expected built-in onboarding text:\n%s", ctx)
	}
}

func TestLoadOnboarding_StripsFrontmatter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SKILL.md")
	content := "---\nname: laravel-onboarding\ndescription: Intro.\n---\nWelcome to Laravel.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadOnboarding(path)
	if got != "Welcome to Laravel.\n" {
		t.Errorf("got %q", got)
	}
}

func TestLoadOnboarding_MissingFile(t *testing.T) {
	if got := LoadOnboarding(filepath.Join(t.TempDir(), "nope.md")); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestLoadOnboarding_EmptyPath(t *testing.T) {
	if got := LoadOnboarding(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
