package hook

import (
	"fmt"
	"os"
	"strings"

	"github.com/oakwell-systems/larascan/internal/laravel"
	"github.com/oakwell-systems/larascan/internal/plugin"
)

// defaultOnboarding is injected when no onboarding document is configured
// or the configured file cannot be read.
const defaultOnboarding = `This repository contains one or more Laravel applications. Use artisan for
framework tasks (migrations, queues, tinker) and check routes, config, and
environment through artisan commands rather than guessing. Run the test
suite before and after changes.`

// BuildContext assembles the human-readable guidance injected into the
// session: banner, active-application line, per-app summary, onboarding
// text, and Sail guidance when applicable.
func BuildContext(scan *laravel.Scan, onboarding string) string {
	var b strings.Builder

	b.WriteString("Laravel environment detected.\n\n")

	if scan.Active != nil {
		fmt.Fprintf(&b, "Active application: %s\n", scan.Active.Path)
	} else {
		b.WriteString("Multiple applications found; none is active for this directory.\n")
	}

	b.WriteString("Applications:\n")
	for _, app := range scan.Apps {
		b.WriteString(SummaryLine(app))
		b.WriteString("\n")
	}

	if onboarding == "" {
		onboarding = defaultOnboarding
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(onboarding, "\n"))
	b.WriteString("\n")

	if guidance := sailGuidance(scan.Active); guidance != "" {
		b.WriteString("\n")
		b.WriteString(guidance)
		b.WriteString("\n")
	}

	return b.String()
}

// SummaryLine renders one application as a list item. Container state is
// only mentioned when a Sail script actually exists.
func SummaryLine(app laravel.App) string {
	if !app.HasSail {
		return fmt.Sprintf("- %s (Laravel %s; Sail: no)", app.Path, app.Version)
	}
	containers := "no"
	if app.SailRunning {
		containers = "yes"
	}
	return fmt.Sprintf("- %s (Laravel %s; Sail: yes, containers: %s)", app.Path, app.Version, containers)
}

// sailGuidance returns runner-specific instructions for the active app.
func sailGuidance(active *laravel.App) string {
	if active == nil || !active.HasSail {
		return ""
	}
	if !active.SailRunning {
		return "Sail is installed but its containers are not running. Start them with:\n" +
			"  ./vendor/bin/sail up -d"
	}
	return "Sail containers are running. Prefix artisan, composer, and npm commands\n" +
		"with ./vendor/bin/sail so they execute inside the containers."
}

// LoadOnboarding reads the onboarding document at path and returns its
// body verbatim, minus any YAML frontmatter. Returns "" when path is empty
// or unreadable, which selects the built-in default.
func LoadOnboarding(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	_, body, _ := plugin.SplitFrontmatter(data)
	return string(body)
}
