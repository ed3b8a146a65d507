package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxDescriptionLen bounds frontmatter descriptions. Longer text belongs
// in the document body.
const maxDescriptionLen = 1024

// kebabCasePattern is the required shape for skill and command names.
var kebabCasePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Issue is one validation finding, attributed to a file.
type Issue struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.File, i.Message)
}

// ValidateBundle checks a plugin bundle's manifest and the frontmatter of
// every skill and command file. Files are validated concurrently, bounded
// by concurrency. Findings come back sorted by file path; an empty slice
// means the bundle is clean.
func ValidateBundle(ctx context.Context, dir string, concurrency int) ([]Issue, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	var (
		mu     sync.Mutex
		issues []Issue
	)
	report := func(file, format string, args ...any) {
		mu.Lock()
		issues = append(issues, Issue{File: file, Message: fmt.Sprintf(format, args...)})
		mu.Unlock()
	}

	if err := validateManifest(dir, report); err != nil {
		return nil, err
	}

	files, err := bundleFiles(dir)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, f := range files {
		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			validateFile(dir, f, report)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		return issues[i].Message < issues[j].Message
	})
	return issues, nil
}

// bundleFile is one markdown file to validate, with its expected name when
// the convention dictates one.
type bundleFile struct {
	rel          string
	expectedName string
}

// bundleFiles collects skills/*/SKILL.md and commands/**/*.md under dir.
func bundleFiles(dir string) ([]bundleFile, error) {
	var files []bundleFile

	skillDirs, err := os.ReadDir(filepath.Join(dir, "skills"))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, entry := range skillDirs {
		if !entry.IsDir() {
			continue
		}
		rel := filepath.Join("skills", entry.Name(), "SKILL.md")
		if _, err := os.Stat(filepath.Join(dir, rel)); err == nil {
			// Skill names must match their directory.
			files = append(files, bundleFile{rel: rel, expectedName: entry.Name()})
		} else {
			files = append(files, bundleFile{rel: filepath.Join("skills", entry.Name()), expectedName: entry.Name()})
		}
	}

	commandsRoot := filepath.Join(dir, "commands")
	walkErr := filepath.WalkDir(commandsRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, bundleFile{rel: rel})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return files, nil
}

func validateManifest(dir string, report func(file, format string, args ...any)) error {
	const manifestPath = ".claude-plugin/plugin.json"
	m, err := LoadManifest(dir)
	if err != nil {
		report(manifestPath, "unparseable manifest: %v", err)
		return nil
	}
	if m == nil {
		report(manifestPath, "missing plugin manifest")
		return nil
	}
	if m.Name == "" {
		report(manifestPath, "manifest has no name")
	}
	if m.Version == "" {
		report(manifestPath, "manifest has no version")
	}
	return nil
}

func validateFile(dir string, f bundleFile, report func(file, format string, args ...any)) {
	data, err := os.ReadFile(filepath.Join(dir, f.rel))
	if err != nil {
		report(f.rel, "missing SKILL.md")
		return
	}

	fm, _, err := ParseFrontmatter(data)
	if err != nil {
		report(f.rel, "%v", err)
		return
	}

	if fm.Name == "" {
		report(f.rel, "frontmatter has no name")
	} else {
		if !kebabCasePattern.MatchString(fm.Name) {
			report(f.rel, "name %q is not kebab-case", fm.Name)
		}
		if f.expectedName != "" && fm.Name != f.expectedName {
			report(f.rel, "name %q does not match directory %q", fm.Name, f.expectedName)
		}
	}

	switch {
	case fm.Description == "":
		report(f.rel, "frontmatter has no description")
	case len(fm.Description) > maxDescriptionLen:
		report(f.rel, "description exceeds %d characters (%d)", maxDescriptionLen, len(fm.Description))
	case strings.ContainsAny(fm.Description, "\n"):
		report(f.rel, "description must be a single line")
	}
}
