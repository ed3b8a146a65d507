package plugin

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBundleFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func validBundle(t *testing.T) string {
	dir := t.TempDir()
	writeBundleFile(t, dir, ".claude-plugin/plugin.json",
		`{"name": "laravel-companion", "version": "1.2.0", "description": "Laravel skills"}`)
	writeBundleFile(t, dir, "skills/sail-helper/SKILL.md",
		"---\nname: sail-helper\ndescription: Guidance for Laravel Sail workflows.\n---\nBody.\n")
	writeBundleFile(t, dir, "commands/make-module.md",
		"---\nname: make-module\ndescription: Scaffold a module.\n---\nBody.\n")
	return dir
}

func TestValidateBundle_Clean(t *testing.T) {
	issues, err := ValidateBundle(context.Background(), validBundle(t), 4)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateBundle_MissingManifest(t *testing.T) {
	dir := t.TempDir()
	issues, err := ValidateBundle(context.Background(), dir, 4)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "missing plugin manifest")
}

func TestValidateBundle_BadSkillName(t *testing.T) {
	dir := validBundle(t)
	writeBundleFile(t, dir, "skills/BadName/SKILL.md",
		"---\nname: BadName\ndescription: Not kebab case.\n---\nBody.\n")

	issues, err := ValidateBundle(context.Background(), dir, 4)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "kebab-case")
}

func TestValidateBundle_NameDirectoryMismatch(t *testing.T) {
	dir := validBundle(t)
	writeBundleFile(t, dir, "skills/queue-tuning/SKILL.md",
		"---\nname: queue-tunning\ndescription: Typo in the name.\n---\nBody.\n")

	issues, err := ValidateBundle(context.Background(), dir, 4)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "does not match directory")
}

func TestValidateBundle_SkillDirWithoutFile(t *testing.T) {
	dir := validBundle(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "skills", "empty-skill"), 0o755))

	issues, err := ValidateBundle(context.Background(), dir, 4)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "missing SKILL.md")
}

func TestValidateBundle_CommandMissingDescription(t *testing.T) {
	dir := validBundle(t)
	writeBundleFile(t, dir, "commands/broken.md", "---\nname: broken\n---\nBody.\n")

	issues, err := ValidateBundle(context.Background(), dir, 4)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "no description")
}

func TestValidateBundle_OverlongDescription(t *testing.T) {
	dir := validBundle(t)
	long := strings.Repeat("x", maxDescriptionLen+1)
	writeBundleFile(t, dir, "commands/wordy.md",
		"---\nname: wordy\ndescription: "+long+"\n---\nBody.\n")

	issues, err := ValidateBundle(context.Background(), dir, 4)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "exceeds")
}

func TestValidateBundle_SortedDeterministically(t *testing.T) {
	dir := validBundle(t)
	writeBundleFile(t, dir, "commands/zeta.md", "no frontmatter\n")
	writeBundleFile(t, dir, "commands/alpha.md", "no frontmatter\n")

	issues, err := ValidateBundle(context.Background(), dir, 4)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, filepath.Join("commands", "alpha.md"), issues[0].File)
	assert.Equal(t, filepath.Join("commands", "zeta.md"), issues[1].File)
}

func TestLoadManifest_Absent(t *testing.T) {
	m, err := LoadManifest(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoadManifest_Parses(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, ".claude-plugin/plugin.json",
		`{"name": "laravel-companion", "version": "0.3.1"}`)

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "laravel-companion", m.Name)
	assert.Equal(t, "0.3.1", m.Version)
}
