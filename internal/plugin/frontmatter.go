// Package plugin parses Claude Code plugin bundles: the manifest, and the
// YAML frontmatter of skill and command files.
package plugin

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the conventional metadata block at the top of skill and
// command files.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

var frontmatterDelim = []byte("---")

// SplitFrontmatter separates a leading YAML frontmatter block from the
// document body. When no frontmatter is present, the whole input is
// returned as the body and ok is false.
func SplitFrontmatter(data []byte) (fm, body []byte, ok bool) {
	rest, found := bytes.CutPrefix(data, append(frontmatterDelim, '\n'))
	if !found {
		return nil, data, false
	}
	end := bytes.Index(rest, append([]byte{'\n'}, append(frontmatterDelim, '\n')...))
	if end < 0 {
		// Unterminated block: treat the whole file as body.
		return nil, data, false
	}
	fm = rest[:end]
	body = rest[end+len(frontmatterDelim)+2:]
	return fm, body, true
}

// ParseFrontmatter extracts and decodes the frontmatter block. The body is
// returned alongside so callers can reuse it without re-reading the file.
func ParseFrontmatter(data []byte) (*Frontmatter, []byte, error) {
	raw, body, ok := SplitFrontmatter(data)
	if !ok {
		return nil, body, fmt.Errorf("missing frontmatter block")
	}
	var fm Frontmatter
	if err := yaml.Unmarshal(raw, &fm); err != nil {
		return nil, body, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return &fm, body, nil
}
