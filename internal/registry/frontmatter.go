package registry

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

// DocFrontmatter is the YAML frontmatter block each document may carry.
// Only description is meaningful to the tooling; the registry's fixed
// descriptions remain authoritative for the MCP listing, while frontmatter
// enriches CLI output and lets doctor flag drift.
type DocFrontmatter struct {
	Description string `yaml:"description"`
	Title       string `yaml:"title,omitempty"`
}

// DocMeta is a parsed document: frontmatter fields plus the body without
// the frontmatter block.
type DocMeta struct {
	Description string
	Title       string
	Body        string
}

// ReadMeta reads a document and parses its frontmatter. Files without a
// frontmatter block are returned whole with empty metadata rather than as
// an error; plain markdown is still a valid document.
func ReadMeta(path string) (DocMeta, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return DocMeta{}, fmt.Errorf("failed to read document: %w", err)
	}

	var matter DocFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &matter)
	if err != nil {
		return DocMeta{Body: string(content)}, nil
	}

	return DocMeta{
		Description: strings.TrimSpace(matter.Description),
		Title:       strings.TrimSpace(matter.Title),
		Body:        string(body),
	}, nil
}
