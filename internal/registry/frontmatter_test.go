package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadMetaWithFrontmatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	content := `---
title: Testing Discipline
description: Test-first expectations
---

# Testing Discipline

Body text.
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	meta, err := ReadMeta(path)
	if err != nil {
		t.Fatalf("ReadMeta() error = %v", err)
	}
	if meta.Title != "Testing Discipline" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Description != "Test-first expectations" {
		t.Errorf("Description = %q", meta.Description)
	}
	if strings.Contains(meta.Body, "---") {
		t.Errorf("Body should not contain the frontmatter block: %q", meta.Body)
	}
	if !strings.Contains(meta.Body, "# Testing Discipline") {
		t.Errorf("Body missing content: %q", meta.Body)
	}
}

func TestReadMetaPlainMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.md")
	content := "# No Frontmatter\n\nJust markdown.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	meta, err := ReadMeta(path)
	if err != nil {
		t.Fatalf("ReadMeta() error = %v", err)
	}
	if meta.Description != "" || meta.Title != "" {
		t.Errorf("expected empty metadata, got %+v", meta)
	}
	if !strings.Contains(meta.Body, "# No Frontmatter") {
		t.Errorf("Body = %q", meta.Body)
	}
}

func TestReadMetaMissingFile(t *testing.T) {
	_, err := ReadMeta(filepath.Join(t.TempDir(), "absent.md"))
	if err == nil {
		t.Fatal("ReadMeta() expected error for missing file")
	}
}
