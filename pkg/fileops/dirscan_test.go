package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestIsMarkdownFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"readme.md", true},
		{"README.MD", true},
		{"notes.markdown", true},
		{"doc.mdown", true},
		{"doc.mkd", true},
		{"doc.mkdn", true},
		{"main.go", false},
		{"md", false},
		{"archive.md.gz", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsMarkdownFile(tt.filename); got != tt.want {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestScanMarkdownDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "top.md", "# top")
	writeFile(t, root, "core/rules.md", "# rules")
	writeFile(t, root, "core/notes.txt", "not markdown")
	writeFile(t, root, ".hidden/secret.md", "# hidden")

	files, err := ScanMarkdownDir(root, 3)
	if err != nil {
		t.Fatalf("ScanMarkdownDir() error = %v", err)
	}

	got := make(map[string]bool)
	for _, f := range files {
		got[f.Path] = true
	}

	if !got["top.md"] {
		t.Error("top-level markdown file missing from scan")
	}
	if !got[filepath.Join("core", "rules.md")] {
		t.Error("nested markdown file missing from scan")
	}
	if got[filepath.Join("core", "notes.txt")] {
		t.Error("non-markdown file should be skipped")
	}
	if got[filepath.Join(".hidden", "secret.md")] {
		t.Error("hidden directory should be skipped")
	}
}

func TestScanMarkdownDirDepthLimit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c/deep.md", "# deep")
	writeFile(t, root, "shallow.md", "# shallow")

	files, err := ScanMarkdownDir(root, 2)
	if err != nil {
		t.Fatalf("ScanMarkdownDir() error = %v", err)
	}

	for _, f := range files {
		if f.Name == "deep.md" {
			t.Error("file beyond maxDepth should not be scanned")
		}
	}
	if len(files) != 1 || files[0].Name != "shallow.md" {
		t.Errorf("expected only shallow.md, got %v", files)
	}
}

func TestScanMarkdownDirValidation(t *testing.T) {
	tests := []struct {
		name string
		root func(t *testing.T) string
	}{
		{"empty path", func(t *testing.T) string { return " " }},
		{"nonexistent", func(t *testing.T) string { return filepath.Join(t.TempDir(), "gone") }},
		{"file not dir", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "f.md")
			if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
				t.Fatal(err)
			}
			return path
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScanMarkdownDir(tt.root(t), 3); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScanMarkdownDirReportsSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sized.md", "12345")

	files, err := ScanMarkdownDir(root, 1)
	if err != nil {
		t.Fatalf("ScanMarkdownDir() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Size != 5 {
		t.Errorf("Size = %d, want 5", files[0].Size)
	}
}
