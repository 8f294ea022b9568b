package search

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
)

func writeDoc(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create doc dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write doc: %v", err)
	}
}

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	root := t.TempDir()
	logger, _ := logging.NewTestLogger()
	reg, err := registry.New(root, logger)
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}
	return NewEngine(reg, logger), root
}

func TestSearchEmptyQuery(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := engine.Search(query, 10, 2)
		if !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(%q) error = %v, want ErrEmptyQuery", query, err)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	engine, root := newTestEngine(t)
	writeDoc(t, root, "core/terminal-standards.md", "line one\nKeep a Clean Bash environment\nline three\n")

	matches, err := engine.Search("clean bash", 10, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	m := matches[0]
	if m.Line != 2 {
		t.Errorf("Line = %d, want 2", m.Line)
	}
	if m.Text != "Keep a Clean Bash environment" {
		t.Errorf("Text = %q", m.Text)
	}
	if m.Path != filepath.Join("core", "terminal-standards.md") {
		t.Errorf("Path = %q, want root-relative path", m.Path)
	}
}

func TestSearchTrimsMatchedLine(t *testing.T) {
	engine, root := newTestEngine(t)
	writeDoc(t, root, "core/agent-rules.md", "   indented match here   \n")

	matches, err := engine.Search("match", 10, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Text != "indented match here" {
		t.Errorf("Text should be trimmed, got %q", matches[0].Text)
	}
}

func TestSearchOrderFollowsRegistry(t *testing.T) {
	engine, root := newTestEngine(t)
	// Both documents match; core registers before workflows, and within a
	// document matches come in line order.
	writeDoc(t, root, "workflows/session-management.md", "alpha in a workflow\n")
	writeDoc(t, root, "core/commit-standards.md", "first alpha line\nsecond alpha line\n")

	matches, err := engine.Search("alpha", 10, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	if matches[0].Path != filepath.Join("core", "commit-standards.md") || matches[0].Line != 1 {
		t.Errorf("match 0 = %s:%d, want core doc line 1", matches[0].Path, matches[0].Line)
	}
	if matches[1].Path != filepath.Join("core", "commit-standards.md") || matches[1].Line != 2 {
		t.Errorf("match 1 = %s:%d, want core doc line 2", matches[1].Path, matches[1].Line)
	}
	if matches[2].Path != filepath.Join("workflows", "session-management.md") {
		t.Errorf("match 2 = %s, want workflow doc", matches[2].Path)
	}
}

func TestSearchMaxResultsIsGlobalCap(t *testing.T) {
	engine, root := newTestEngine(t)
	writeDoc(t, root, "core/terminal-standards.md", "beta\nbeta\nbeta\n")
	writeDoc(t, root, "core/commit-standards.md", "beta\nbeta\n")

	matches, err := engine.Search("beta", 4, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 4 {
		t.Errorf("got %d matches, want the cap of 4", len(matches))
	}

	// Cap of one returns the first match in registry-then-line order.
	matches, err = engine.Search("beta", 1, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Path != filepath.Join("core", "terminal-standards.md") || matches[0].Line != 1 {
		t.Errorf("capped match = %s:%d, want first registered doc line 1", matches[0].Path, matches[0].Line)
	}
}

func TestSearchDefaultsFallback(t *testing.T) {
	engine, root := newTestEngine(t)

	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, "gamma")
	}
	writeDoc(t, root, "core/agent-rules.md", strings.Join(lines, "\n"))

	// Non-positive maxResults falls back to the default cap.
	matches, err := engine.Search("gamma", 0, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != DefaultMaxResults {
		t.Errorf("got %d matches, want default cap %d", len(matches), DefaultMaxResults)
	}

	matches, err = engine.Search("gamma", -5, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != DefaultMaxResults {
		t.Errorf("negative maxResults: got %d matches, want %d", len(matches), DefaultMaxResults)
	}
}

func TestSearchContextClamping(t *testing.T) {
	engine, root := newTestEngine(t)
	writeDoc(t, root, "core/terminal-standards.md", "delta first\nmiddle\nlast delta")

	matches, err := engine.Search("delta", 10, 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	// Match on line 1: context cannot reach above the first line.
	if matches[0].Context != "delta first\nmiddle\nlast delta" {
		t.Errorf("top-of-file context = %q", matches[0].Context)
	}
	// Match on the last line: context cannot reach past the end.
	if !strings.HasSuffix(matches[1].Context, "last delta") {
		t.Errorf("bottom-of-file context = %q", matches[1].Context)
	}
}

func TestSearchZeroContext(t *testing.T) {
	engine, root := newTestEngine(t)
	writeDoc(t, root, "core/agent-rules.md", "above\nepsilon match\nbelow\n")

	matches, err := engine.Search("epsilon", 10, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Context != "epsilon match" {
		t.Errorf("zero-context block = %q, want just the matched line", matches[0].Context)
	}
}

func TestSearchNegativeContextUsesDefault(t *testing.T) {
	engine, root := newTestEngine(t)
	writeDoc(t, root, "core/agent-rules.md", "l1\nl2\nzeta here\nl4\nl5\n")

	matches, err := engine.Search("zeta", 10, -1)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	want := "l1\nl2\nzeta here\nl4\nl5"
	if matches[0].Context != want {
		t.Errorf("context = %q, want default %d lines each side", matches[0].Context, DefaultContextLines)
	}
}

func TestSearchSkipsUnreadableDocuments(t *testing.T) {
	engine, root := newTestEngine(t)
	// Only a later-registered document exists; every earlier registered
	// path is missing and must be skipped, not abort the scan.
	writeDoc(t, root, "integrations/opencode.md", "eta survives here\n")

	matches, err := engine.Search("eta surv", 10, 0)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 from the readable doc", len(matches))
	}
	if matches[0].Path != filepath.Join("integrations", "opencode.md") {
		t.Errorf("Path = %q", matches[0].Path)
	}
}

func TestSearchNoMatches(t *testing.T) {
	engine, root := newTestEngine(t)
	writeDoc(t, root, "core/agent-rules.md", "nothing relevant\n")

	matches, err := engine.Search("zzzznotfound", 10, 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}
