// Package registry owns the fixed mapping from logical document keys to
// markdown files under the docs root, split across three namespaces: core
// standards, workflow patterns, and integration guides.
//
// The tables are populated at construction time and never mutated; there is
// no runtime registration API. Every resolution re-reads the file from disk,
// so callers always see the current content.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/pkg/fileops"
)

// Namespace identifies one of the three disjoint document categories.
type Namespace string

const (
	NamespaceCore        Namespace = "core"
	NamespaceWorkflow    Namespace = "workflow"
	NamespaceIntegration Namespace = "integration"
)

// Label returns the human-readable singular name used in error messages
// and CLI output.
func (ns Namespace) Label() string {
	switch ns {
	case NamespaceCore:
		return "core standard"
	case NamespaceWorkflow:
		return "workflow pattern"
	case NamespaceIntegration:
		return "integration guide"
	default:
		return "document"
	}
}

// Sentinel errors for the two failure categories of Resolve. The MCP
// dispatcher and CLI classify with errors.Is rather than string matching.
var (
	// ErrUnknownKey means the key is not in the registered set for the
	// requested namespace.
	ErrUnknownKey = errors.New("unknown document key")

	// ErrUnreadable means the key is registered but the backing file is
	// missing or cannot be read.
	ErrUnreadable = errors.New("document file unreadable")
)

// Entry is one registered document: its logical key, its path relative to
// the docs root, and a one-line description for listings.
type Entry struct {
	Key         string
	Path        string
	Description string
}

// Registry resolves (namespace, key) pairs to document content.
type Registry struct {
	root   string
	logger *logging.AppLogger
}

// New creates a registry rooted at the given docs directory. The directory
// must exist; individual documents are only checked at resolution time.
func New(root string, logger *logging.AppLogger) (*Registry, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("docs root cannot be empty")
	}

	absRoot, err := filepath.Abs(fileops.ExpandPath(root))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve docs root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot access docs root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs root is not a directory: %s", absRoot)
	}

	logger.Debug("Registry created", "root", absRoot)
	return &Registry{root: absRoot, logger: logger}, nil
}

// Root returns the absolute docs root the registry resolves against.
func (r *Registry) Root() string {
	return r.root
}

// Namespaces returns the three namespaces in registration order.
func Namespaces() []Namespace {
	return []Namespace{NamespaceCore, NamespaceWorkflow, NamespaceIntegration}
}

// Entries returns the registered entries for one namespace, in registration
// order.
func Entries(ns Namespace) []Entry {
	switch ns {
	case NamespaceCore:
		return coreStandards
	case NamespaceWorkflow:
		return workflowPatterns
	case NamespaceIntegration:
		return integrationGuides
	default:
		return nil
	}
}

// Keys returns the registered keys for one namespace, in registration order.
func Keys(ns Namespace) []string {
	entries := Entries(ns)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Lookup returns the entry for a key within a namespace.
func Lookup(ns Namespace, key string) (Entry, bool) {
	for _, e := range Entries(ns) {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve reads and returns the full text of the document registered under
// (ns, key).
//
// Failure modes are distinguishable with errors.Is: ErrUnknownKey when the
// key is not registered (the message enumerates the valid keys so the
// calling agent can self-correct), ErrUnreadable when the registered file is
// absent or cannot be read (the message names the resolved path).
func (r *Registry) Resolve(ns Namespace, key string) (string, error) {
	entry, ok := Lookup(ns, key)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a registered %s (valid keys: %s)",
			ErrUnknownKey, key, ns.Label(), strings.Join(Keys(ns), ", "))
	}

	path := filepath.Join(r.root, entry.Path)

	// Registered paths are fixed constants, but the root may be a synced
	// mirror; keep resolution confined to it.
	if err := fileops.ValidateFileInDirectory(path, r.root); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error("Failed to read registered document", "key", key, "path", path, "error", err)
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	r.logger.Debug("Resolved document", "namespace", ns, "key", key, "bytes", len(content))
	return string(content), nil
}

// ListAllPaths returns every registered path across all three namespaces,
// absolute, in registration order (core, then workflow, then integration).
// This ordering is what gives search its deterministic result order.
func (r *Registry) ListAllPaths() []string {
	var paths []string
	for _, ns := range Namespaces() {
		for _, e := range Entries(ns) {
			paths = append(paths, filepath.Join(r.root, e.Path))
		}
	}
	return paths
}

// RelativePath rewrites an absolute registered path back to its docs-root
// relative form for display. Paths outside the root are returned unchanged.
func (r *Registry) RelativePath(path string) string {
	rel, err := filepath.Rel(r.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
