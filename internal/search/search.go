// Package search implements the keyword search across the registered
// document set: a case-insensitive linear substring scan over every line of
// every registered document, with a few lines of surrounding context per
// match.
//
// The corpus is a couple of dozen small markdown files, so no index is
// built; the scan re-reads each document on every call and is deterministic:
// matches come back in registry order, then line order.
package search

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
)

const (
	// DefaultMaxResults caps the total number of matches per search.
	DefaultMaxResults = 10

	// DefaultContextLines is the number of lines included before and after
	// each matched line.
	DefaultContextLines = 2
)

// ErrEmptyQuery is returned when the query is empty or all whitespace.
// An empty query is an argument error, never an implicit match-all.
var ErrEmptyQuery = errors.New("search keyword cannot be empty")

// Match is one reported hit of the query within a document.
type Match struct {
	// Path is the document path relative to the docs root.
	Path string

	// Line is the 1-based line number of the matched line.
	Line int

	// Text is the matched line with surrounding whitespace trimmed.
	Text string

	// Context is the block of lines around the match (clamped to the
	// document bounds), joined with newlines and untrimmed.
	Context string
}

// Engine scans the documents reachable through a Registry.
type Engine struct {
	registry *registry.Registry
	logger   *logging.AppLogger
}

// NewEngine creates a search engine over the given registry.
func NewEngine(reg *registry.Registry, logger *logging.AppLogger) *Engine {
	return &Engine{registry: reg, logger: logger}
}

// Search scans every registered document for a case-insensitive substring
// match of query.
//
// maxResults is a hard cap across all documents, not per document; a value
// <= 0 falls back to DefaultMaxResults. contextLines < 0 falls back to
// DefaultContextLines. Documents that cannot be read are skipped so a
// missing file never aborts the whole scan. A query with no matches returns
// an empty slice, not an error.
func (e *Engine) Search(query string, maxResults, contextLines int) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w", ErrEmptyQuery)
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if contextLines < 0 {
		contextLines = DefaultContextLines
	}

	needle := strings.ToLower(query)
	matches := make([]Match, 0, maxResults)

	for _, path := range e.registry.ListAllPaths() {
		if len(matches) >= maxResults {
			break
		}

		content, err := os.ReadFile(path)
		if err != nil {
			// Documented policy: a missing or unreadable document must not
			// abort the scan; partial results beat total failure.
			e.logger.Debug("Skipping unreadable document during search", "path", path, "error", err)
			continue
		}

		lines := strings.Split(string(content), "\n")
		for i, line := range lines {
			if !strings.Contains(strings.ToLower(line), needle) {
				continue
			}

			matches = append(matches, Match{
				Path:    e.registry.RelativePath(path),
				Line:    i + 1,
				Text:    strings.TrimSpace(line),
				Context: contextBlock(lines, i, contextLines),
			})
			if len(matches) >= maxResults {
				break
			}
		}
	}

	e.logger.Debug("Search completed", "query", query, "matches", len(matches))
	return matches, nil
}

// contextBlock returns the lines in [i-contextLines, i+contextLines] joined
// with newlines, clamped to the document bounds.
func contextBlock(lines []string, i, contextLines int) string {
	start := i - contextLines
	if start < 0 {
		start = 0
	}
	end := i + contextLines
	if end > len(lines)-1 {
		end = len(lines) - 1
	}
	return strings.Join(lines[start:end+1], "\n")
}
