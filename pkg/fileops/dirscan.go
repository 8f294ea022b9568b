package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// markdownExtensions contains the file extensions treated as markdown.
var markdownExtensions = []string{
	".md", ".mdown", ".mkdn", ".mkd", ".markdown",
}

// IsMarkdownFile reports whether a filename has a markdown extension.
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return slices.Contains(markdownExtensions, ext)
}

// FileInfo describes one file discovered by ScanMarkdownDir.
type FileInfo struct {
	// Name is the base filename without path components
	Name string

	// Path is the relative path from the scan root to this file
	Path string

	// Size is the file size in bytes
	Size int64
}

// ScanMarkdownDir recursively scans root for markdown files and returns them
// in directory-walk order with paths relative to root.
//
// The scan is confined to an os.Root, so symlinks cannot escape the tree.
// Unreadable subdirectories are skipped rather than failing the scan; the
// doctor command prefers a partial inventory over none. maxDepth bounds
// recursion against pathological trees.
func ScanMarkdownDir(root string, maxDepth int) ([]FileInfo, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("scan path cannot be empty")
	}

	absPath, err := filepath.Abs(ExpandPath(root))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve scan path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan path is not a directory: %s", absPath)
	}

	secureRoot, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot create secure scan root: %w", err)
	}
	defer secureRoot.Close()

	s := &markdownScanner{
		root:     secureRoot,
		maxDepth: maxDepth,
		visited:  make(map[string]bool),
	}
	if err := s.scan(".", 1); err != nil {
		return nil, fmt.Errorf("directory scan failed: %w", err)
	}
	return s.results, nil
}

type markdownScanner struct {
	root     *os.Root
	maxDepth int
	visited  map[string]bool
	results  []FileInfo
}

func (s *markdownScanner) scan(relativePath string, depth int) error {
	if depth > s.maxDepth {
		return nil
	}

	// Loop protection for symlinked directories
	cleanPath := filepath.Clean(relativePath)
	if s.visited[cleanPath] {
		return nil
	}
	s.visited[cleanPath] = true

	dirName := filepath.Base(relativePath)
	if dirName != "." && strings.HasPrefix(dirName, ".") {
		return nil
	}

	dir, err := s.root.Open(relativePath)
	if err != nil {
		return nil // skip unreadable directories
	}
	entries, err := dir.ReadDir(-1)
	dir.Close()
	if err != nil {
		return nil
	}

	for _, entry := range entries {
		entryPath := filepath.Join(relativePath, entry.Name())

		if entry.IsDir() {
			if err := s.scan(entryPath, depth+1); err != nil {
				return err
			}
			continue
		}

		if !IsMarkdownFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		s.results = append(s.results, FileInfo{
			Name: entry.Name(),
			Path: entryPath,
			Size: info.Size(),
		})
	}

	return nil
}
