// Package cli defines the agentstd command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/config"
	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
)

// docsRootFlag overrides documents root resolution when set.
var docsRootFlag string

var rootCmd = &cobra.Command{
	Use:   "agentstd",
	Short: "Development standards for AI-assisted coding",
	Long: `agentstd serves a curated collection of development standards, workflow
patterns, and AI tool integration guides - both as an MCP server for AI
coding assistants and as a CLI for humans.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&docsRootFlag, "docs", "", "path to the standards docs directory (default: ./docs, then the synced mirror)")
}

// Execute runs the command tree. Errors are printed once, here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// resolveDocsRoot locates the standards documents directory. Order:
// the --docs flag, a docs directory in the working directory (running from
// a checkout), then the synced mirror.
func resolveDocsRoot() (string, error) {
	if docsRootFlag != "" {
		return docsRootFlag, nil
	}

	if info, err := os.Stat("docs"); err == nil && info.IsDir() {
		abs, err := filepath.Abs("docs")
		if err != nil {
			return "", fmt.Errorf("failed to resolve docs directory: %w", err)
		}
		return abs, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	mirrorDocs := filepath.Join(cfg.MirrorDir, "docs")
	if info, err := os.Stat(mirrorDocs); err == nil && info.IsDir() {
		return mirrorDocs, nil
	}

	return "", fmt.Errorf("no standards documents found: run from a checkout, pass --docs, or run 'agentstd sync' first")
}

// openRegistry resolves the docs root and builds the registry over it.
func openRegistry(logger *logging.AppLogger) (*registry.Registry, error) {
	root, err := resolveDocsRoot()
	if err != nil {
		return nil, err
	}
	return registry.New(root, logger)
}
