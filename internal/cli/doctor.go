package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
	"github.com/k-f-/agentic-dev-standards/pkg/fileops"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that every registered document resolves",
	Long: `Verifies the docs root: every registered key must resolve to a
readable file, and markdown files present on disk but not registered are
reported so they can be added to the tables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetDefault()

		reg, err := openRegistry(logger)
		if err != nil {
			return err
		}
		cmd.Printf("Docs root: %s\n\n", reg.Root())

		registered := make(map[string]bool)
		broken := 0
		for _, ns := range registry.Namespaces() {
			cmd.Println(namespaceTitle(ns))
			for _, e := range registry.Entries(ns) {
				registered[filepath.Clean(e.Path)] = true
				if _, err := reg.Resolve(ns, e.Key); err != nil {
					broken++
					cmd.Printf("  ✗ %s: %v\n", e.Key, err)
					continue
				}
				cmd.Printf("  ✓ %s\n", e.Key)
			}
		}

		// Markdown on disk the tables don't know about
		files, err := fileops.ScanMarkdownDir(reg.Root(), 4)
		if err != nil {
			return fmt.Errorf("failed to scan docs root: %w", err)
		}
		var unregistered []string
		for _, f := range files {
			if !registered[filepath.Clean(f.Path)] {
				unregistered = append(unregistered, f.Path)
			}
		}
		if len(unregistered) > 0 {
			cmd.Println("\nUnregistered markdown files:")
			for _, p := range unregistered {
				cmd.Printf("  ? %s\n", p)
			}
		}

		if broken > 0 {
			return fmt.Errorf("%d registered document(s) failed to resolve", broken)
		}
		cmd.Println("\nAll registered documents resolve.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
