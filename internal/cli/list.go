package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	keyStyle = lipgloss.NewStyle().
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available standards documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetDefault()

		reg, err := openRegistry(logger)
		if err != nil {
			return err
		}

		var b strings.Builder
		for _, ns := range registry.Namespaces() {
			b.WriteString(headingStyle.Render(namespaceTitle(ns)) + "\n")
			for _, e := range registry.Entries(ns) {
				desc := entryDescription(reg, e)
				fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(e.Key), descStyle.Render(desc))
			}
			b.WriteString("\n")
		}
		cmd.Print(b.String())
		return nil
	},
}

// entryDescription prefers the description in the document's frontmatter,
// falling back to the registered one when the file is absent or carries none.
func entryDescription(reg *registry.Registry, e registry.Entry) string {
	meta, err := registry.ReadMeta(filepath.Join(reg.Root(), e.Path))
	if err == nil && meta.Description != "" {
		return meta.Description
	}
	return e.Description
}

func namespaceTitle(ns registry.Namespace) string {
	switch ns {
	case registry.NamespaceCore:
		return "Core standards"
	case registry.NamespaceWorkflow:
		return "Workflow patterns"
	case registry.NamespaceIntegration:
		return "Integration guides"
	default:
		return "Documents"
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
