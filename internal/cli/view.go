package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
	"github.com/k-f-/agentic-dev-standards/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view <key>",
	Short: "Open a standards document in a scrollable viewer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetDefault()

		reg, err := openRegistry(logger)
		if err != nil {
			return err
		}

		ns, ok := findNamespace(args[0])
		if !ok {
			return fmt.Errorf("%q is not a registered document key (try 'agentstd list')", args[0])
		}

		entry, _ := registry.Lookup(ns, args[0])
		meta, err := registry.ReadMeta(filepath.Join(reg.Root(), entry.Path))
		if err != nil {
			return err
		}

		subtitle := meta.Description
		if subtitle == "" {
			subtitle = entry.Description
		}

		model := ui.NewDocViewer(entry.Key, subtitle, meta.Body, logger)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("viewer failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
