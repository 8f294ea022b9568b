package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/registry"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print one standards document",
	Long: `Prints the document registered under the given key, rendered as
markdown for the terminal. Keys are unique across all namespaces, so no
namespace needs to be given.`,
	Args: cobra.ExactArgs(1),
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

		content, err := reg.Resolve(ns, args[0])
		if err != nil {
			return err
		}

		if showRaw {
			cmd.Print(content)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// Degrade to raw output on terminals glamour can't handle
			logger.Warn("Markdown renderer unavailable, printing raw", "error", err)
			cmd.Print(content)
			return nil
		}

		rendered, err := renderer.Render(content)
		if err != nil {
			cmd.Print(content)
			return nil
		}
		cmd.Print(strings.TrimLeft(rendered, "\n"))
		return nil
	},
}

// findNamespace locates the namespace a key is registered under. Keys are
// disjoint across namespaces.
func findNamespace(key string) (registry.Namespace, bool) {
	for _, ns := range registry.Namespaces() {
		if _, ok := registry.Lookup(ns, key); ok {
			return ns, true
		}
	}
	return "", false
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print raw markdown without rendering")
	rootCmd.AddCommand(showCmd)
}
