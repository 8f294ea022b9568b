package cli

import (
	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/mcp"
	"github.com/k-f-/agentic-dev-standards/internal/search"
)

var (
	searchMaxResults   int
	searchContextLines int
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search all standards documents for a keyword",
	Long: `Case-insensitive substring search across every registered document.
Matches are reported in document order with surrounding context lines.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetDefault()

		reg, err := openRegistry(logger)
		if err != nil {
			return err
		}

		engine := search.NewEngine(reg, logger)
		matches, err := engine.Search(args[0], searchMaxResults, searchContextLines)
		if err != nil {
			return err
		}

		cmd.Println(mcp.FormatSearchReport(args[0], matches))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchMaxResults, "max-results", search.DefaultMaxResults, "maximum number of matches to report")
	searchCmd.Flags().IntVar(&searchContextLines, "context", search.DefaultContextLines, "lines of context around each match")
	rootCmd.AddCommand(searchCmd)
}
