package cli

import (
	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/mcp"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Runs the Model Context Protocol server over stdin/stdout. This is the
command an MCP-capable AI assistant configures as its standards server; it
reads JSON-RPC requests from stdin until EOF.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetDefault()

		reg, err := openRegistry(logger)
		if err != nil {
			return err
		}

		return mcp.NewServer(reg, logger, Version).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
