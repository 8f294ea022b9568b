package cli

import (
	"github.com/spf13/cobra"

	"github.com/k-f-/agentic-dev-standards/internal/config"
	"github.com/k-f-/agentic-dev-standards/internal/logging"
	"github.com/k-f-/agentic-dev-standards/internal/repository"
)

var (
	syncToken  string
	syncRemote string
	syncBranch string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Clone or update the local standards mirror",
	Long: `Keeps a local mirror of the standards repository under your data
directory, for machines running an installed binary without a checkout.
Private forks need a GitHub Personal Access Token, stored once with
--token in the OS credential store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetDefault()

		if syncToken != "" {
			creds := repository.NewCredentialManager()
			if err := creds.StoreGitHubToken(syncToken); err != nil {
				return err
			}
			cmd.Println("Token stored in credential store")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if syncRemote != "" && syncRemote != cfg.RemoteURL {
			cfg.RemoteURL = syncRemote
			changed = true
		}
		if cmd.Flags().Changed("branch") && syncBranch != cfg.Branch {
			cfg.Branch = syncBranch
			changed = true
		}

		mirror := repository.NewMirror(cfg.MirrorDir, cfg.RemoteURL, cfg.Branch, logger)
		result, err := mirror.Sync()
		if err != nil {
			return err
		}

		cmd.Printf("Mirror %s: %s (%s)\n", result.Action, result.MirrorDir, result.RemoteURL)

		// Persist remote/branch overrides only after they worked
		if changed {
			if err := cfg.Save(); err != nil {
				logger.Warn("Failed to save config", "error", err)
			}
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncToken, "token", "", "GitHub Personal Access Token to store for private forks")
	syncCmd.Flags().StringVar(&syncRemote, "remote", "", "git remote URL to track (persisted)")
	syncCmd.Flags().StringVar(&syncBranch, "branch", "", "branch to sync (persisted; empty for the remote default)")
	rootCmd.AddCommand(syncCmd)
}
