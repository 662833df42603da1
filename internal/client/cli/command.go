package cli

import (
	"context"
	"os"

	"github.com/docuscope/docuscope-cli/internal/client/config"
	"github.com/docuscope/docuscope-cli/internal/logging"
	"github.com/docuscope/docuscope-cli/internal/stub"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the root command with all subcommands attached.
// Running it without a subcommand starts the dashboard.
func NewRootCommand(logger logging.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docuscope",
		Short: "Terminal client for the DocuScope document service.",
		Long: `DocuScope CLI lets you sign in to the DocuScope document service, upload
documents, and manage your personal collection from the terminal. Documents
are analyzed by the backend; this client handles the collection only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			app := NewApp(cfg, logger)
			app.Run(cmd.Context())
			return nil
		},
	}
	// -a/-t/-i/-n/-c are owned by the config package
	rootCmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}

	rootCmd.AddCommand(newStubServerCommand(logger))
	return rootCmd
}

func newStubServerCommand(logger logging.Logger) *cobra.Command {
	var addr, secret string

	cmd := &cobra.Command{
		Use:   "stub-server",
		Short: "Run an in-memory development backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stub.Run(cmd.Context(), addr, secret, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	cmd.Flags().StringVar(&secret, "jwt-secret", "dev-secret", "HS256 signing secret")
	return cmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	logger := logging.NewTextLogger(os.Stderr)
	root := NewRootCommand(logger)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error(context.Background(), "command failed", "error", err)
		os.Exit(1)
	}
}
