package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/inkblot/internal/server"
)

// newServeCmd creates the serve command for the local HTTP gallery.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local HTTP gallery that generates art on demand",
		Long: `Serve a local gallery page. Every image is generated fresh per request;
reloading the page shows new pieces, and seeded responses carry their
seed in the X-Inkblot-Seed header so any piece can be regenerated with
the CLI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			return server.New(logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
