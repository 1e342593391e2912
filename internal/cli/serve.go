package cli

import (
	"github.com/spf13/cobra"

	"github.com/npmscout/npmscout/internal/server"
)

// serveCommand creates the "serve" subcommand.
func (c *CLI) serveCommand() *cobra.Command {
	addr := "127.0.0.1:8720"

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the research operations as a JSON HTTP API",
		Long: `Run an HTTP server exposing every npmscout operation as a JSON
endpoint under /v1. Intended as a callable-tool backend for assistants
and scripts.

Examples:
  npmscout serve
  npmscout serve --addr 0.0.0.0:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(c.cfg, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", addr, "listen address")
	return cmd
}
