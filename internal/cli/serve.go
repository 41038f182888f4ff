package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/internal/server"
)

// serveCommand creates the serve command for running the preferences service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout preferences HTTP service",
		Long: `Run the layout preferences HTTP service.

The service exposes saved layouts over HTTP:

  GET    /layouts/{key}   fetch a layout document
  PATCH  /layouts/{key}   apply a partial update
  DELETE /layouts/{key}   drop a layout
  GET    /healthz         liveness probe

The store backend (file, memory, redis, mongo) is selected by the config
file. The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			c.Logger.Info("using store backend", "backend", cfg.Store.Backend)
			err = server.New(store, c.Logger).Run(cmd.Context(), addr)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
