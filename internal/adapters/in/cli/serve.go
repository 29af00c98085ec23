package cli

import (
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the index page and the host page",
		Long: `Serves GET / with the static index page and GET /host with the
machine's host name. Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			kernel, err := newKernel(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer kernel.Close()

			return kernel.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default \":80\")")

	return cmd
}
