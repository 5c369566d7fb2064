package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	configx "github.com/tleroux/orderagent/pkg/config"
	serverx "github.com/tleroux/orderagent/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web chat widget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := wireApp(ctx)
			if err != nil {
				return err
			}

			serverCfg, err := configx.New[serverx.Config]("SERVER")
			if err != nil {
				return err
			}

			return serverx.New(*serverCfg, a.assistant, a.store).Start(ctx)
		},
	}
}
