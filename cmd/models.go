package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	configx "github.com/tleroux/orderagent/pkg/config"
	openrouterx "github.com/tleroux/orderagent/pkg/openrouter"
)

// newModelsCmd lists the models the gateway offers. Doubles as a cheap
// credential check that does not spend a chat turn.
func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models available on the configured gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			routerCfg, err := configx.New[openrouterx.Config]("OPENROUTER")
			if err != nil {
				return err
			}
			client, err := openrouterx.NewClient(*routerCfg)
			if err != nil {
				return err
			}

			page, err := client.Models.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list models: %w", err)
			}
			for _, m := range page.Data {
				fmt.Println(m.ID)
			}
			return nil
		},
	}
}
