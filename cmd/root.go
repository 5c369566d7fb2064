package cmd

import (
	"github.com/spf13/cobra"

	configx "github.com/tleroux/orderagent/pkg/config"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "orderagent",
		Short:         "Customer-order lookup chatbot backed by an LLM agent",
		Long:          "orderagent answers a customer's questions about their own orders. An LLM agent calls lookup tools over the customer and order tables, either from a terminal chat loop or behind a small web chat widget.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return configx.LoadEnvFile(envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "path to a .env file")

	rootCmd.AddCommand(
		newChatCmd(),
		newServeCmd(),
		newModelsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
