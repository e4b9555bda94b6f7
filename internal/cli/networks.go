package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forkcfg/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks in the assembled config",
		Long: `List every network defined by the assembled config record.

Endpoint URLs are shown with their path and query masked, since hosted
RPC providers carry the access key there.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.AddCommand(NewNetworksShowCmd())

	return cmd
}

// NewNetworksShowCmd creates the networks show subcommand
func NewNetworksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <network>",
		Short: "Show one network descriptor",
		Long: `Show a single network from the assembled config.

Examples:
  forkcfg networks show hardhat
  forkcfg networks show tenderly-monitor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowNetwork.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.RenderNetwork(result)
		},
	}
}
