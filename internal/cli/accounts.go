package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forkcfg/internal/cli/render"
)

// NewAccountsCmd creates the accounts command
func NewAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts attached to the monitor network",
		Long: `List the accounts the tenderly-monitor network is configured with,
along with the address each private key controls.

Accounts come from FORKCFG_ACCOUNTS or ACCOUNT_PRIVATE_KEYS (comma
separated keys) or from the accounts file (scripts/address-list.yaml by
default). Private keys are never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListAccounts.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewAccountsRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.Render(result)
		},
	}
}
