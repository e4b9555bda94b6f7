package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forkcfg/internal/cli/render"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// NewSecretsCmd creates the secrets command
func NewSecretsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Inspect or create the secrets file",
		Long: `Inspect or create the .env.hardhat secrets file.

Available subcommands:
  secrets status   Show which keys are set and where they come from
  secrets init     Create the secrets file from its example

When run without subcommands, shows the status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSecretsStatus(cmd)
		},
	}

	cmd.AddCommand(NewSecretsStatusCmd())
	cmd.AddCommand(NewSecretsInitCmd())

	return cmd
}

// NewSecretsStatusCmd creates the secrets status subcommand
func NewSecretsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the secrets file status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSecretsStatus(cmd)
		},
	}
}

// NewSecretsInitCmd creates the secrets init subcommand
func NewSecretsInitCmd() *cobra.Command {
	var force bool
	var set []string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the secrets file from its example",
		Long: `Create the .env.hardhat secrets file.

The keys come from .env.hardhat.example when it exists. Values given
with --set are used as is, the others are prompted for unless
--non-interactive is set.

Examples:
  forkcfg secrets init
  forkcfg secrets init --set TENDERLY_URL=https://rpc.tenderly.co/fork/abc --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			values, err := parseAssignments(set)
			if err != nil {
				return err
			}

			result, err := app.InitSecrets.Run(cmd.Context(), usecase.InitSecretsParams{
				Force:  force,
				Values: values,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSecretsRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot)
			return renderer.RenderInit(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing secrets file")
	cmd.Flags().StringArrayVar(&set, "set", nil, "Set a value (KEY=VALUE), can be repeated")

	return cmd
}

func showSecretsStatus(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.SecretsStatus.Run(cmd.Context())
	if err != nil {
		return err
	}

	renderer := render.NewSecretsRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot)
	return renderer.RenderStatus(result)
}

// parseAssignments parses KEY=VALUE pairs
func parseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected KEY=VALUE", pair)
		}
		values[key] = value
	}
	return values, nil
}
