package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forkcfg/internal/cli/render"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the assembled toolchain config",
		Long: `Assemble the toolchain config record and print it.

Formats:
  json     Record as consumed by the toolchain (default)
  yaml     Same record as YAML
  toml     Same record as TOML
  foundry  foundry.toml profile and rpc_endpoints derived from the record

Examples:
  forkcfg config
  forkcfg config --format foundry --out foundry.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ExportConfigParams{
				Format: app.Config.Format,
				Out:    app.Config.Out,
			}
			if cmd.Flags().Changed("format") {
				params.Format = strings.ToLower(format)
			}
			if cmd.Flags().Changed("out") {
				params.Out = out
			}

			result, err := app.ExportConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml, toml, foundry)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}
