package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/forkcfg/internal/app"
	"github.com/trebuchet-org/forkcfg/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forkcfg",
		Short: "Assemble the toolchain config for local and forked networks",
		Long: `forkcfg builds the smart contract toolchain configuration record from
the process environment and the optional .env.hardhat secrets file.

The record pins the compiler, defines a local network forked from
Arbitrum One, a placeholder tenderly network and, when TENDERLY_URL is
set, a tenderly-monitor network carrying the configured accounts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := resolveProjectRoot(cmd)
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, appInstance))

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("root", "", "Project root (defaults to the nearest directory with a project marker)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	configCmd := NewConfigCmd()
	configCmd.GroupID = "main"
	rootCmd.AddCommand(configCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	accountsCmd := NewAccountsCmd()
	accountsCmd.GroupID = "management"
	rootCmd.AddCommand(accountsCmd)

	secretsCmd := NewSecretsCmd()
	secretsCmd.GroupID = "management"
	rootCmd.AddCommand(secretsCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// resolveProjectRoot returns --root when given, otherwise the discovered root
func resolveProjectRoot(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("root"); f != nil && f.Changed {
		return filepath.Abs(f.Value.String())
	}
	return config.FindProjectRoot()
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("root"); f != nil && f.Changed {
		v.Set("project_root", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
