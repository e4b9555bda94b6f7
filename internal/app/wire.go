//go:build wireinject
// +build wireinject

package app

import (
	"io"

	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/forkcfg/internal/adapters"
	"github.com/trebuchet-org/forkcfg/internal/config"
	"github.com/trebuchet-org/forkcfg/internal/logging"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, diag io.Writer) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewAssembleConfig,
		usecase.NewExportConfig,
		usecase.NewListNetworks,
		usecase.NewShowNetwork,
		usecase.NewListAccounts,
		usecase.NewSecretsStatus,
		usecase.NewInitSecrets,

		// App
		NewApp,
	)
	return nil, nil
}
