package app

import (
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	AssembleConfig *usecase.AssembleConfig
	ExportConfig   *usecase.ExportConfig
	ListNetworks   *usecase.ListNetworks
	ShowNetwork    *usecase.ShowNetwork
	ListAccounts   *usecase.ListAccounts
	SecretsStatus  *usecase.SecretsStatus
	InitSecrets    *usecase.InitSecrets
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	assembleConfig *usecase.AssembleConfig,
	exportConfig *usecase.ExportConfig,
	listNetworks *usecase.ListNetworks,
	showNetwork *usecase.ShowNetwork,
	listAccounts *usecase.ListAccounts,
	secretsStatus *usecase.SecretsStatus,
	initSecrets *usecase.InitSecrets,
) (*App, error) {
	return &App{
		Config:         cfg,
		AssembleConfig: assembleConfig,
		ExportConfig:   exportConfig,
		ListNetworks:   listNetworks,
		ShowNetwork:    showNetwork,
		ListAccounts:   listAccounts,
		SecretsStatus:  secretsStatus,
		InitSecrets:    initSecrets,
	}, nil
}
