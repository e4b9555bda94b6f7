package usecase

import (
	"context"

	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// AssembleConfigResult contains the assembled record and where it came from
type AssembleConfigResult struct {
	Config       *domainconfig.ToolchainConfig
	SecretsPath  string
	SecretsFound bool
}

// AssembleConfig is a use case for building the toolchain config record
type AssembleConfig struct {
	env       EnvironmentProvider
	assembler ConfigAssembler
	secrets   SecretsStore
}

// NewAssembleConfig creates a new AssembleConfig use case
func NewAssembleConfig(env EnvironmentProvider, assembler ConfigAssembler, secrets SecretsStore) *AssembleConfig {
	return &AssembleConfig{
		env:       env,
		assembler: assembler,
		secrets:   secrets,
	}
}

// Run executes the use case
func (uc *AssembleConfig) Run(ctx context.Context) (*AssembleConfigResult, error) {
	found := uc.secrets.Exists(ctx)
	cfg := uc.assembler.Assemble(uc.env.Snapshot())

	return &AssembleConfigResult{
		Config:       cfg,
		SecretsPath:  uc.assembler.SecretsPath(),
		SecretsFound: found,
	}, nil
}
