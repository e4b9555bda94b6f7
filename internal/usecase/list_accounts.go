package usecase

import (
	"context"
	"fmt"

	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// ListAccountsResult contains the accounts attached to the monitor network
type ListAccountsResult struct {
	Accounts []domainconfig.AccountInfo
}

// ListAccounts is a use case for describing the monitor network accounts
type ListAccounts struct {
	env       EnvironmentProvider
	secrets   SecretsStore
	describer AccountDescriber
}

// NewListAccounts creates a new ListAccounts use case
func NewListAccounts(env EnvironmentProvider, secrets SecretsStore, describer AccountDescriber) *ListAccounts {
	return &ListAccounts{
		env:       env,
		secrets:   secrets,
		describer: describer,
	}
}

// Run executes the use case
func (uc *ListAccounts) Run(ctx context.Context) (*ListAccountsResult, error) {
	env := uc.env.Snapshot()
	if uc.secrets.Exists(ctx) {
		values, err := uc.secrets.Read(ctx)
		if err != nil {
			return nil, err
		}
		env = env.Underlay(values)
	}

	infos, err := uc.describer.Describe(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return &ListAccountsResult{Accounts: infos}, nil
}
