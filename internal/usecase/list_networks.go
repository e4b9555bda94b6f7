package usecase

import (
	"context"
	"slices"

	"github.com/samber/lo"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// NetworkKind classifies a network descriptor
type NetworkKind string

const (
	NetworkKindFork   NetworkKind = "fork"
	NetworkKindRemote NetworkKind = "remote"
)

// NetworkSummary is one row of the networks listing
type NetworkSummary struct {
	Name     string
	Kind     NetworkKind
	Endpoint string
	ChainID  *uint64
	Accounts int
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks     []NetworkSummary
	SecretsFound bool
}

// ListNetworks is a use case for listing the networks in the record
type ListNetworks struct {
	assemble *AssembleConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(assemble *AssembleConfig) *ListNetworks {
	return &ListNetworks{
		assemble: assemble,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	assembled, err := uc.assemble.Run(ctx)
	if err != nil {
		return nil, err
	}

	names := lo.Keys(assembled.Config.Networks)
	slices.Sort(names)

	networks := lo.Map(names, func(name string, _ int) NetworkSummary {
		return Summarize(name, assembled.Config.Networks[name])
	})

	return &ListNetworksResult{
		Networks:     networks,
		SecretsFound: assembled.SecretsFound,
	}, nil
}

// Summarize builds the listing row for a network
func Summarize(name string, n domainconfig.NetworkConfig) NetworkSummary {
	kind := NetworkKindRemote
	if n.IsFork() {
		kind = NetworkKindFork
	}
	return NetworkSummary{
		Name:     name,
		Kind:     kind,
		Endpoint: n.Endpoint(),
		ChainID:  n.ChainID,
		Accounts: len(n.Accounts),
	}
}
