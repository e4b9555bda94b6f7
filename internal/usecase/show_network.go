package usecase

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"github.com/trebuchet-org/forkcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// ShowNetworkResult contains a single network descriptor
type ShowNetworkResult struct {
	Name    string
	Network domainconfig.NetworkConfig
	Summary NetworkSummary
}

// ShowNetwork is a use case for inspecting one network in the record
type ShowNetwork struct {
	assemble *AssembleConfig
	matcher  NameMatcher
}

// NewShowNetwork creates a new ShowNetwork use case
func NewShowNetwork(assemble *AssembleConfig, matcher NameMatcher) *ShowNetwork {
	return &ShowNetwork{
		assemble: assemble,
		matcher:  matcher,
	}
}

// Run executes the use case
func (uc *ShowNetwork) Run(ctx context.Context, name string) (*ShowNetworkResult, error) {
	assembled, err := uc.assemble.Run(ctx)
	if err != nil {
		return nil, err
	}

	network, ok := assembled.Config.Networks[name]
	if !ok {
		names := lo.Keys(assembled.Config.Networks)
		slices.Sort(names)
		return nil, domain.NetworkNotFoundErr{
			Name:        name,
			Suggestions: uc.matcher.Suggest(name, names),
		}
	}

	return &ShowNetworkResult{
		Name:    name,
		Network: network,
		Summary: Summarize(name, network),
	}, nil
}
