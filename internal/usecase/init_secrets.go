package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/trebuchet-org/forkcfg/internal/config"
	"github.com/trebuchet-org/forkcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// defaultSecretsTemplate is used when no example file is checked in
var defaultSecretsTemplate = map[string]string{
	config.TenderlyURLEnv: "",
}

// InitSecretsParams contains parameters for creating the secrets file
type InitSecretsParams struct {
	Force  bool
	Values map[string]string // KEY=VALUE pairs given on the command line
}

// InitSecretsResult contains the result of creating the secrets file
type InitSecretsResult struct {
	Path        string
	FromExample bool
	Overwritten bool
	Keys        []string
}

// InitSecrets is a use case for creating the secrets file from its example
type InitSecrets struct {
	cfg      *domainconfig.RuntimeConfig
	secrets  SecretsStore
	prompter ValuePrompter
}

// NewInitSecrets creates a new InitSecrets use case
func NewInitSecrets(cfg *domainconfig.RuntimeConfig, secrets SecretsStore, prompter ValuePrompter) *InitSecrets {
	return &InitSecrets{
		cfg:      cfg,
		secrets:  secrets,
		prompter: prompter,
	}
}

// Run executes the use case
func (uc *InitSecrets) Run(ctx context.Context, params InitSecretsParams) (*InitSecretsResult, error) {
	exists := uc.secrets.Exists(ctx)
	if exists && !params.Force {
		return nil, fmt.Errorf("%s %w (use --force to overwrite)", uc.secrets.Path(), domain.ErrAlreadyExists)
	}

	result := &InitSecretsResult{
		Path:        uc.secrets.Path(),
		Overwritten: exists,
	}

	values := lo.Assign(defaultSecretsTemplate)
	if uc.secrets.ExampleExists(ctx) {
		example, err := uc.secrets.ReadExample(ctx)
		if err != nil {
			return nil, err
		}
		values = example
		result.FromExample = true
	}
	values = lo.Assign(values, params.Values)

	keys := lo.Keys(values)
	slices.Sort(keys)

	if !uc.cfg.NonInteractive && uc.prompter != nil {
		for _, key := range keys {
			if _, given := params.Values[key]; given {
				continue
			}
			value, err := uc.prompter.PromptValue(ctx, key, values[key])
			if err != nil {
				return nil, fmt.Errorf("failed to read value for %s: %w", key, err)
			}
			values[key] = value
		}
	}

	if err := uc.secrets.Write(ctx, values); err != nil {
		return nil, err
	}

	result.Keys = keys
	return result, nil
}
