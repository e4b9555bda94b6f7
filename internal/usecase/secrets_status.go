package usecase

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"github.com/trebuchet-org/forkcfg/internal/config"
)

// SecretKeyStatus reports where a known secrets key is defined
type SecretKeyStatus struct {
	Key    string
	InFile bool
	InEnv  bool
	Value  string // effective value, ambient environment first
}

// SecretsStatusResult contains the state of the secrets file
type SecretsStatusResult struct {
	Path          string
	Exists        bool
	ExamplePath   string
	ExampleExists bool
	Keys          []SecretKeyStatus
}

// SecretsStatus is a use case for inspecting the secrets file
type SecretsStatus struct {
	env     EnvironmentProvider
	secrets SecretsStore
}

// NewSecretsStatus creates a new SecretsStatus use case
func NewSecretsStatus(env EnvironmentProvider, secrets SecretsStore) *SecretsStatus {
	return &SecretsStatus{
		env:     env,
		secrets: secrets,
	}
}

// Run executes the use case
func (uc *SecretsStatus) Run(ctx context.Context) (*SecretsStatusResult, error) {
	result := &SecretsStatusResult{
		Path:          uc.secrets.Path(),
		Exists:        uc.secrets.Exists(ctx),
		ExamplePath:   uc.secrets.ExamplePath(),
		ExampleExists: uc.secrets.ExampleExists(ctx),
	}

	fileValues := map[string]string{}
	if result.Exists {
		values, err := uc.secrets.Read(ctx)
		if err != nil {
			return nil, err
		}
		fileValues = values
	}

	keys := []string{config.TenderlyURLEnv}
	keys = append(keys, lo.Keys(fileValues)...)
	if result.ExampleExists {
		example, err := uc.secrets.ReadExample(ctx)
		if err != nil {
			return nil, err
		}
		keys = append(keys, lo.Keys(example)...)
	}
	keys = lo.Uniq(keys)
	slices.Sort(keys)

	env := uc.env.Snapshot()
	merged := env.Underlay(fileValues)
	result.Keys = lo.Map(keys, func(key string, _ int) SecretKeyStatus {
		_, inFile := fileValues[key]
		_, inEnv := env.Get(key)
		return SecretKeyStatus{
			Key:    key,
			InFile: inFile,
			InEnv:  inEnv,
			Value:  merged.Lookup(key),
		}
	})

	return result, nil
}
