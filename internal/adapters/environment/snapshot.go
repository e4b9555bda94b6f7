package environment

import (
	"github.com/trebuchet-org/forkcfg/internal/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// ProcessEnvAdapter snapshots the process environment
type ProcessEnvAdapter struct {
	overrides map[string]string
}

// NewProcessEnvAdapter creates a new process environment adapter
func NewProcessEnvAdapter() *ProcessEnvAdapter {
	return &ProcessEnvAdapter{}
}

// NewStaticEnvAdapter creates an adapter that layers values over the
// process environment
func NewStaticEnvAdapter(values map[string]string) *ProcessEnvAdapter {
	return &ProcessEnvAdapter{overrides: values}
}

// Snapshot returns a copy of the current environment
func (a *ProcessEnvAdapter) Snapshot() config.Env {
	return config.Env(a.overrides).Underlay(config.EnvFromOS())
}

// Ensure the adapter implements the interface
var _ usecase.EnvironmentProvider = (*ProcessEnvAdapter)(nil)
