package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/forkcfg/internal/domain"
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatTOML    = "toml"
	FormatFoundry = "foundry"
)

// RecordEncoderAdapter serializes toolchain configs
type RecordEncoderAdapter struct{}

// NewRecordEncoderAdapter creates a new record encoder
func NewRecordEncoderAdapter() *RecordEncoderAdapter {
	return &RecordEncoderAdapter{}
}

// Formats lists the supported format names
func (e *RecordEncoderAdapter) Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatTOML, FormatFoundry}
}

// Encode serializes cfg in the named format
func (e *RecordEncoderAdapter) Encode(format string, cfg *config.ToolchainConfig) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return encodeTOML(cfg)
	case FormatFoundry:
		return encodeTOML(ToFoundry(cfg))
	default:
		return nil, fmt.Errorf("%w '%s'", domain.ErrUnknownFormat, format)
	}
}

func encodeTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToFoundry converts a record into a foundry.toml fragment. Networks
// without an endpoint are left out of [rpc_endpoints].
func ToFoundry(cfg *config.ToolchainConfig) *config.FoundryConfig {
	out := &config.FoundryConfig{
		Profile: map[string]config.ProfileConfig{
			"default": {
				SolcVersion:   cfg.Solidity.Version,
				Optimizer:     cfg.Solidity.Settings.Optimizer.Enabled,
				OptimizerRuns: cfg.Solidity.Settings.Optimizer.Runs,
			},
		},
		RpcEndpoints: make(map[string]string),
	}

	for name, network := range cfg.Networks {
		if endpoint := network.Endpoint(); endpoint != "" {
			out.RpcEndpoints[name] = endpoint
		}
	}

	return out
}

// Ensure the adapter implements the interface
var _ usecase.RecordEncoder = (*RecordEncoderAdapter)(nil)
