package config

// Well-known network names in the assembled toolchain config
const (
	NetworkHardhat  = "hardhat"
	NetworkTenderly = "tenderly"
	NetworkMonitor  = "tenderly-monitor"
)

// ToolchainConfig is the configuration record handed to the external
// build/test/deploy framework. It is assembled once per invocation and
// must not be mutated afterwards.
type ToolchainConfig struct {
	Solidity SolidityConfig           `json:"solidity" yaml:"solidity" toml:"solidity"`
	Networks map[string]NetworkConfig `json:"networks" yaml:"networks" toml:"networks"`
}

// SolidityConfig holds compiler settings
type SolidityConfig struct {
	Version  string           `json:"version" yaml:"version" toml:"version"`
	Settings CompilerSettings `json:"settings" yaml:"settings" toml:"settings"`
}

// CompilerSettings mirrors the framework's solidity.settings block
type CompilerSettings struct {
	Optimizer OptimizerConfig `json:"optimizer" yaml:"optimizer" toml:"optimizer"`
}

// OptimizerConfig holds optimizer flags
type OptimizerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs" toml:"runs"`
}

// NetworkConfig describes one network the framework can target.
// Every field is optional; the consumer decides what is acceptable.
type NetworkConfig struct {
	URL      string         `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	ChainID  *uint64        `json:"chainId,omitempty" yaml:"chainId,omitempty" toml:"chainId,omitempty"`
	Accounts AccountList    `json:"accounts,omitzero" yaml:"accounts,omitempty" toml:"accounts"`
	Forking  *ForkingConfig `json:"forking,omitempty" yaml:"forking,omitempty" toml:"forking,omitempty"`
}

// AccountList is the ordered credential list of a network. A nil list means
// the network defines no accounts and is left out of encoded output; an
// empty non-nil list is encoded as [] so the consumer gets no signers
// instead of the node's own accounts.
type AccountList []string

// IsZero reports whether the list is undefined. encoding/json (omitzero)
// and yaml.v3 (omitempty) consult it when deciding to drop the field.
func (a AccountList) IsZero() bool {
	return a == nil
}

// ForkingConfig points a local simulated network at a remote RPC
type ForkingConfig struct {
	URL string `json:"url" yaml:"url" toml:"url"`
}

// IsFork reports whether the network forks from a remote endpoint
func (n NetworkConfig) IsFork() bool {
	return n.Forking != nil && n.Forking.URL != ""
}

// Endpoint returns the RPC URL the network talks to, falling back to the
// fork source for local forks.
func (n NetworkConfig) Endpoint() string {
	if n.URL != "" {
		return n.URL
	}
	if n.Forking != nil {
		return n.Forking.URL
	}
	return ""
}
