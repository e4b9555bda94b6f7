package config

// FoundryConfig is the foundry.toml fragment rendered from a ToolchainConfig
// for projects that also drive the record through Foundry.
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints,omitempty"`
}

// ProfileConfig represents a profile's compiler settings
type ProfileConfig struct {
	SolcVersion   string `toml:"solc_version,omitempty"`
	Optimizer     bool   `toml:"optimizer"`
	OptimizerRuns int    `toml:"optimizer_runs,omitempty"`
}
