package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Secrets file handling (paths relative to ProjectRoot)
	SecretsFile    string
	SecretsExample string
	AccountsFile   string

	// Length TENDERLY_URL must exceed before the monitor network is added
	MonitorURLMinLength int

	// Output settings
	Format string
	Out    string

	// Execution settings
	Debug          bool
	NonInteractive bool
}
