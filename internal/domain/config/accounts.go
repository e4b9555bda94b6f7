package config

// AccountEntry is one named credential supplied for the monitor network
type AccountEntry struct {
	Name       string `yaml:"name"`
	PrivateKey string `yaml:"private_key"` //nolint:gosec // holds env var reference, not a literal secret
}

// AccountInfo is the display form of an account
type AccountInfo struct {
	Name    string
	Address string
	Err     error
}
