package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const (
	// DefaultSecretsFile is the dotenv file holding endpoint URLs and keys
	DefaultSecretsFile = ".env.hardhat"
	// DefaultSecretsExample is the checked-in template for DefaultSecretsFile
	DefaultSecretsExample = ".env.hardhat.example"
	// DefaultAccountsFile lists the accounts attached to the monitor network
	DefaultAccountsFile = "scripts/address-list.yaml"
)

// SecretsFileExists reports whether path exists and is a regular file
func SecretsFileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadSecretsFile parses a KEY=VALUE dotenv file
func ReadSecretsFile(fs afero.Fs, path string) (map[string]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}
