package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// projectMarkers identify the root of a project the record is assembled for
var projectMarkers = []string{
	DefaultSecretsExample,
	"hardhat.config.ts",
	"hardhat.config.js",
	"foundry.toml",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:         projectRoot,
		SecretsFile:         v.GetString("secrets_file"),
		SecretsExample:      v.GetString("secrets_example"),
		AccountsFile:        v.GetString("accounts_file"),
		MonitorURLMinLength: v.GetInt("monitor_url_min_length"),
		Format:              v.GetString("format"),
		Out:                 v.GetString("out"),
		Debug:               v.GetBool("debug"),
		NonInteractive:      v.GetBool("non_interactive"),
	}

	if cfg.MonitorURLMinLength < 0 {
		return nil, fmt.Errorf("monitor_url_min_length must not be negative, got %d", cfg.MonitorURLMinLength)
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a project
// marker. If none is found the current directory is used.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Optional local overrides
	v.SetConfigName("forkcfg")
	v.SetConfigType("json")
	v.AddConfigPath(projectRoot)

	v.SetEnvPrefix("FORKCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("secrets_file", DefaultSecretsFile)
	v.SetDefault("secrets_example", DefaultSecretsExample)
	v.SetDefault("accounts_file", DefaultAccountsFile)
	v.SetDefault("monitor_url_min_length", DefaultMonitorURLMinLength)
	v.SetDefault("format", "json")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}
