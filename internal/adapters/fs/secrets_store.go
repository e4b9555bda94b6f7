package fs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/trebuchet-org/forkcfg/internal/config"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// SecretsStoreAdapter implements SecretsStore on top of an afero filesystem
type SecretsStoreAdapter struct {
	fs          afero.Fs
	path        string
	examplePath string
}

// NewSecretsStoreAdapter creates a new SecretsStoreAdapter
func NewSecretsStoreAdapter(fs afero.Fs, cfg *domainconfig.RuntimeConfig) *SecretsStoreAdapter {
	return &SecretsStoreAdapter{
		fs:          fs,
		path:        resolve(cfg.ProjectRoot, cfg.SecretsFile, config.DefaultSecretsFile),
		examplePath: resolve(cfg.ProjectRoot, cfg.SecretsExample, config.DefaultSecretsExample),
	}
}

func resolve(root, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// Path returns the path to the secrets file
func (s *SecretsStoreAdapter) Path() string {
	return s.path
}

// ExamplePath returns the path to the example file
func (s *SecretsStoreAdapter) ExamplePath() string {
	return s.examplePath
}

// Exists checks if the secrets file exists
func (s *SecretsStoreAdapter) Exists(ctx context.Context) bool {
	return config.SecretsFileExists(s.fs, s.path)
}

// ExampleExists checks if the example file exists
func (s *SecretsStoreAdapter) ExampleExists(ctx context.Context) bool {
	return config.SecretsFileExists(s.fs, s.examplePath)
}

// Read parses the secrets file
func (s *SecretsStoreAdapter) Read(ctx context.Context) (map[string]string, error) {
	return config.ReadSecretsFile(s.fs, s.path)
}

// ReadExample parses the example file
func (s *SecretsStoreAdapter) ReadExample(ctx context.Context) (map[string]string, error) {
	return config.ReadSecretsFile(s.fs, s.examplePath)
}

// Write replaces the secrets file with values
func (s *SecretsStoreAdapter) Write(ctx context.Context, values map[string]string) error {
	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode secrets: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create secrets directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write secrets file: %w", err)
	}

	return nil
}

// Ensure the adapter implements the interface
var _ usecase.SecretsStore = (*SecretsStoreAdapter)(nil)
