package accounts

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/trebuchet-org/forkcfg/internal/config"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Environment variables that may hold a comma-separated key list
var listEnvVars = []string{"FORKCFG_ACCOUNTS", "ACCOUNT_PRIVATE_KEYS"}

// Source supplies the private keys attached to the monitor network. Keys are
// passed through untouched; validation is left to the consuming framework.
type Source struct {
	fs   afero.Fs
	path string
	log  *slog.Logger
}

// NewSource creates an account source reading the configured accounts file
func NewSource(fs afero.Fs, cfg *domainconfig.RuntimeConfig, log *slog.Logger) *Source {
	path := cfg.AccountsFile
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.ProjectRoot, path)
	}
	return &Source{fs: fs, path: path, log: log}
}

// Accounts implements config.AccountSource
func (s *Source) Accounts(env config.Env) []string {
	entries, err := s.Entries(env)
	if err != nil {
		s.log.Warn("failed to load accounts", "path", s.path, "error", err)
		return nil
	}
	return lo.Map(entries, func(e domainconfig.AccountEntry, _ int) string { return e.PrivateKey })
}

// Entries returns named accounts from the environment list or, failing
// that, from the accounts file. A missing file yields no accounts.
func (s *Source) Entries(env config.Env) ([]domainconfig.AccountEntry, error) {
	for _, key := range listEnvVars {
		if raw := strings.TrimSpace(env.Lookup(key)); raw != "" {
			return parseList(raw), nil
		}
	}

	if s.path == "" {
		return nil, nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if exists, _ := afero.Exists(s.fs, s.path); !exists {
			s.log.Debug("no accounts file", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var entries []domainconfig.AccountEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse accounts file %s: %w", s.path, err)
	}

	for i := range entries {
		entries[i].PrivateKey = env.Expand(entries[i].PrivateKey)
		if entries[i].Name == "" {
			entries[i].Name = fmt.Sprintf("account%d", i)
		}
	}
	return entries, nil
}

func parseList(raw string) []domainconfig.AccountEntry {
	parts := lo.Compact(lo.Map(strings.Split(raw, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
	return lo.Map(parts, func(key string, i int) domainconfig.AccountEntry {
		return domainconfig.AccountEntry{Name: fmt.Sprintf("account%d", i), PrivateKey: key}
	})
}

// Describe loads the accounts for env and derives their addresses
func (s *Source) Describe(env config.Env) ([]domainconfig.AccountInfo, error) {
	entries, err := s.Entries(env)
	if err != nil {
		return nil, err
	}
	return Describe(entries), nil
}
