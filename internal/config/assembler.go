package config

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
)

const (
	// SolidityVersion is the compiler version every record pins
	SolidityVersion = "0.8.18"
	// OptimizerRuns is the optimizer run count every record pins
	OptimizerRuns = 1000
	// HardhatChainID is the chain ID of the local fork
	HardhatChainID uint64 = 1337
	// ArbitrumForkURL is the remote RPC the local network forks from
	ArbitrumForkURL = "https://arb1.arbitrum.io/rpc"

	// TenderlyURLEnv names the variable holding the Tenderly endpoint
	TenderlyURLEnv = "TENDERLY_URL"
	// DefaultMonitorURLMinLength is the length TenderlyURLEnv must exceed
	// before the monitor network is added
	DefaultMonitorURLMinLength = 10
)

// placeholderAccounts is what the always-present tenderly network signs with
var placeholderAccounts = []string{"0x"}

var warnStyle = color.New(color.FgYellow)

// AccountSource supplies the credentials attached to the monitor network
type AccountSource interface {
	Accounts(env Env) []string
}

// StaticAccounts is an AccountSource returning a fixed list
type StaticAccounts []string

// Accounts implements AccountSource
func (s StaticAccounts) Accounts(Env) []string {
	return slices.Clone(s)
}

// AssemblerOptions configures an Assembler
type AssemblerOptions struct {
	ProjectRoot         string
	SecretsFile         string
	SecretsExample      string
	MonitorURLMinLength int // zero selects DefaultMonitorURLMinLength
	Accounts            AccountSource
	Diagnostics         io.Writer
	Logger              *slog.Logger
}

// Assembler builds the toolchain config record from an environment snapshot
type Assembler struct {
	fs             afero.Fs
	secretsPath    string
	secretsFile    string
	secretsExample string
	minURLLength   int
	accounts       AccountSource
	diag           io.Writer
	log            *slog.Logger
}

// NewAssembler creates an Assembler reading the secrets file through fs
func NewAssembler(fs afero.Fs, opts AssemblerOptions) *Assembler {
	if opts.SecretsFile == "" {
		opts.SecretsFile = DefaultSecretsFile
	}
	if opts.SecretsExample == "" {
		opts.SecretsExample = DefaultSecretsExample
	}
	if opts.MonitorURLMinLength <= 0 {
		opts.MonitorURLMinLength = DefaultMonitorURLMinLength
	}
	if opts.Accounts == nil {
		opts.Accounts = StaticAccounts(nil)
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	secretsPath := opts.SecretsFile
	if !filepath.IsAbs(secretsPath) && opts.ProjectRoot != "" {
		secretsPath = filepath.Join(opts.ProjectRoot, secretsPath)
	}

	return &Assembler{
		fs:             fs,
		secretsPath:    secretsPath,
		secretsFile:    opts.SecretsFile,
		secretsExample: opts.SecretsExample,
		minURLLength:   opts.MonitorURLMinLength,
		accounts:       opts.Accounts,
		diag:           opts.Diagnostics,
		log:            opts.Logger,
	}
}

// SecretsPath returns the resolved location of the secrets file
func (a *Assembler) SecretsPath() string {
	return a.secretsPath
}

// Assemble produces the toolchain config for env. It never fails: a missing
// or unreadable secrets file only produces diagnostics, and empty values are
// left for the consumer to accept or reject.
func (a *Assembler) Assemble(env Env) *config.ToolchainConfig {
	merged := a.withSecrets(env)

	tenderlyURL, _ := merged.Get(TenderlyURLEnv)

	networks := lo.Assign(a.baseNetworks(tenderlyURL), a.monitorNetwork(merged, tenderlyURL))

	return &config.ToolchainConfig{
		Solidity: config.SolidityConfig{
			Version: SolidityVersion,
			Settings: config.CompilerSettings{
				Optimizer: config.OptimizerConfig{
					Enabled: true,
					Runs:    OptimizerRuns,
				},
			},
		},
		Networks: networks,
	}
}

// withSecrets layers the secrets file under env. Values already in env win.
func (a *Assembler) withSecrets(env Env) Env {
	if !SecretsFileExists(a.fs, a.secretsPath) {
		warnStyle.Fprintf(a.diag, "Warning: No %s file found, required to use tenderly\n", a.secretsFile)
		fmt.Fprintf(a.diag, "Please check %s for an example\n", a.secretsExample)
		return env.Underlay(nil)
	}

	values, err := ReadSecretsFile(a.fs, a.secretsPath)
	if err != nil {
		a.log.Warn("ignoring secrets file", "path", a.secretsPath, "error", err)
		return env.Underlay(nil)
	}

	a.log.Debug("loaded secrets file", "path", a.secretsPath, "keys", len(values))
	return env.Underlay(values)
}

func (a *Assembler) baseNetworks(tenderlyURL string) map[string]config.NetworkConfig {
	chainID := HardhatChainID
	return map[string]config.NetworkConfig{
		config.NetworkHardhat: {
			ChainID: &chainID,
			Forking: &config.ForkingConfig{URL: ArbitrumForkURL},
		},
		config.NetworkTenderly: {
			URL:      tenderlyURL,
			Accounts: slices.Clone(placeholderAccounts),
		},
	}
}

// monitorNetwork returns the optional monitor entry, or an empty map when
// the Tenderly URL is unset or not longer than the configured minimum.
func (a *Assembler) monitorNetwork(env Env, tenderlyURL string) map[string]config.NetworkConfig {
	if !MonitorEnabled(tenderlyURL, a.minURLLength) {
		a.log.Debug("monitor network disabled", "env", TenderlyURLEnv, "length", len(tenderlyURL), "min", a.minURLLength)
		return map[string]config.NetworkConfig{}
	}

	accounts := a.accounts.Accounts(env)
	if accounts == nil {
		accounts = []string{}
	}

	return map[string]config.NetworkConfig{
		config.NetworkMonitor: {
			URL:      tenderlyURL,
			Accounts: accounts,
		},
	}
}

// MonitorEnabled reports whether url is long enough to enable the monitor
// network. Length is counted in UTF-16 code units, as the framework reading
// the same variable does. The comparison is strict: a value of exactly
// minLength is rejected.
func MonitorEnabled(url string, minLength int) bool {
	return len(utf16.Encode([]rune(url))) > minLength
}
