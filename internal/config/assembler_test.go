package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
)

const testRoot = "/project"

func newTestAssembler(t *testing.T, fs afero.Fs, accounts []string) (*Assembler, *bytes.Buffer) {
	t.Helper()
	diag := &bytes.Buffer{}
	a := NewAssembler(fs, AssemblerOptions{
		ProjectRoot: testRoot,
		Accounts:    StaticAccounts(accounts),
		Diagnostics: diag,
	})
	return a, diag
}

func writeSecrets(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, testRoot+"/"+DefaultSecretsFile, []byte(content), 0600))
}

func assertFixedFields(t *testing.T, cfg *config.ToolchainConfig) {
	t.Helper()
	assert.Equal(t, "0.8.18", cfg.Solidity.Version)
	assert.True(t, cfg.Solidity.Settings.Optimizer.Enabled)
	assert.Equal(t, 1000, cfg.Solidity.Settings.Optimizer.Runs)

	hardhat, ok := cfg.Networks[config.NetworkHardhat]
	require.True(t, ok, "hardhat network missing")
	require.NotNil(t, hardhat.ChainID)
	assert.Equal(t, uint64(1337), *hardhat.ChainID)
	require.NotNil(t, hardhat.Forking)
	assert.Equal(t, "https://arb1.arbitrum.io/rpc", hardhat.Forking.URL)
	assert.Empty(t, hardhat.URL)

	tenderly, ok := cfg.Networks[config.NetworkTenderly]
	require.True(t, ok, "tenderly network missing")
	assert.Equal(t, config.AccountList{"0x"}, tenderly.Accounts)
}

func TestAssemble_MissingSecretsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, diag := newTestAssembler(t, fs, nil)

	cfg := a.Assemble(Env{})

	assertFixedFields(t, cfg)
	assert.Len(t, cfg.Networks, 2)
	assert.Equal(t, 1, strings.Count(diag.String(), "Warning:"))
	assert.Contains(t, diag.String(), "No .env.hardhat file found, required to use tenderly")
	assert.Contains(t, diag.String(), "Please check .env.hardhat.example for an example")
	assert.Len(t, strings.Split(strings.TrimSpace(diag.String()), "\n"), 2)
}

func TestAssemble_MissingSecretsFileStillUsesAmbientEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, diag := newTestAssembler(t, fs, []string{"0xabc"})

	url := "https://rpc.tenderly.co/fork/abc"
	cfg := a.Assemble(Env{TenderlyURLEnv: url})

	assert.Equal(t, 1, strings.Count(diag.String(), "Warning:"))
	require.Len(t, cfg.Networks, 3)
	assert.Equal(t, url, cfg.Networks[config.NetworkTenderly].URL)
	assert.Equal(t, url, cfg.Networks[config.NetworkMonitor].URL)
}

func TestAssemble_SecretsDirectoryCountsAsMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testRoot+"/"+DefaultSecretsFile, 0755))
	a, diag := newTestAssembler(t, fs, nil)

	cfg := a.Assemble(Env{})

	assert.Len(t, cfg.Networks, 2)
	assert.Equal(t, 1, strings.Count(diag.String(), "Warning:"))
}

func TestAssemble_MonitorNetworkThreshold(t *testing.T) {
	accounts := []string{"0x1111", "0x2222"}

	tests := []struct {
		name        string
		env         Env
		wantMonitor bool
	}{
		{name: "unset", env: Env{}, wantMonitor: false},
		{name: "empty", env: Env{TenderlyURLEnv: ""}, wantMonitor: false},
		{name: "short", env: Env{TenderlyURLEnv: "http://x"}, wantMonitor: false},
		{name: "exactly ten", env: Env{TenderlyURLEnv: strings.Repeat("a", 10)}, wantMonitor: false},
		{name: "eleven", env: Env{TenderlyURLEnv: strings.Repeat("a", 11)}, wantMonitor: true},
		{name: "real url", env: Env{TenderlyURLEnv: "https://rpc.tenderly.co/fork/0123"}, wantMonitor: true},
		{name: "six accented runes", env: Env{TenderlyURLEnv: "éééééé"}, wantMonitor: false},
		{name: "eleven accented runes", env: Env{TenderlyURLEnv: strings.Repeat("é", 11)}, wantMonitor: true},
		{name: "five astral runes count double", env: Env{TenderlyURLEnv: strings.Repeat("😀", 5)}, wantMonitor: false},
		{name: "six astral runes count double", env: Env{TenderlyURLEnv: strings.Repeat("😀", 6)}, wantMonitor: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeSecrets(t, fs, "# empty\n")
			a, diag := newTestAssembler(t, fs, accounts)

			cfg := a.Assemble(tt.env)

			assertFixedFields(t, cfg)
			assert.Empty(t, diag.String())

			monitor, ok := cfg.Networks[config.NetworkMonitor]
			if !tt.wantMonitor {
				assert.False(t, ok)
				assert.Len(t, cfg.Networks, 2)
				return
			}

			require.True(t, ok)
			assert.Len(t, cfg.Networks, 3)
			assert.Equal(t, tt.env[TenderlyURLEnv], monitor.URL)
			assert.Equal(t, config.AccountList(accounts), monitor.Accounts)
		})
	}
}

func TestAssemble_SecretsFileValues(t *testing.T) {
	t.Run("file supplies missing values", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSecrets(t, fs, "TENDERLY_URL=https://rpc.tenderly.co/fork/from-file\n")
		a, diag := newTestAssembler(t, fs, nil)

		cfg := a.Assemble(Env{})

		assert.Empty(t, diag.String())
		require.Len(t, cfg.Networks, 3)
		assert.Equal(t, "https://rpc.tenderly.co/fork/from-file", cfg.Networks[config.NetworkTenderly].URL)
	})

	t.Run("ambient environment wins over file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSecrets(t, fs, "TENDERLY_URL=https://rpc.tenderly.co/fork/from-file\n")
		a, _ := newTestAssembler(t, fs, nil)

		cfg := a.Assemble(Env{TenderlyURLEnv: "https://rpc.tenderly.co/fork/ambient"})

		assert.Equal(t, "https://rpc.tenderly.co/fork/ambient", cfg.Networks[config.NetworkMonitor].URL)
	})

	t.Run("input snapshot is not mutated", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSecrets(t, fs, "TENDERLY_URL=https://rpc.tenderly.co/fork/from-file\nOTHER=1\n")
		a, _ := newTestAssembler(t, fs, nil)

		env := Env{"HOME": "/root"}
		a.Assemble(env)

		assert.Equal(t, Env{"HOME": "/root"}, env)
	})
}

func TestAssemble_AccountSourceSeesMergedEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSecrets(t, fs, "TENDERLY_URL=https://rpc.tenderly.co/fork/abc\nDEPLOYER_KEY=0xfeed\n")

	var seen Env
	src := accountSourceFunc(func(env Env) []string {
		seen = env
		return []string{env.Lookup("DEPLOYER_KEY")}
	})
	a := NewAssembler(fs, AssemblerOptions{ProjectRoot: testRoot, Accounts: src})

	cfg := a.Assemble(Env{})

	assert.Equal(t, "0xfeed", seen.Lookup("DEPLOYER_KEY"))
	assert.Equal(t, config.AccountList{"0xfeed"}, cfg.Networks[config.NetworkMonitor].Accounts)
}

func TestAssemble_CustomThreshold(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSecrets(t, fs, "")
	a := NewAssembler(fs, AssemblerOptions{ProjectRoot: testRoot, MonitorURLMinLength: 40})

	cfg := a.Assemble(Env{TenderlyURLEnv: "https://rpc.tenderly.co/fork/abc"})
	assert.Len(t, cfg.Networks, 2)
}

func TestAssemble_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSecrets(t, fs, "TENDERLY_URL=https://rpc.tenderly.co/fork/abc\n")
	a, _ := newTestAssembler(t, fs, []string{"0x01"})

	env := Env{"FOO": "bar"}
	first := a.Assemble(env)
	second := a.Assemble(env)

	assert.Equal(t, first, second)

	// Records do not share mutable state
	first.Networks[config.NetworkTenderly].Accounts[0] = "changed"
	assert.Equal(t, config.AccountList{"0x"}, second.Networks[config.NetworkTenderly].Accounts)
}

func TestAssemble_EmptyAccountSourceKeepsAccountsDefined(t *testing.T) {
	for name, src := range map[string]AccountSource{
		"nil list":   StaticAccounts(nil),
		"empty list": StaticAccounts([]string{}),
	} {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeSecrets(t, fs, "")
			a := NewAssembler(fs, AssemblerOptions{ProjectRoot: testRoot, Accounts: src})

			cfg := a.Assemble(Env{TenderlyURLEnv: "https://rpc.tenderly.co/fork/abc"})

			monitor, ok := cfg.Networks[config.NetworkMonitor]
			require.True(t, ok)
			assert.NotNil(t, monitor.Accounts)
			assert.Empty(t, monitor.Accounts)
		})
	}
}

func TestMonitorEnabled(t *testing.T) {
	assert.False(t, MonitorEnabled("", DefaultMonitorURLMinLength))
	assert.False(t, MonitorEnabled("0123456789", DefaultMonitorURLMinLength))
	assert.True(t, MonitorEnabled("0123456789a", DefaultMonitorURLMinLength))
	assert.False(t, MonitorEnabled("éééééé", 6))
	assert.True(t, MonitorEnabled("ééééééé", 6))
	assert.True(t, MonitorEnabled("😀😀😀😀", 7))
}

type accountSourceFunc func(Env) []string

func (f accountSourceFunc) Accounts(env Env) []string { return f(env) }
