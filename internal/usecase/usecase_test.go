package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/forkcfg/internal/adapters/encoding"
	fsadapter "github.com/trebuchet-org/forkcfg/internal/adapters/fs"
	"github.com/trebuchet-org/forkcfg/internal/adapters/interactive"
	"github.com/trebuchet-org/forkcfg/internal/config"
	"github.com/trebuchet-org/forkcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

type staticEnv config.Env

func (e staticEnv) Snapshot() config.Env { return config.Env(e).Underlay(nil) }

// MockPrompter is a mock implementation of ValuePrompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) PromptValue(ctx context.Context, key, current string) (string, error) {
	args := m.Called(ctx, key, current)
	return args.String(0), args.Error(1)
}

// MockDescriber is a mock implementation of AccountDescriber
type MockDescriber struct {
	mock.Mock
}

func (m *MockDescriber) Describe(env config.Env) ([]domainconfig.AccountInfo, error) {
	args := m.Called(env)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainconfig.AccountInfo), args.Error(1)
}

type fixture struct {
	fs       afero.Fs
	cfg      *domainconfig.RuntimeConfig
	diag     *bytes.Buffer
	store    *fsadapter.SecretsStoreAdapter
	writer   *fsadapter.FileWriterAdapter
	assemble *usecase.AssembleConfig
}

func newFixture(env map[string]string) *fixture {
	fs := afero.NewMemMapFs()
	cfg := &domainconfig.RuntimeConfig{
		ProjectRoot:    "/project",
		SecretsFile:    config.DefaultSecretsFile,
		SecretsExample: config.DefaultSecretsExample,
		NonInteractive: true,
	}
	diag := &bytes.Buffer{}
	assembler := config.NewAssembler(fs, config.AssemblerOptions{
		ProjectRoot: cfg.ProjectRoot,
		Accounts:    config.StaticAccounts{"0xmonitor"},
		Diagnostics: diag,
	})
	store := fsadapter.NewSecretsStoreAdapter(fs, cfg)
	return &fixture{
		fs:       fs,
		cfg:      cfg,
		diag:     diag,
		store:    store,
		writer:   fsadapter.NewFileWriterAdapter(fs, cfg),
		assemble: usecase.NewAssembleConfig(staticEnv(env), assembler, store),
	}
}

func (f *fixture) writeSecrets(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, "/project/.env.hardhat", []byte(content), 0600))
}

func TestAssembleConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("without secrets file", func(t *testing.T) {
		f := newFixture(nil)

		result, err := f.assemble.Run(ctx)
		require.NoError(t, err)

		assert.False(t, result.SecretsFound)
		assert.Equal(t, "/project/.env.hardhat", result.SecretsPath)
		assert.Len(t, result.Config.Networks, 2)
		assert.Contains(t, f.diag.String(), "No .env.hardhat file found")
	})

	t.Run("with secrets file enabling monitor", func(t *testing.T) {
		f := newFixture(nil)
		f.writeSecrets(t, "TENDERLY_URL=https://rpc.tenderly.co/fork/abc\n")

		result, err := f.assemble.Run(ctx)
		require.NoError(t, err)

		assert.True(t, result.SecretsFound)
		require.Len(t, result.Config.Networks, 3)
		assert.Equal(t, domainconfig.AccountList{"0xmonitor"}, result.Config.Networks[domainconfig.NetworkMonitor].Accounts)
		assert.Empty(t, f.diag.String())
	})
}

func TestExportConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("writes output file", func(t *testing.T) {
		f := newFixture(map[string]string{"TENDERLY_URL": "https://rpc.tenderly.co/fork/abc"})
		uc := usecase.NewExportConfig(f.assemble, encoding.NewRecordEncoderAdapter(), f.writer)

		result, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "json", Out: "build/hardhat.json"})
		require.NoError(t, err)

		written, err := afero.ReadFile(f.fs, "/project/build/hardhat.json")
		require.NoError(t, err)
		assert.Equal(t, result.Data, written)
		assert.Contains(t, string(written), `"tenderly-monitor"`)
	})

	t.Run("no output file by default", func(t *testing.T) {
		f := newFixture(nil)
		uc := usecase.NewExportConfig(f.assemble, encoding.NewRecordEncoderAdapter(), f.writer)

		result, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "yaml"})
		require.NoError(t, err)
		assert.Contains(t, string(result.Data), "version: 0.8.18")

		exists, err := afero.DirExists(f.fs, "/project/build")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unknown format fails before assembling", func(t *testing.T) {
		f := newFixture(nil)
		uc := usecase.NewExportConfig(f.assemble, encoding.NewRecordEncoderAdapter(), f.writer)

		_, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "ini"})
		assert.ErrorIs(t, err, domain.ErrUnknownFormat)
		assert.Empty(t, f.diag.String())
	})
}

func TestListNetworks(t *testing.T) {
	f := newFixture(map[string]string{"TENDERLY_URL": "https://rpc.tenderly.co/fork/abc"})
	uc := usecase.NewListNetworks(f.assemble)

	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Networks, 3)
	assert.Equal(t, "hardhat", result.Networks[0].Name)
	assert.Equal(t, usecase.NetworkKindFork, result.Networks[0].Kind)
	assert.Equal(t, "https://arb1.arbitrum.io/rpc", result.Networks[0].Endpoint)
	require.NotNil(t, result.Networks[0].ChainID)
	assert.Equal(t, uint64(1337), *result.Networks[0].ChainID)

	assert.Equal(t, "tenderly", result.Networks[1].Name)
	assert.Equal(t, usecase.NetworkKindRemote, result.Networks[1].Kind)
	assert.Equal(t, 1, result.Networks[1].Accounts)

	assert.Equal(t, "tenderly-monitor", result.Networks[2].Name)
	assert.Equal(t, "https://rpc.tenderly.co/fork/abc", result.Networks[2].Endpoint)
}

func TestShowNetwork(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil)
	uc := usecase.NewShowNetwork(f.assemble, interactive.NewFuzzyMatcherAdapter())

	t.Run("found", func(t *testing.T) {
		result, err := uc.Run(ctx, "hardhat")
		require.NoError(t, err)
		assert.Equal(t, usecase.NetworkKindFork, result.Summary.Kind)
		require.NotNil(t, result.Network.Forking)
	})

	t.Run("not found with suggestions", func(t *testing.T) {
		_, err := uc.Run(ctx, "tendrly")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		var notFound domain.NetworkNotFoundErr
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, []string{"tenderly"}, notFound.Suggestions)
		assert.Contains(t, err.Error(), "did you mean: tenderly?")
	})

	t.Run("monitor absent when url is short", func(t *testing.T) {
		_, err := uc.Run(ctx, "tenderly-monitor")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("secrets file values reach the describer", func(t *testing.T) {
		f := newFixture(map[string]string{"AMBIENT": "1"})
		f.writeSecrets(t, "DEPLOYER_PRIVATE_KEY=0xabc\n")

		describer := &MockDescriber{}
		infos := []domainconfig.AccountInfo{{Name: "deployer", Address: "0x1"}}
		describer.On("Describe", mock.MatchedBy(func(env config.Env) bool {
			return env.Lookup("DEPLOYER_PRIVATE_KEY") == "0xabc" && env.Lookup("AMBIENT") == "1"
		})).Return(infos, nil)

		uc := usecase.NewListAccounts(staticEnv{"AMBIENT": "1"}, f.store, describer)
		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, infos, result.Accounts)
		describer.AssertExpectations(t)
	})

	t.Run("describer errors are wrapped", func(t *testing.T) {
		f := newFixture(nil)
		describer := &MockDescriber{}
		describer.On("Describe", mock.Anything).Return(nil, errors.New("bad yaml"))

		uc := usecase.NewListAccounts(staticEnv{}, f.store, describer)
		_, err := uc.Run(ctx)
		assert.ErrorContains(t, err, "failed to load accounts: bad yaml")
	})
}

func TestSecretsStatus(t *testing.T) {
	f := newFixture(nil)
	f.writeSecrets(t, "TENDERLY_URL=https://rpc.tenderly.co/fork/file\nAPI_KEY=secret\n")
	require.NoError(t, afero.WriteFile(f.fs, "/project/.env.hardhat.example", []byte("TENDERLY_URL=\nEXTRA=\n"), 0644))

	uc := usecase.NewSecretsStatus(staticEnv{"API_KEY": "ambient"}, f.store)
	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Exists)
	assert.True(t, result.ExampleExists)

	keys := make(map[string]usecase.SecretKeyStatus)
	for _, k := range result.Keys {
		keys[k.Key] = k
	}
	require.Len(t, keys, 3)
	assert.Equal(t, usecase.SecretKeyStatus{Key: "API_KEY", InFile: true, InEnv: true, Value: "ambient"}, keys["API_KEY"])
	assert.Equal(t, usecase.SecretKeyStatus{Key: "EXTRA"}, keys["EXTRA"])
	assert.Equal(t, "https://rpc.tenderly.co/fork/file", keys["TENDERLY_URL"].Value)
	assert.Equal(t, "API_KEY", result.Keys[0].Key)
}

func TestInitSecrets(t *testing.T) {
	ctx := context.Background()

	t.Run("from example with values", func(t *testing.T) {
		f := newFixture(nil)
		require.NoError(t, afero.WriteFile(f.fs, "/project/.env.hardhat.example", []byte("TENDERLY_URL=\nAPI_KEY=changeme\n"), 0644))

		uc := usecase.NewInitSecrets(f.cfg, f.store, nil)
		result, err := uc.Run(ctx, usecase.InitSecretsParams{
			Values: map[string]string{"TENDERLY_URL": "https://rpc.tenderly.co/fork/abc"},
		})
		require.NoError(t, err)

		assert.True(t, result.FromExample)
		assert.False(t, result.Overwritten)
		assert.Equal(t, []string{"API_KEY", "TENDERLY_URL"}, result.Keys)

		values, err := f.store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"API_KEY":      "changeme",
			"TENDERLY_URL": "https://rpc.tenderly.co/fork/abc",
		}, values)
	})

	t.Run("built-in template without example", func(t *testing.T) {
		f := newFixture(nil)
		uc := usecase.NewInitSecrets(f.cfg, f.store, nil)

		result, err := uc.Run(ctx, usecase.InitSecretsParams{})
		require.NoError(t, err)
		assert.False(t, result.FromExample)
		assert.Equal(t, []string{"TENDERLY_URL"}, result.Keys)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		f := newFixture(nil)
		f.writeSecrets(t, "TENDERLY_URL=keep\n")
		uc := usecase.NewInitSecrets(f.cfg, f.store, nil)

		_, err := uc.Run(ctx, usecase.InitSecretsParams{})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		values, err := f.store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, "keep", values["TENDERLY_URL"])
	})

	t.Run("force overwrites", func(t *testing.T) {
		f := newFixture(nil)
		f.writeSecrets(t, "TENDERLY_URL=old\n")
		uc := usecase.NewInitSecrets(f.cfg, f.store, nil)

		result, err := uc.Run(ctx, usecase.InitSecretsParams{Force: true, Values: map[string]string{"TENDERLY_URL": "new"}})
		require.NoError(t, err)
		assert.True(t, result.Overwritten)

		values, err := f.store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new", values["TENDERLY_URL"])
	})

	t.Run("prompts for values not given", func(t *testing.T) {
		f := newFixture(nil)
		f.cfg.NonInteractive = false
		require.NoError(t, afero.WriteFile(f.fs, "/project/.env.hardhat.example", []byte("TENDERLY_URL=\nAPI_KEY=changeme\n"), 0644))

		prompter := &MockPrompter{}
		prompter.On("PromptValue", mock.Anything, "API_KEY", "changeme").Return("typed", nil)

		uc := usecase.NewInitSecrets(f.cfg, f.store, prompter)
		_, err := uc.Run(ctx, usecase.InitSecretsParams{Values: map[string]string{"TENDERLY_URL": "given"}})
		require.NoError(t, err)
		prompter.AssertExpectations(t)

		values, err := f.store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, "typed", values["API_KEY"])
		assert.Equal(t, "given", values["TENDERLY_URL"])
	})

	t.Run("prompt errors abort without writing", func(t *testing.T) {
		f := newFixture(nil)
		f.cfg.NonInteractive = false

		prompter := &MockPrompter{}
		prompter.On("PromptValue", mock.Anything, "TENDERLY_URL", "").Return("", errors.New("interrupt"))

		uc := usecase.NewInitSecrets(f.cfg, f.store, prompter)
		_, err := uc.Run(ctx, usecase.InitSecretsParams{})
		assert.ErrorContains(t, err, "interrupt")
		assert.False(t, f.store.Exists(ctx))
	})
}
