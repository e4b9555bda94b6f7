package adapters

import (
	"io"
	"log/slog"

	"github.com/google/wire"
	"github.com/spf13/afero"
	"github.com/trebuchet-org/forkcfg/internal/adapters/accounts"
	"github.com/trebuchet-org/forkcfg/internal/adapters/encoding"
	"github.com/trebuchet-org/forkcfg/internal/adapters/environment"
	"github.com/trebuchet-org/forkcfg/internal/adapters/fs"
	"github.com/trebuchet-org/forkcfg/internal/adapters/interactive"
	"github.com/trebuchet-org/forkcfg/internal/config"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// ProvideFs provides the operating system filesystem
func ProvideFs() afero.Fs {
	return afero.NewOsFs()
}

// ProvideAssembler provides the config assembler for the project
func ProvideAssembler(
	filesystem afero.Fs,
	cfg *domainconfig.RuntimeConfig,
	source *accounts.Source,
	diag io.Writer,
	log *slog.Logger,
) *config.Assembler {
	return config.NewAssembler(filesystem, config.AssemblerOptions{
		ProjectRoot:         cfg.ProjectRoot,
		SecretsFile:         cfg.SecretsFile,
		SecretsExample:      cfg.SecretsExample,
		MonitorURLMinLength: cfg.MonitorURLMinLength,
		Accounts:            source,
		Diagnostics:         diag,
		Logger:              log,
	})
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	ProvideFs,

	fs.NewSecretsStoreAdapter,
	wire.Bind(new(usecase.SecretsStore), new(*fs.SecretsStoreAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// ConfigSet provides the assembler and its collaborators
var ConfigSet = wire.NewSet(
	accounts.NewSource,
	wire.Bind(new(usecase.AccountDescriber), new(*accounts.Source)),

	ProvideAssembler,
	wire.Bind(new(usecase.ConfigAssembler), new(*config.Assembler)),

	environment.NewProcessEnvAdapter,
	wire.Bind(new(usecase.EnvironmentProvider), new(*environment.ProcessEnvAdapter)),
)

// EncodingSet provides record encoders
var EncodingSet = wire.NewSet(
	encoding.NewRecordEncoderAdapter,
	wire.Bind(new(usecase.RecordEncoder), new(*encoding.RecordEncoderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompterAdapter,
	wire.Bind(new(usecase.ValuePrompter), new(*interactive.PrompterAdapter)),

	interactive.NewFuzzyMatcherAdapter,
	wire.Bind(new(usecase.NameMatcher), new(*interactive.FuzzyMatcherAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ConfigSet,
	EncodingSet,
	InteractiveSet,
)
