package usecase

import (
	"context"

	"github.com/trebuchet-org/forkcfg/internal/config"
	domainconfig "github.com/trebuchet-org/forkcfg/internal/domain/config"
)

// EnvironmentProvider supplies the environment snapshot the record is built from
type EnvironmentProvider interface {
	Snapshot() config.Env
}

// ConfigAssembler builds the toolchain config record
type ConfigAssembler interface {
	Assemble(env config.Env) *domainconfig.ToolchainConfig
	SecretsPath() string
}

// AccountDescriber loads and describes the monitor network accounts
type AccountDescriber interface {
	Describe(env config.Env) ([]domainconfig.AccountInfo, error)
}

// RecordEncoder serializes a toolchain config in a named format
type RecordEncoder interface {
	Encode(format string, cfg *domainconfig.ToolchainConfig) ([]byte, error)
	Formats() []string
}

// SecretsStore handles the secrets file and its example template
type SecretsStore interface {
	Path() string
	ExamplePath() string
	Exists(ctx context.Context) bool
	ExampleExists(ctx context.Context) bool
	Read(ctx context.Context) (map[string]string, error)
	ReadExample(ctx context.Context) (map[string]string, error)
	Write(ctx context.Context, values map[string]string) error
}

// FileWriter writes rendered output
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// ValuePrompter asks the operator for secrets values
type ValuePrompter interface {
	PromptValue(ctx context.Context, key, current string) (string, error)
}

// NameMatcher ranks candidate names against a query
type NameMatcher interface {
	Suggest(query string, candidates []string) []string
}
