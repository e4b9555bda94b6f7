package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/trebuchet-org/forkcfg/internal/domain"
)

// ExportConfigParams contains parameters for exporting the record
type ExportConfigParams struct {
	Format string
	Out    string // empty writes nothing to disk
}

// ExportConfigResult contains the encoded record
type ExportConfigResult struct {
	*AssembleConfigResult
	Format string
	Data   []byte
	Out    string
}

// ExportConfig is a use case for encoding the record for the consuming framework
type ExportConfig struct {
	assemble *AssembleConfig
	encoder  RecordEncoder
	writer   FileWriter
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(assemble *AssembleConfig, encoder RecordEncoder, writer FileWriter) *ExportConfig {
	return &ExportConfig{
		assemble: assemble,
		encoder:  encoder,
		writer:   writer,
	}
}

// Run executes the use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	if !slices.Contains(uc.encoder.Formats(), params.Format) {
		return nil, fmt.Errorf("%w '%s' (supported: %v)", domain.ErrUnknownFormat, params.Format, uc.encoder.Formats())
	}

	assembled, err := uc.assemble.Run(ctx)
	if err != nil {
		return nil, err
	}

	data, err := uc.encoder.Encode(params.Format, assembled.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config as %s: %w", params.Format, err)
	}

	if params.Out != "" {
		if err := uc.writer.WriteFile(ctx, params.Out, data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", params.Out, err)
		}
	}

	return &ExportConfigResult{
		AssembleConfigResult: assembled,
		Format:               params.Format,
		Data:                 data,
		Out:                  params.Out,
	}, nil
}
