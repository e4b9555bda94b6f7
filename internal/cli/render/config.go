package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// ConfigRenderer renders the exported record
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// Render writes the encoded record, or a confirmation when it went to a file
func (r *ConfigRenderer) Render(result *usecase.ExportConfigResult) error {
	if result.Out != "" {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %s config to %s", result.Format, result.Out)))
		return nil
	}

	_, err := r.out.Write(result.Data)
	return err
}

// Ensure the renderer implements the interface
var _ Renderer[*usecase.ExportConfigResult] = (*ConfigRenderer)(nil)
