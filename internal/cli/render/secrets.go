package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// SecretsRenderer renders secrets file status and initialization
type SecretsRenderer struct {
	out  io.Writer
	root string
}

// NewSecretsRenderer creates a new secrets renderer. Paths are shown
// relative to root.
func NewSecretsRenderer(out io.Writer, root string) *SecretsRenderer {
	return &SecretsRenderer{
		out:  out,
		root: root,
	}
}

func (r *SecretsRenderer) rel(path string) string {
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return path
	}
	return rel
}

// RenderStatus renders the secrets file state
func (r *SecretsRenderer) RenderStatus(result *usecase.SecretsStatusResult) error {
	if result.Exists {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Secrets file: %s", r.rel(result.Path))))
	} else {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("No %s file found", r.rel(result.Path))))
		if result.ExampleExists {
			fmt.Fprintf(r.out, "   Create it from %s with: forkcfg secrets init\n", r.rel(result.ExamplePath))
		} else {
			fmt.Fprintln(r.out, "   Create it with: forkcfg secrets init")
		}
	}

	fmt.Fprintln(r.out)
	headerStyle.Fprintln(r.out, "📋 Keys:")
	for _, key := range result.Keys {
		source := faintStyle.Sprint("unset")
		switch {
		case key.InEnv && key.InFile:
			source = "environment (overrides file)"
		case key.InEnv:
			source = "environment"
		case key.InFile:
			source = "file"
		}

		value := ""
		if key.Value != "" {
			value = " = " + MaskValue(key.Value)
		}
		fmt.Fprintf(r.out, "  %-24s %s%s\n", key.Key, source, value)
	}

	return nil
}

// RenderInit renders the result of creating the secrets file
func (r *SecretsRenderer) RenderInit(result *usecase.InitSecretsResult) error {
	verb := "Created"
	if result.Overwritten {
		verb = "Overwrote"
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s %s", verb, r.rel(result.Path))))
	if result.FromExample {
		fmt.Fprintln(r.out, "   Template: example file")
	} else {
		fmt.Fprintln(r.out, "   Template: built-in defaults")
	}
	fmt.Fprintf(r.out, "   Keys: %d\n", len(result.Keys))
	return nil
}
