package fs

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// FileWriterAdapter writes rendered records relative to the project root
type FileWriterAdapter struct {
	fs   afero.Fs
	root string
}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter(fs afero.Fs, cfg *config.RuntimeConfig) *FileWriterAdapter {
	return &FileWriterAdapter{fs: fs, root: cfg.ProjectRoot}
}

// WriteFile writes data to path, creating parent directories
func (f *FileWriterAdapter) WriteFile(ctx context.Context, path string, data []byte) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.root, path)
	}
	if err := f.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, path, data, 0644)
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
