package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exporter writes minutes files into a local downloads directory.
type Exporter struct {
	basePath string
}

func New(basePath string) (*Exporter, error) {
	if basePath == "" {
		basePath = "."
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}
	return &Exporter{basePath: basePath}, nil
}

func (e *Exporter) Save(filename string, content []byte) (string, error) {
	path := filepath.Join(e.basePath, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write minutes file: %w", err)
	}
	return path, nil
}
