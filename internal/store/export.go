// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscan/pkg/types"
)

// Export is the document written by Store.Export.
type Export struct {
	Count   int            `json:"count" yaml:"count"`
	Records []types.Record `json:"records" yaml:"records"`
}

// Export writes every stored record to w as YAML.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	records, err := s.All(ctx)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Export{Count: len(records), Records: records}); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return enc.Close()
}

// ExportFile writes the YAML export to path, creating parent directories.
func (s *Store) ExportFile(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := s.Export(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
