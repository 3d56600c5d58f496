// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert extracts text from PDF files with pluggable backends and
// writes normalized, section-annotated text files.
// Implements: prd003-conversion (R1, R2, R4);
//
//	docs/ARCHITECTURE § Conversion.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/paperscan/internal/normalize"
	"github.com/pdiddy/paperscan/pkg/types"
)

const (
	textExt        = ".txt"
	defaultTimeout = 2 * time.Minute
)

var (
	// ErrEmptyOutput is returned when a backend produces no text.
	ErrEmptyOutput = errors.New("backend produced empty output")

	// ErrUnknownBackend is returned by NewConverter for an unsupported name.
	ErrUnknownBackend = errors.New("unknown conversion backend")
)

// Converter extracts the text layer of a PDF. Backends differ in how they
// lay out columns; the analysis heuristics expect indentation to survive.
type Converter interface {
	// Convert reads the PDF at pdfPath and returns its raw text.
	Convert(ctx context.Context, pdfPath string) (string, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int

	// Outputs lists the text files that exist after the run, converted or
	// skipped, in input order.
	Outputs []string
}

// Total returns the total number of PDFs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any PDF failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// TextPath returns the output text path for pdfPath under outDir.
func TextPath(outDir, pdfPath string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(outDir, base+textExt)
}

// ConvertPaper converts a single PDF and writes the prepared text to
// cfg.OutputDir. If the text file already exists, it skips conversion and
// returns ConversionNone.
func ConvertPaper(ctx context.Context, c Converter, pdfPath string, cfg types.ConversionConfig, ncfg types.NormalizeConfig, w io.Writer) (types.ConversionStatus, string) {
	txtPath := TextPath(cfg.OutputDir, pdfPath)
	base := filepath.Base(txtPath)

	if _, err := os.Stat(txtPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
		return types.ConversionNone, txtPath
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed, ""
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	raw, err := c.Convert(ctx, pdfPath)
	if err == nil && strings.TrimSpace(raw) == "" {
		err = fmt.Errorf("%s: %w", pdfPath, ErrEmptyOutput)
	}
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed, ""
	}

	text := normalize.Prepare(raw, ncfg)
	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed, ""
	}

	fmt.Fprintf(w, "converted: %s (%s)\n", base, time.Since(start).Round(time.Millisecond))
	return types.ConversionDone, txtPath
}

// ConvertBatch processes pdfPaths through the converter, printing per-file
// status to w and returning a summary. It continues after failures and
// stops early only when ctx is cancelled.
func ConvertBatch(ctx context.Context, c Converter, pdfPaths []string, cfg types.ConversionConfig, ncfg types.NormalizeConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range pdfPaths {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(p), ctx.Err())
			result.Failed++
			continue
		}
		status, out := ConvertPaper(ctx, c, p, cfg, ncfg, w)
		switch status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
		if out != "" {
			result.Outputs = append(result.Outputs, out)
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// CollectPDFs expands args into PDF paths. Directories are read one level
// deep and their .pdf entries returned in name order.
func CollectPDFs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", arg, err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				paths = append(paths, filepath.Join(arg, e.Name()))
			}
		}
	}
	return paths, nil
}
