// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/paperscan/pkg/types"
)

// fakeConverter implements Converter for testing. It returns canned text
// or an error, depending on configuration.
type fakeConverter struct {
	output string
	err    error
	calls  int
}

func (f *fakeConverter) Convert(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// setupPDF creates a temporary PDF file and returns its path and the temp dir.
func setupPDF(t *testing.T) (pdfPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	rawDir := filepath.Join(tmpDir, "pdf")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}
	pdfPath = filepath.Join(rawDir, "2301.07041.pdf")
	if err := os.WriteFile(pdfPath, []byte("fake pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	return pdfPath, tmpDir
}

func TestConvertPaper(t *testing.T) {
	tests := []struct {
		name       string
		converter  *fakeConverter
		preCreate  bool // create output text before running
		wantStatus types.ConversionStatus
		wantLog    string
		wantCalls  int
	}{
		{
			name:       "successful conversion",
			converter:  &fakeConverter{output: "Title\n\nAbstract\nContent here."},
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
			wantCalls:  1,
		},
		{
			name:       "skip existing text",
			converter:  &fakeConverter{output: "should not be called"},
			preCreate:  true,
			wantStatus: types.ConversionNone,
			wantLog:    "skipped:",
		},
		{
			name:       "conversion failure",
			converter:  &fakeConverter{err: errors.New("syntax error")},
			wantStatus: types.ConversionFailed,
			wantLog:    "failed:",
			wantCalls:  1,
		},
		{
			name:       "empty output is a failure",
			converter:  &fakeConverter{output: " \n\n "},
			wantStatus: types.ConversionFailed,
			wantLog:    "empty output",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, tmpDir := setupPDF(t)
			outDir := filepath.Join(tmpDir, "txt")

			if tt.preCreate {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(outDir, "2301.07041.txt"), []byte("existing"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			var log bytes.Buffer
			cfg := types.ConversionConfig{OutputDir: outDir}
			status, _ := ConvertPaper(context.Background(), tt.converter, pdfPath, cfg, types.NormalizeConfig{}, &log)

			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
			if tt.converter.calls != tt.wantCalls {
				t.Errorf("converter calls = %d, want %d", tt.converter.calls, tt.wantCalls)
			}
		})
	}
}

func TestConvertPaper_PreparesText(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t)
	outDir := filepath.Join(tmpDir, "txt")
	conv := &fakeConverter{output: "\n  Paper   Title\n\n\n\nabstract\nSome    content.\n\n\n"}

	var log bytes.Buffer
	status, out := ConvertPaper(context.Background(), conv, pdfPath, types.ConversionConfig{OutputDir: outDir}, types.NormalizeConfig{}, &log)
	if status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q", status)
	}
	if out != filepath.Join(outDir, "2301.07041.txt") {
		t.Errorf("output path = %q", out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "Paper Title\n\nABSTRACT\nSome content."
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestConvertBatch(t *testing.T) {
	tmpDir := t.TempDir()
	rawDir := filepath.Join(tmpDir, "pdf")
	outDir := filepath.Join(tmpDir, "txt")
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		t.Fatal(err)
	}

	// Create 3 PDFs: one will succeed, one will be pre-existing, one will fail.
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		if err := os.WriteFile(filepath.Join(rawDir, name), []byte("pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "b.txt"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	conv := &selectiveConverter{
		outputs: map[string]string{
			filepath.Join(rawDir, "a.pdf"): "Paper A",
			filepath.Join(rawDir, "b.pdf"): "Paper B",
		},
		errors: map[string]error{
			filepath.Join(rawDir, "c.pdf"): errors.New("bad pdf"),
		},
	}

	paths, err := CollectPDFs([]string{rawDir})
	if err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	result := ConvertBatch(context.Background(), conv, paths, types.ConversionConfig{OutputDir: outDir}, types.NormalizeConfig{}, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 3 {
		t.Errorf("total = %d, want 3", result.Total())
	}
	wantOutputs := []string{filepath.Join(outDir, "a.txt"), filepath.Join(outDir, "b.txt")}
	if strings.Join(result.Outputs, ",") != strings.Join(wantOutputs, ",") {
		t.Errorf("outputs = %v, want %v", result.Outputs, wantOutputs)
	}
	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
}

func TestConvertBatch_Cancelled(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := &fakeConverter{output: "text"}
	var log bytes.Buffer
	result := ConvertBatch(ctx, conv, []string{pdfPath}, types.ConversionConfig{OutputDir: tmpDir}, types.NormalizeConfig{}, &log)

	if result.Failed != 1 || conv.calls != 0 {
		t.Errorf("failed = %d, calls = %d; want 1 failure and no calls", result.Failed, conv.calls)
	}
}

func TestCollectPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PDF", "a.pdf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := CollectPDFs([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.PDF")}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CollectPDFs([]string{filepath.Join(dir, "missing.pdf")}); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestTextPath(t *testing.T) {
	if got := TextPath("out", "/papers/x.y.pdf"); got != filepath.Join("out", "x.y.txt") {
		t.Errorf("TextPath = %q", got)
	}
}

// selectiveConverter returns different results per file path.
type selectiveConverter struct {
	outputs map[string]string
	errors  map[string]error
}

func (s *selectiveConverter) Convert(_ context.Context, pdfPath string) (string, error) {
	if err, ok := s.errors[pdfPath]; ok {
		return "", err
	}
	if out, ok := s.outputs[pdfPath]; ok {
		return out, nil
	}
	return "", errors.New("unexpected path: " + pdfPath)
}
