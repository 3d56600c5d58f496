// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscan/pkg/types"
)

const (
	recordSuffix  = "_processed.txt"
	sidecarSuffix = "_processed.yaml"
	textExt       = ".txt"
)

// ErrShortRecord is returned by ReadRecord when the input has fewer than
// three lines.
var ErrShortRecord = errors.New("record file must have three lines")

// RecordPath returns the record file path for a text file name:
// "paper.txt" becomes outDir/"paper_processed.txt".
func RecordPath(outDir, filename string) string {
	return filepath.Join(outDir, strings.TrimSuffix(filepath.Base(filename), textExt)+recordSuffix)
}

// sidecarPath returns the YAML metadata path matching RecordPath.
func sidecarPath(outDir, filename string) string {
	return filepath.Join(outDir, strings.TrimSuffix(filepath.Base(filename), textExt)+sidecarSuffix)
}

// IsRecordFile reports whether path names a record file produced by this
// package, so directory scans do not analyze their own output.
func IsRecordFile(path string) bool {
	return strings.HasSuffix(path, recordSuffix)
}

// WriteRecord writes rec as three lines: filename, title, abstract.
func WriteRecord(w io.Writer, rec types.Record) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rec.Filename, rec.Title, rec.Abstract)
	return err
}

// ReadRecord parses a three-line record file.
func ReadRecord(r io.Reader) (types.Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for sc.Scan() && len(lines) < 3 {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return types.Record{}, fmt.Errorf("reading record: %w", err)
	}
	if len(lines) < 3 {
		return types.Record{}, ErrShortRecord
	}
	return types.Record{Filename: lines[0], Title: lines[1], Abstract: lines[2]}, nil
}

// SaveRecord writes rec to its record file under outDir through a temporary
// file and, when sidecar is set, the YAML metadata next to it. It returns
// the record file path.
func SaveRecord(outDir string, rec types.Record, sidecar bool) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	path := RecordPath(outDir, rec.Filename)
	var b strings.Builder
	if err := WriteRecord(&b, rec); err != nil {
		return "", err
	}
	if err := writeFileAtomic(path, []byte(b.String())); err != nil {
		return "", fmt.Errorf("writing record %s: %w", path, err)
	}

	if sidecar {
		data, err := yaml.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("marshaling metadata: %w", err)
		}
		if err := writeFileAtomic(sidecarPath(outDir, rec.Filename), data); err != nil {
			return "", fmt.Errorf("writing metadata for %s: %w", rec.Filename, err)
		}
	}
	return path, nil
}

// LoadRecord reads a record file from disk.
func LoadRecord(path string) (types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Record{}, err
	}
	defer f.Close()
	return ReadRecord(f)
}

// writeFileAtomic writes data to a temporary file in the destination
// directory and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".record-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return closeErr
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
