// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/iter"

	"github.com/pdiddy/paperscan/internal/fields"
	"github.com/pdiddy/paperscan/internal/normalize"
	"github.com/pdiddy/paperscan/pkg/types"
)

// Indexer receives every record the analyzer writes.
type Indexer interface {
	Put(ctx context.Context, runID string, rec types.Record) error
}

// BatchResult holds the outcome of a batch analysis run.
type BatchResult struct {
	RunID    string
	Analyzed int
	Failed   int
	Records  []types.Record
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Analyzed + r.Failed
}

// HasFailures reports whether any file failed analysis.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Analyzer extracts records from text files and writes record files.
type Analyzer struct {
	cfg    types.AnalysisConfig
	fields fields.Config
	out    io.Writer

	// Trace, when set, receives the per-line scan decisions.
	Trace   io.Writer
	traceMu sync.Mutex

	// Index, when set, stores every written record.
	Index Indexer

	now func() time.Time
}

// New creates an Analyzer that writes status lines to w.
func New(cfg types.AnalysisConfig, fcfg fields.Config, w io.Writer) *Analyzer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Analyzer{cfg: cfg, fields: fcfg, out: w, now: time.Now}
}

// AnalyzeFile reads one text file, extracts its record, and writes the
// record file. CRLF line endings are read as LF. The record file path is returned with the record.
func (a *Analyzer) AnalyzeFile(ctx context.Context, runID, path string) (types.Record, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Record{}, "", fmt.Errorf("reading %s: %w", path, err)
	}

	text := normalize.LineEndings(string(data))
	rec, res := NewRecord(filepath.Base(path), text, a.fields, a.now())
	rec.SourcePath = path
	if a.Trace != nil {
		a.traceMu.Lock()
		WriteTrace(a.Trace, rec.Filename, res)
		a.traceMu.Unlock()
	}

	out, err := SaveRecord(a.cfg.OutputDir, rec, a.cfg.Sidecar)
	if err != nil {
		return types.Record{}, "", err
	}

	if a.Index != nil {
		if err := a.Index.Put(ctx, runID, rec); err != nil {
			return types.Record{}, "", fmt.Errorf("indexing %s: %w", rec.Filename, err)
		}
	}
	return rec, out, nil
}

type outcome struct {
	rec     types.Record
	elapsed time.Duration
	err     error
}

// AnalyzeBatch analyzes paths with up to cfg.Workers files in flight,
// printing one status line per file in input order and a summary. It
// continues after individual failures.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, paths []string) BatchResult {
	result := BatchResult{RunID: uuid.New().String()}

	mapper := iter.Mapper[string, outcome]{MaxGoroutines: a.cfg.Workers}
	outcomes := mapper.Map(paths, func(p *string) outcome {
		if err := ctx.Err(); err != nil {
			return outcome{err: err}
		}
		start := time.Now()
		rec, _, err := a.AnalyzeFile(ctx, result.RunID, *p)
		return outcome{rec: rec, elapsed: time.Since(start), err: err}
	})

	for i, o := range outcomes {
		name := filepath.Base(paths[i])
		if o.err != nil {
			fmt.Fprintf(a.out, "failed:  %s (%v)\n", name, o.err)
			result.Failed++
			continue
		}
		status := "analyzed:"
		if !o.rec.AbstractFound {
			status = "no abstract:"
		}
		fmt.Fprintf(a.out, "%s %s (%s)\n", status, name, o.elapsed.Round(time.Microsecond))
		result.Analyzed++
		result.Records = append(result.Records, o.rec)
	}

	fmt.Fprintf(a.out, "\nBatch summary: %d analyzed, %d failed (total: %d)\n",
		result.Analyzed, result.Failed, result.Total())
	return result
}

// CollectTexts expands args into a sorted list of .txt files. Directories
// are read one level deep; record files are never returned.
func CollectTexts(args []string) ([]string, error) {
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
		var found []string
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !IsTextFile(name) {
				continue
			}
			found = append(found, filepath.Join(arg, name))
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

// IsTextFile reports whether name is an input text file rather than a
// record file or a hidden file.
func IsTextFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, textExt) && !IsRecordFile(base) && !strings.HasPrefix(base, ".")
}

// WriteTrace prints the scan decisions of res for filename.
func WriteTrace(w io.Writer, filename string, res fields.Result) {
	if res.MarkerLine < 0 {
		fmt.Fprintf(w, "%s: no abstract marker\n", filename)
		return
	}
	fmt.Fprintf(w, "%s: abstract marker at line %d\n", filename, res.MarkerLine)
	for _, d := range res.Scan.Trace {
		switch d.Action {
		case fields.Stop:
			fmt.Fprintf(w, "  line %d: stop (%s)\n", d.Line, d.Reason)
		case fields.Skip:
			fmt.Fprintf(w, "  line %d: skip\n", d.Line)
		default:
			fmt.Fprintf(w, "  line %d: keep %q\n", d.Line, d.Fragment)
		}
	}
	if res.Scan.Stop == fields.StopEOF {
		fmt.Fprintf(w, "  end of document\n")
	}
}
