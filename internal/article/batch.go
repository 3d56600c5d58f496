// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/iter"

	"github.com/pdiddy/paperscan/internal/fields"
	"github.com/pdiddy/paperscan/internal/normalize"
	"github.com/pdiddy/paperscan/pkg/types"
)

// ErrEmptyText is returned for a text file with no content.
var ErrEmptyText = errors.New("text file is empty")

// ExtractFile reads a text file and extracts its article. CRLF line
// endings are read as LF.
func ExtractFile(path string, cfg fields.Config) (types.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Article{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return types.Article{}, fmt.Errorf("%s: %w", path, ErrEmptyText)
	}
	return Extract(filepath.Base(path), normalize.LineEndings(string(data)), cfg), nil
}

// BatchResult holds the outcome of a batch extraction.
type BatchResult struct {
	Articles []types.Article
	Failed   int
}

// HasFailures reports whether any file could not be read.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

type outcome struct {
	article types.Article
	err     error
}

// ExtractBatch extracts the articles of paths with up to workers files in
// flight. Status lines are printed to w in input order; failed files are
// left out of the result.
func ExtractBatch(ctx context.Context, paths []string, cfg fields.Config, workers int, w io.Writer) BatchResult {
	if workers <= 0 {
		workers = 1
	}
	mapper := iter.Mapper[string, outcome]{MaxGoroutines: workers}
	outcomes := mapper.Map(paths, func(p *string) outcome {
		if err := ctx.Err(); err != nil {
			return outcome{err: err}
		}
		a, err := ExtractFile(*p, cfg)
		return outcome{article: a, err: err}
	})

	var result BatchResult
	for i, o := range outcomes {
		name := filepath.Base(paths[i])
		if o.err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, o.err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "extracted: %s\n", name)
		result.Articles = append(result.Articles, o.article)
	}
	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d failed (total: %d)\n",
		len(result.Articles), result.Failed, len(paths))
	return result
}
