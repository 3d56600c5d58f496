// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperscan/internal/fields"
)

func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractFile_CRLF(t *testing.T) {
	path := writeText(t, t.TempDir(), "win paper.txt", "A Paper\r\nAbstract\r\nWe show.\r\n\r\nReferences\r\n[1] X.\r\n")

	a, err := ExtractFile(path, fields.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "win_paper.txt", a.Filename)
	assert.Equal(t, "A Paper", a.Title)
	assert.Equal(t, "We show.", a.Abstract)
	assert.Equal(t, "[1] X.", a.Bibliography)
}

func TestExtractFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ExtractFile(filepath.Join(dir, "missing.txt"), fields.DefaultConfig())
	assert.Error(t, err)

	empty := writeText(t, dir, "empty.txt", "")
	_, err = ExtractFile(empty, fields.DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestExtractBatch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeText(t, dir, "one.txt", samplePaper),
		filepath.Join(dir, "gone.txt"),
		writeText(t, dir, "two.txt", "Second\nAbstract\nShort.\n"),
	}

	var out bytes.Buffer
	result := ExtractBatch(context.Background(), paths, fields.DefaultConfig(), 2, &out)

	assert.True(t, result.HasFailures())
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Articles, 2)
	assert.Equal(t, "one.txt", result.Articles[0].Filename)
	assert.Equal(t, "two.txt", result.Articles[1].Filename)
	assert.Contains(t, out.String(), "extracted: one.txt\n")
	assert.Contains(t, out.String(), "failed:  gone.txt")
	assert.Contains(t, out.String(), "2 extracted, 1 failed (total: 3)")
}

func TestExtractBatch_Cancelled(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeText(t, dir, "one.txt", samplePaper)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	result := ExtractBatch(ctx, paths, fields.DefaultConfig(), 0, &out)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.Articles)
}
