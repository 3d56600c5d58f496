// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitleAndAbstract(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantTitle    string
		wantHasTitle bool
		wantAbstract string
		wantFound    bool
	}{
		{
			name:         "paragraph after marker",
			text:         "Title\nBody\nabstract\nFirst line.\nSecond line.\n\nIgnored.",
			wantTitle:    "Title",
			wantHasTitle: true,
			wantAbstract: "First line. Second line.",
			wantFound:    true,
		},
		{
			name:         "no marker anywhere",
			text:         "Title\nIntroduction\nSome text.",
			wantTitle:    "Title",
			wantHasTitle: true,
			wantAbstract: NotFound,
		},
		{
			name:         "empty input",
			text:         "",
			wantAbstract: NotFound,
		},
		{
			name:         "title is not trimmed",
			text:         "  Spaced Title  \nABSTRACT\nText.",
			wantTitle:    "  Spaced Title  ",
			wantHasTitle: true,
			wantAbstract: "Text.",
			wantFound:    true,
		},
		{
			name:         "blank title line is kept",
			text:         "\nReal Title\nAbstract\nText.",
			wantTitle:    "",
			wantHasTitle: true,
			wantAbstract: "Text.",
			wantFound:    true,
		},
		{
			name:         "marker on last line",
			text:         "Title\nAbstract",
			wantTitle:    "Title",
			wantHasTitle: true,
			wantAbstract: NotFound,
		},
		{
			name:         "marker followed by blank then blank",
			text:         "Title\nAbstract\n\n\nBody.",
			wantTitle:    "Title",
			wantHasTitle: true,
			wantAbstract: NotFound,
		},
		{
			name:         "tolerates one blank line after marker",
			text:         "Title\nAbstract\n\nFirst.\nSecond.\n\nBody.",
			wantTitle:    "Title",
			wantHasTitle: true,
			wantAbstract: "First. Second.",
			wantFound:    true,
		},
		{
			name:         "only first marker is used",
			text:         "T\nAbstract\nOne.\n\nabstract\nTwo.",
			wantTitle:    "T",
			wantHasTitle: true,
			wantAbstract: "One.",
			wantFound:    true,
		},
		{
			name:         "substring match on unrelated line",
			text:         "T\nsee abstract in appendix\nNot an abstract.\n\nBody.",
			wantTitle:    "T",
			wantHasTitle: true,
			wantAbstract: "Not an abstract.",
			wantFound:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTitleAndAbstract(tt.text)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantHasTitle, got.HasTitle)
			assert.Equal(t, tt.wantAbstract, got.Abstract)
			assert.Equal(t, tt.wantFound, got.AbstractFound)
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "Title\nAbstract\n  First.\nSecond      column\n        deep\nrest"
	first := ExtractTitleAndAbstract(text)
	second := ExtractTitleAndAbstract(text)
	assert.Equal(t, first, second)
}

func TestExtract_IndentStopsAfterFragments(t *testing.T) {
	text := strings.Join([]string{
		"Title",
		"Abstract",
		"First fragment.",
		"Second fragment.",
		"        column bleed",
		"Not reached.",
	}, "\n")

	got := ExtractTitleAndAbstract(text)
	assert.Equal(t, "First fragment. Second fragment.", got.Abstract)
	assert.Equal(t, StopIndent, got.Scan.Stop)
	assert.Equal(t, 4, got.Scan.StopLine)
}

func TestExtract_IndentStopsAfterBlankFollowingMarker(t *testing.T) {
	got := ExtractTitleAndAbstract("Title\nAbstract\n\n        column bleed\nReal text.\n")

	assert.Equal(t, NotFound, got.Abstract)
	assert.False(t, got.AbstractFound)
	assert.Equal(t, StopIndent, got.Scan.Stop)
	assert.Equal(t, 3, got.Scan.StopLine)
}

func TestExtract_EmptyFragmentsFallBackToNotFound(t *testing.T) {
	got := ExtractTitleAndAbstract("T\nAbstract\n\t      right column\n")

	assert.Equal(t, []string{""}, got.Scan.Fragments)
	assert.Equal(t, NotFound, got.Abstract)
	assert.False(t, got.AbstractFound)
}

func TestJoinFragments(t *testing.T) {
	assert.Equal(t, "", JoinFragments(nil))
	assert.Equal(t, "", JoinFragments([]string{"", ""}))
	assert.Equal(t, "First. Second.", JoinFragments([]string{"", "First.", "Second."}))
}

func TestExtract_IndentSkippedBeforeFragments(t *testing.T) {
	text := strings.Join([]string{
		"Title",
		"Abstract",
		"        stray column",
		"Real start.",
		"",
		"Body.",
	}, "\n")

	got := ExtractTitleAndAbstract(text)
	assert.Equal(t, "Real start.", got.Abstract)
	assert.Equal(t, StopBlank, got.Scan.Stop)
	require.Len(t, got.Scan.Trace, 3)
	assert.Equal(t, Skip, got.Scan.Trace[0].Action)
}

func TestExtract_ColumnGap(t *testing.T) {
	text := "Title\nAbstract\nResult part      column two text\nnext line"
	got := ExtractTitleAndAbstract(text)
	assert.Equal(t, "Result part next line", got.Abstract)
}

func TestExtract_CustomConfig(t *testing.T) {
	text := "Title\nSummary\n   indented three\nplain"
	cfg := Config{IndentThreshold: 2, ColumnGap: 3, Marker: "SUMMARY"}

	got := Extract(text, cfg)
	assert.Equal(t, 1, got.MarkerLine)
	assert.Equal(t, "plain", got.Abstract)
	assert.Equal(t, StopEOF, got.Scan.Stop)
}

func TestExtract_ZeroConfigUsesDefaults(t *testing.T) {
	text := "Title\nAbstract\nText.\n      deep"
	assert.Equal(t, ExtractTitleAndAbstract(text), Extract(text, Config{}))
}

func TestFindMarker(t *testing.T) {
	lines := []string{"Title", "An ABSTRACT view", "Abstract"}
	assert.Equal(t, 1, FindMarker(lines, "abstract"))
	assert.Equal(t, -1, FindMarker(lines, "résumé"))
	assert.Equal(t, -1, FindMarker(nil, "abstract"))
}
