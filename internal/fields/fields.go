// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields extracts the title and abstract of a paper from its
// extracted text using layout heuristics.
// Implements: prd002-field-extraction (R1-R4);
//
//	docs/ARCHITECTURE § Field Extraction.
package fields

import "strings"

const (
	// DefaultIndentThreshold is the number of leading spaces above which a
	// line is considered bleed-through from another column.
	DefaultIndentThreshold = 5

	// DefaultColumnGap is the length of an interior space run treated as a
	// column boundary.
	DefaultColumnGap = 6

	// DefaultMarker is the substring that locates the abstract header.
	DefaultMarker = "abstract"

	// NotFound is returned as the abstract when none can be determined.
	NotFound = "Aucun résumé (abstract) trouvé."
)

// Config holds the layout thresholds used by the abstract scan. Both
// thresholds were tuned against one PDF corpus; keep the defaults unless
// the extraction backend lays out text differently.
type Config struct {
	// IndentThreshold is the maximum leading space count of an abstract line.
	IndentThreshold int `json:"indent_threshold" yaml:"indent_threshold"`

	// ColumnGap is the interior space run length that cuts a line.
	ColumnGap int `json:"column_gap" yaml:"column_gap"`

	// Marker is matched case-insensitively as a substring of a line.
	Marker string `json:"marker" yaml:"marker"`
}

// DefaultConfig returns the thresholds the heuristics were tuned with.
func DefaultConfig() Config {
	return Config{
		IndentThreshold: DefaultIndentThreshold,
		ColumnGap:       DefaultColumnGap,
		Marker:          DefaultMarker,
	}
}

// withDefaults fills zero or negative fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.IndentThreshold <= 0 {
		c.IndentThreshold = DefaultIndentThreshold
	}
	if c.ColumnGap <= 0 {
		c.ColumnGap = DefaultColumnGap
	}
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
	c.Marker = strings.ToLower(c.Marker)
	return c
}

// Result is the outcome of field extraction for one document.
type Result struct {
	// Title is the first line of the document, untrimmed. It is a weak
	// signal: page furniture or a blank line lands here unchanged.
	Title string `json:"title" yaml:"title"`

	// HasTitle is false only when the document has no lines at all.
	HasTitle bool `json:"has_title" yaml:"has_title"`

	// Abstract is the joined non-empty abstract fragments, or NotFound.
	Abstract string `json:"abstract" yaml:"abstract"`

	// AbstractFound reports whether Abstract holds extracted text.
	AbstractFound bool `json:"abstract_found" yaml:"abstract_found"`

	// MarkerLine is the zero-based index of the abstract marker line, or -1.
	MarkerLine int `json:"marker_line" yaml:"marker_line"`

	// Scan holds the fragments and stop decision. It is empty when no marker
	// line was found.
	Scan ScanResult `json:"-" yaml:"-"`
}

// ExtractTitleAndAbstract extracts the title and abstract of text with the
// default thresholds.
func ExtractTitleAndAbstract(text string) Result {
	return Extract(text, DefaultConfig())
}

// Extract extracts the title and abstract of text. It never fails: missing
// data degrades to HasTitle == false or the NotFound abstract. Only the
// first line containing the marker is used, even when it is unrelated prose
// such as "see abstract in appendix".
func Extract(text string, cfg Config) Result {
	cfg = cfg.withDefaults()
	res := Result{Abstract: NotFound, MarkerLine: -1}
	if text == "" {
		return res
	}

	lines := strings.Split(text, "\n")
	res.Title = lines[0]
	res.HasTitle = true

	res.MarkerLine = FindMarker(lines, cfg.Marker)
	if res.MarkerLine < 0 {
		return res
	}

	res.Scan = Scan(lines, res.MarkerLine, cfg)
	if abstract := JoinFragments(res.Scan.Fragments); abstract != "" {
		res.Abstract = abstract
		res.AbstractFound = true
	}
	return res
}

// JoinFragments joins the non-empty fragments with single spaces. Empty
// fragments still count for the scan rules but never reach the text.
func JoinFragments(fragments []string) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// FindMarker returns the index of the first line whose lower-cased form
// contains marker, or -1.
func FindMarker(lines []string, marker string) int {
	marker = strings.ToLower(marker)
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), marker) {
			return i
		}
	}
	return -1
}
