// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// NormalizeConfig holds settings for text normalization.
// Per prd001-normalization R1.4.
type NormalizeConfig struct {
	// NFC applies Unicode composition before whitespace normalization.
	NFC bool `json:"nfc" yaml:"nfc"`

	// PlainHeaders leaves section header lines as extracted instead of
	// upper-casing them.
	PlainHeaders bool `json:"plain_headers" yaml:"plain_headers"`

	// KeepLayout skips whitespace collapsing so indentation and column gaps
	// survive for field extraction.
	KeepLayout bool `json:"keep_layout" yaml:"keep_layout"`
}

// ExtractionConfig holds the layout thresholds for field extraction.
// Per prd002-field-extraction R3.1-R3.3.
type ExtractionConfig struct {
	// IndentThreshold is the leading space count above which a line is
	// treated as column bleed-through (default 5).
	IndentThreshold int `json:"indent_threshold" yaml:"indent_threshold"`

	// ColumnGap is the interior space run length that cuts a line (default 6).
	ColumnGap int `json:"column_gap" yaml:"column_gap"`

	// Marker is the substring locating the abstract header (default "abstract").
	Marker string `json:"marker" yaml:"marker"`
}

// ConversionBackend identifies the PDF text extraction tool.
// Per prd003-conversion R5.1.
type ConversionBackend string

const (
	BackendPdftotext          ConversionBackend = "pdftotext"
	BackendPdftotextContainer ConversionBackend = "pdftotext-container"
	BackendFitz               ConversionBackend = "fitz"
)

// ConversionConfig holds settings for the conversion stage.
// Per prd003-conversion R5.1-R5.3.
type ConversionConfig struct {
	// Backend selects the extraction tool.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// OutputDir receives one .txt file per converted PDF.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Image is the container image used by the pdftotext-container backend.
	Image string `json:"image" yaml:"image"`

	// Timeout bounds a single PDF extraction (default 2m).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AnalysisConfig holds settings for the analysis stage.
// Per prd004-analysis R1-R3.
type AnalysisConfig struct {
	// OutputDir receives one record file per analyzed text.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Workers is the number of documents analyzed concurrently (default 1).
	Workers int `json:"workers" yaml:"workers"`

	// Sidecar writes a YAML metadata file next to each record file.
	Sidecar bool `json:"sidecar" yaml:"sidecar"`
}

// StoreConfig holds settings for the record index.
// Per prd005-index R1.2, R2.3.
type StoreConfig struct {
	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Normalize  NormalizeConfig  `json:"normalize" yaml:"normalize"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Analysis   AnalysisConfig   `json:"analysis" yaml:"analysis"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Summary    SummaryConfig    `json:"summary" yaml:"summary"`
}
