// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the state of PDF-to-text conversion for a paper.
// Per prd003-conversion R4.4.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Record holds the fields extracted from one document. Filename, Title and
// Abstract form the three-line record file; the remaining fields are kept
// by the index only.
// Per prd004-analysis R2.1.
type Record struct {
	// Filename is the base name of the analyzed text file (e.g. "paper.txt").
	Filename string `json:"filename" yaml:"filename"`

	// Title is the first line of the text.
	Title string `json:"title" yaml:"title"`

	// Abstract is the extracted abstract or the not-found placeholder.
	Abstract string `json:"abstract" yaml:"abstract"`

	// AbstractFound reports whether Abstract holds extracted text.
	AbstractFound bool `json:"abstract_found" yaml:"abstract_found"`

	// Sections lists the section markers found in the text, lower case.
	Sections []string `json:"sections,omitempty" yaml:"sections,omitempty"`

	// SourcePath is the path of the analyzed text file.
	SourcePath string `json:"source_path,omitempty" yaml:"source_path,omitempty"`

	// ExtractedAt is when the record was produced.
	ExtractedAt time.Time `json:"extracted_at" yaml:"extracted_at"`
}
