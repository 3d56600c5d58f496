// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze runs field extraction over extracted paper text and writes
// one record file per document.
// Implements: prd004-analysis (R1-R5);
//
//	docs/ARCHITECTURE § Analysis.
package analyze

import (
	"time"

	"github.com/pdiddy/paperscan/internal/fields"
	"github.com/pdiddy/paperscan/internal/normalize"
	"github.com/pdiddy/paperscan/pkg/types"
)

// Document is the outcome of the full text pipeline for one document.
type Document struct {
	// Text is the normalized, section-annotated text.
	Text string

	// Fields holds the extracted title and abstract.
	Fields fields.Result

	// Sections lists the marker lines of Text.
	Sections []normalize.Section
}

// Process runs normalize.Prepare and then field extraction on raw.
func Process(raw string, ncfg types.NormalizeConfig, fcfg fields.Config) Document {
	text := normalize.Prepare(raw, ncfg)
	return Document{
		Text:     text,
		Fields:   fields.Extract(text, fcfg),
		Sections: normalize.Sections(text),
	}
}

// FieldsConfig converts the extraction settings into a fields.Config.
func FieldsConfig(cfg types.ExtractionConfig) fields.Config {
	return fields.Config{
		IndentThreshold: cfg.IndentThreshold,
		ColumnGap:       cfg.ColumnGap,
		Marker:          cfg.Marker,
	}
}

// NewRecord builds the record for text analyzed from filename. The text is
// used as-is: callers that hold raw extractor output and want it cleaned
// run normalize.Prepare first.
func NewRecord(filename, text string, cfg fields.Config, now time.Time) (types.Record, fields.Result) {
	res := fields.Extract(text, cfg)
	rec := types.Record{
		Filename:      filename,
		Title:         res.Title,
		Abstract:      res.Abstract,
		AbstractFound: res.AbstractFound,
		ExtractedAt:   now.UTC(),
	}
	for _, s := range normalize.Sections(text) {
		rec.Sections = append(rec.Sections, s.Marker)
	}
	return rec, res
}
