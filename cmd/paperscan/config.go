// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscan/internal/fields"
	"github.com/pdiddy/paperscan/pkg/types"
)

// Config keys. Flags bind onto these so a flag, a PAPERSCAN_* variable and
// the config file all set the same value.
const (
	keyNFC          = "normalize.nfc"
	keyPlainHeaders = "normalize.plain_headers"
	keyKeepLayout   = "normalize.keep_layout"

	keyIndentThreshold = "extraction.indent_threshold"
	keyColumnGap       = "extraction.column_gap"
	keyMarker          = "extraction.marker"

	keyBackend    = "conversion.backend"
	keyTextDir    = "conversion.output_dir"
	keyImage      = "conversion.image"
	keyTimeout    = "conversion.timeout"
	keyRecordDir  = "analysis.output_dir"
	keyWorkers    = "analysis.workers"
	keySidecar    = "analysis.sidecar"
	keyIndexPath  = "store.path"
	keyMaxResults = "store.max_results"

	keySummaryFormat = "summary.format"
)

func setDefaults() {
	viper.SetDefault(keyIndentThreshold, fields.DefaultIndentThreshold)
	viper.SetDefault(keyColumnGap, fields.DefaultColumnGap)
	viper.SetDefault(keyMarker, fields.DefaultMarker)
	viper.SetDefault(keyBackend, string(types.BackendPdftotext))
	viper.SetDefault(keyTextDir, "texts")
	viper.SetDefault(keyTimeout, "2m")
	viper.SetDefault(keyRecordDir, "records")
	viper.SetDefault(keyWorkers, 1)
	viper.SetDefault(keyIndexPath, "records/index.db")
	viper.SetDefault(keyMaxResults, 20)
	viper.SetDefault(keySummaryFormat, string(types.SummaryText))
}

// bindFlags binds the named flags of cmd to config keys. Binding happens
// when a command runs so commands sharing a flag name do not collide.
func bindFlags(cmd *cobra.Command, flags map[string]string) error {
	for name, key := range flags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Flag bindings shared by the commands that run a stage.
var (
	normalizeFlags = map[string]string{
		"nfc":           keyNFC,
		"plain-headers": keyPlainHeaders,
		"keep-layout":   keyKeepLayout,
	}
	extractionFlags = map[string]string{
		"indent-threshold": keyIndentThreshold,
		"column-gap":       keyColumnGap,
		"marker":           keyMarker,
	}
	conversionFlags = map[string]string{
		"backend":  keyBackend,
		"text-dir": keyTextDir,
		"image":    keyImage,
		"timeout":  keyTimeout,
	}
	analysisFlags = map[string]string{
		"out-dir": keyRecordDir,
		"workers": keyWorkers,
		"sidecar": keySidecar,
	}
	storeFlags = map[string]string{
		"db":          keyIndexPath,
		"max-results": keyMaxResults,
	}
	summaryFlags = map[string]string{
		"format": keySummaryFormat,
	}
)

// pipelineConfig binds the flags of cmd and returns the resolved config.
func pipelineConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	for _, set := range []map[string]string{normalizeFlags, extractionFlags, conversionFlags, analysisFlags, storeFlags, summaryFlags} {
		if err := bindFlags(cmd, set); err != nil {
			return types.PipelineConfig{}, err
		}
	}

	return types.PipelineConfig{
		Normalize: types.NormalizeConfig{
			NFC:          viper.GetBool(keyNFC),
			PlainHeaders: viper.GetBool(keyPlainHeaders),
			KeepLayout:   viper.GetBool(keyKeepLayout),
		},
		Extraction: types.ExtractionConfig{
			IndentThreshold: viper.GetInt(keyIndentThreshold),
			ColumnGap:       viper.GetInt(keyColumnGap),
			Marker:          viper.GetString(keyMarker),
		},
		Conversion: types.ConversionConfig{
			Backend:   types.ConversionBackend(viper.GetString(keyBackend)),
			OutputDir: viper.GetString(keyTextDir),
			Image:     viper.GetString(keyImage),
			Timeout:   viper.GetDuration(keyTimeout),
		},
		Analysis: types.AnalysisConfig{
			OutputDir: viper.GetString(keyRecordDir),
			Workers:   viper.GetInt(keyWorkers),
			Sidecar:   viper.GetBool(keySidecar),
		},
		Store: types.StoreConfig{
			Path:       viper.GetString(keyIndexPath),
			MaxResults: viper.GetInt(keyMaxResults),
		},
		Summary: types.SummaryConfig{
			Format: types.SummaryFormat(viper.GetString(keySummaryFormat)),
		},
	}, nil
}

// Flag registration helpers, one per stage.

func addNormalizeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("nfc", false, "compose Unicode (NFC) before normalizing whitespace")
	cmd.Flags().Bool("plain-headers", false, "leave section header lines as extracted")
	cmd.Flags().Bool("keep-layout", false, "keep indentation and column gaps for field extraction")
}

func addExtractionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("indent-threshold", fields.DefaultIndentThreshold, "leading spaces above which a line is column bleed-through")
	cmd.Flags().Int("column-gap", fields.DefaultColumnGap, "interior space run that cuts a line")
	cmd.Flags().String("marker", fields.DefaultMarker, "substring locating the abstract header")
}

func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", string(types.BackendPdftotext), "conversion backend: pdftotext, pdftotext-container, or fitz")
	cmd.Flags().String("text-dir", "texts", "directory for extracted .txt files")
	cmd.Flags().String("image", "", "container image for the pdftotext-container backend")
	cmd.Flags().Duration("timeout", 0, "per-PDF extraction timeout (0 = 2m)")
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().String("out-dir", "records", "directory for record files")
	cmd.Flags().Int("workers", 1, "number of documents analyzed concurrently")
	cmd.Flags().Bool("sidecar", false, "write a YAML metadata file next to each record")
	cmd.Flags().Bool("index", false, "store records in the SQLite index")
	cmd.Flags().String("db", "records/index.db", "SQLite index path")
}
