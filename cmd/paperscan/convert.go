// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscan/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs or dirs...]",
	Short: "Extract normalized text from PDF files",
	Long: `Convert extracts the text layer of each PDF with a layout-preserving
backend, normalizes whitespace, upper-cases section headers, and writes one
.txt file per PDF to the text directory. Existing outputs are skipped.

Backends: pdftotext (local binary), pdftotext-container (docker or podman),
and fitz (MuPDF linked in-process).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	pdfs, err := convert.CollectPDFs(args)
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		return fmt.Errorf("no PDF files found in %v", args)
	}

	c, err := convert.NewConverter(cmd.Context(), cfg.Conversion)
	if err != nil {
		return err
	}

	result := convert.ConvertBatch(cmd.Context(), c, pdfs, cfg.Conversion, cfg.Normalize, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d PDF(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	addConversionFlags(convertCmd)
	addNormalizeFlags(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
