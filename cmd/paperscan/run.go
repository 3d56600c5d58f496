// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscan/internal/convert"
)

var runCmd = &cobra.Command{
	Use:   "run [pdfs or dirs...]",
	Short: "Convert PDFs and analyze the resulting text in one pass",
	Long: `Run chains convert and analyze. Every PDF whose text exists after the
conversion stage, converted now or earlier, is analyzed. Conversion
failures do not stop the analysis of the other papers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintln(os.Stdout, "== convert")
	conv := convert.ConvertBatch(cmd.Context(), c, pdfs, cfg.Conversion, cfg.Normalize, os.Stdout)
	if len(conv.Outputs) == 0 {
		return fmt.Errorf("no text to analyze: %d PDF(s) failed conversion", conv.Failed)
	}

	a, closeIndex, err := newAnalyzer(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeIndex()

	fmt.Fprintln(os.Stdout, "\n== analyze")
	res := a.AnalyzeBatch(cmd.Context(), conv.Outputs)

	if conv.HasFailures() || res.HasFailures() {
		return fmt.Errorf("%d PDF(s) failed conversion, %d text(s) failed analysis", conv.Failed, res.Failed)
	}
	return nil
}

func init() {
	addConversionFlags(runCmd)
	addNormalizeFlags(runCmd)
	addAnalysisFlags(runCmd)
	addExtractionFlags(runCmd)

	rootCmd.AddCommand(runCmd)
}
