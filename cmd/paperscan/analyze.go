// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscan/internal/analyze"
	"github.com/pdiddy/paperscan/internal/store"
	"github.com/pdiddy/paperscan/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [txt files or dirs...]",
	Short: "Extract title and abstract from text files",
	Long: `Analyze reads text produced by convert and writes one record file per
input to the output directory: <stem>_processed.txt holding the source file
name, the title and the abstract on three lines.

With --index the records are also stored in the SQLite index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	paths, err := analyze.CollectTexts(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no text files found in %v", args)
	}

	a, closeIndex, err := newAnalyzer(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeIndex()

	result := a.AnalyzeBatch(cmd.Context(), paths)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed analysis", result.Failed)
	}
	return nil
}

// newAnalyzer builds the analyzer for cfg, attaching the trace writer and
// the record index when the corresponding flags are set. The returned
// function closes the index.
func newAnalyzer(cmd *cobra.Command, cfg types.PipelineConfig) (*analyze.Analyzer, func(), error) {
	a := analyze.New(cfg.Analysis, analyze.FieldsConfig(cfg.Extraction), os.Stdout)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		a.Trace = os.Stderr
	}

	useIndex, _ := cmd.Flags().GetBool("index")
	if !useIndex {
		return a, func() {}, nil
	}

	s, err := store.NewStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	a.Index = s
	return a, func() { s.Close() }, nil
}

func init() {
	addAnalysisFlags(analyzeCmd)
	addExtractionFlags(analyzeCmd)

	rootCmd.AddCommand(analyzeCmd)
}
