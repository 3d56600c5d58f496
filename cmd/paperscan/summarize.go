// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscan/internal/analyze"
	"github.com/pdiddy/paperscan/internal/article"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [txt files or dirs...]",
	Short: "Write one combined summary of many papers",
	Long: `Summarize reads text produced by convert and writes a single summary
file to the output directory holding, per paper, the title, authors,
abstract, introduction, body, discussion, conclusion and references.

--format txt writes resumes.txt; --format xml writes articles.xml.
Files that cannot be read are reported and left out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := article.FileName(cfg.Summary.Format); err != nil {
		return err
	}

	paths, err := analyze.CollectTexts(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no text files found in %v", args)
	}

	start := time.Now()
	result := article.ExtractBatch(cmd.Context(), paths, analyze.FieldsConfig(cfg.Extraction), cfg.Analysis.Workers, os.Stdout)
	if len(result.Articles) == 0 {
		return fmt.Errorf("all %d file(s) failed extraction", result.Failed)
	}

	path, err := article.WriteSummary(cfg.Analysis.OutputDir, cfg.Summary.Format, result.Articles, time.Since(start))
	if err != nil {
		return err
	}
	fmt.Printf("Summary written to %s\n", path)
	return nil
}

func addSummaryFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "txt", "summary layout: txt (resumes.txt) or xml (articles.xml)")
	cmd.Flags().String("out-dir", "records", "directory for the summary file")
	cmd.Flags().Int("workers", 1, "number of documents read concurrently")
}

func init() {
	addSummaryFlags(summarizeCmd)
	addExtractionFlags(summarizeCmd)
	rootCmd.AddCommand(summarizeCmd)
}
