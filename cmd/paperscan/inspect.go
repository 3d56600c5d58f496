// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscan/internal/analyze"
	"github.com/pdiddy/paperscan/internal/fields"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <txt file>",
	Short: "Show the section markers and fields detected in one text",
	Long: `Inspect runs normalization, section detection and field extraction on a
raw text file and prints what was found without writing anything. Use
--annotated to print the prepared text itself, and --verbose to see how
each line after the abstract marker was classified.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	doc := analyze.Process(string(data), cfg.Normalize, analyze.FieldsConfig(cfg.Extraction))

	if annotated, _ := cmd.Flags().GetBool("annotated"); annotated {
		fmt.Fprintln(os.Stdout, doc.Text)
		return nil
	}

	printDocument(os.Stdout, doc)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		analyze.WriteTrace(os.Stderr, filepath.Base(args[0]), doc.Fields)
	}
	return nil
}

func printDocument(w io.Writer, doc analyze.Document) {
	title := doc.Fields.Title
	if !doc.Fields.HasTitle {
		title = "(none)"
	}
	fmt.Fprintf(w, "Title:    %s\n", title)
	fmt.Fprintf(w, "Abstract: %s\n", doc.Fields.Abstract)
	if doc.Fields.AbstractFound {
		fmt.Fprintf(w, "          (%d line(s) kept, %s)\n", len(doc.Fields.Scan.Fragments), stopText(doc.Fields.Scan))
	}

	if len(doc.Sections) == 0 {
		fmt.Fprintln(w, "Sections: none")
		return
	}
	fmt.Fprintln(w, "Sections:")
	for _, s := range doc.Sections {
		fmt.Fprintf(w, "  line %-4d %s\n", s.Line, s.Marker)
	}
}

func stopText(s fields.ScanResult) string {
	if s.Stop == fields.StopEOF {
		return "ended at end of document"
	}
	return fmt.Sprintf("stopped at line %d: %s", s.StopLine, s.Stop)
}

func init() {
	inspectCmd.Flags().Bool("annotated", false, "print the normalized, section-annotated text")
	addNormalizeFlags(inspectCmd)
	addExtractionFlags(inspectCmd)

	rootCmd.AddCommand(inspectCmd)
}
