// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscan/internal/store"
	"github.com/pdiddy/paperscan/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Query the record index (search, list, export)",
	Long: `Index reads the SQLite record index filled by analyze --index. Use
subcommands to search titles and abstracts, list records, or export the
whole index as YAML.`,
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search titles and abstracts",
	Long: `Search returns records whose title or abstract contains the query,
case-insensitively. --missing selects records without an abstract and
--run restricts results to one analysis run.`,
	RunE: runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	missing, _ := cmd.Flags().GetBool("missing")
	runID, _ := cmd.Flags().GetString("run")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := store.SearchOptions{
		Query:      strings.Join(args, " "),
		Missing:    missing,
		RunID:      runID,
		MaxResults: limit,
	}
	if opts.Query == "" && !opts.Missing && opts.RunID == "" {
		return fmt.Errorf("query or filter required: provide a search query, --missing, or --run")
	}

	s, err := openIndex(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRecords(os.Stdout, records, jsonOutput)
}

// --- list subcommand ---

var indexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every indexed record",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.All(cmd.Context())
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatRecords(os.Stdout, records, jsonOutput)
	},
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the record index to YAML",
	Long: `Export writes every indexed record to a YAML file, or to stdout when
--output is "-".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		s, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if output == "-" {
			return s.Export(cmd.Context(), os.Stdout)
		}
		if err := s.ExportFile(cmd.Context(), output); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", output)
		return nil
	},
}

// --- shared helpers ---

func openIndex(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return nil, err
	}
	return store.NewStore(cfg.Store)
}

func formatRecords(w io.Writer, records []types.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	fmt.Fprintf(w, "%-30s  %-40s  %s\n", "File", "Title", "Abstract")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, r := range records {
		abstract := r.Abstract
		if !r.AbstractFound {
			abstract = "(none)"
		}
		fmt.Fprintf(w, "%-30s  %-40s  %s\n", truncate(r.Filename, 30), truncate(r.Title, 40), truncate(abstract, 36))
	}

	fmt.Fprintf(w, "\n%d records\n", len(records))
	return nil
}

const ellipsis = "..."

// truncate shortens s to at most n runes, marking the cut with an ellipsis
// when there is room for one.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= len(ellipsis) {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-len(ellipsis)]) + ellipsis
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("db", "records/index.db", "SQLite index path")
	indexCmd.PersistentFlags().Int("max-results", 20, "default maximum number of search results")

	indexSearchCmd.Flags().Bool("missing", false, "only records without an abstract")
	indexSearchCmd.Flags().String("run", "", "only records from this analysis run ID")
	indexSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")

	indexListCmd.Flags().Bool("json", false, "output records as JSON")

	indexExportCmd.Flags().String("output", "records/export.yaml", "export file path, or - for stdout")

	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexListCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
