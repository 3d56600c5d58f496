// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Analyze text files as they appear in a directory",
	Long: `Watch analyzes every text file already in dir, then keeps analyzing
text files as they are created or rewritten until interrupted. Record files
are never re-analyzed, so the output directory may be dir itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := pipelineConfig(cmd)
		if err != nil {
			return err
		}

		a, closeIndex, err := newAnalyzer(cmd, cfg)
		if err != nil {
			return err
		}
		defer closeIndex()

		return a.Watch(cmd.Context(), args[0])
	},
}

func init() {
	addAnalysisFlags(watchCmd)
	addExtractionFlags(watchCmd)

	rootCmd.AddCommand(watchCmd)
}
