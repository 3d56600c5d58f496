// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperscan CLI.
// Implements: prd001-normalization, prd002-field-extraction,
//             prd003-conversion, prd004-analysis, prd005-index (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperscan CLI.
var rootCmd = &cobra.Command{
	Use:   "paperscan",
	Short: "Extract titles, abstracts and section markers from paper PDFs",
	Long: `paperscan turns research paper PDFs into plain text and pulls out the
title, the abstract and the section headers with layout-aware heuristics.

Each stage is a subcommand: convert extracts and normalizes text, analyze
writes one record file per text, run chains both, watch analyzes texts as
they appear, and index queries the SQLite record index.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperscan.yaml or ~/.config/paperscan/paperscan.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print abstract scan traces to stderr")
}

func initConfig() {
	// .env values become process environment before viper reads it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Ignoring .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperscan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperscan"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("PAPERSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
