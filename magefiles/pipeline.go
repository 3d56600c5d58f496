//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Pipeline groups targets that run the built CLI over the project
// directories created by Init.
type Pipeline mg.Namespace

func paperscan(args ...string) error {
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Convert extracts text from every PDF in papers/ into texts/.
func (Pipeline) Convert() error {
	mg.Deps(Build)
	return paperscan("convert", "--text-dir", "texts", "papers")
}

// Analyze writes a record file for every text in texts/ into records/ and
// indexes the records.
func (Pipeline) Analyze() error {
	mg.Deps(Build)
	return paperscan("analyze", "--out-dir", "records", "--index", "texts")
}

// All runs Convert then Analyze.
func (Pipeline) All() {
	mg.SerialDeps(Pipeline.Convert, Pipeline.Analyze)
}
