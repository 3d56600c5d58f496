// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans raw text produced by PDF text extraction and marks
// recognized section headers.
// Implements: prd001-normalization (R1, R2);
//
//	docs/ARCHITECTURE § Normalization.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/paperscan/pkg/types"
)

var (
	// reBlankRun matches two or more consecutive newlines.
	reBlankRun = regexp.MustCompile(`\n{2,}`)
	// reSpaceRun matches two or more consecutive spaces.
	reSpaceRun = regexp.MustCompile(` {2,}`)
)

// Normalize collapses redundant whitespace in extracted text. Runs of
// newlines become a single blank line, runs of spaces become one space, and
// the buffer is trimmed. Lines are never reordered. Normalize is idempotent
// and accepts any input, including the empty string.
func Normalize(raw string) string {
	text := reBlankRun.ReplaceAllString(raw, "\n\n")
	text = reSpaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// LineEndings converts CRLF and lone CR line breaks to LF, so text saved on
// Windows or classic Mac splits into the same lines.
func LineEndings(raw string) string {
	if !strings.Contains(raw, "\r") {
		return raw
	}
	return strings.ReplaceAll(strings.ReplaceAll(raw, "\r\n", "\n"), "\r", "\n")
}

// Unicode returns raw in Unicode normalization form C. PDF text layers often
// emit decomposed accents ("e" + U+0301), which would otherwise never match
// marker words such as "méthode".
func Unicode(raw string) string {
	return norm.NFC.String(raw)
}

// Prepare runs the whole cleanup on raw extractor output: LineEndings,
// optional NFC composition, Normalize unless cfg.KeepLayout is set, then AnnotateSections
// unless cfg.PlainHeaders is set.
//
// Normalize collapses the space runs that the abstract scan reads as column
// layout, so text meant for field extraction is prepared with KeepLayout.
func Prepare(raw string, cfg types.NormalizeConfig) string {
	text := LineEndings(raw)
	if cfg.NFC {
		text = Unicode(text)
	}
	if !cfg.KeepLayout {
		text = Normalize(text)
	}
	if !cfg.PlainHeaders {
		text = AnnotateSections(text)
	}
	return text
}
