// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package article splits a paper's text into front matter and the contents
// of its main sections, and writes combined summaries of many papers.
// Implements: prd006-summary (R1, R2);
//
//	docs/ARCHITECTURE § Summary.
package article

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paperscan/internal/fields"
	"github.com/pdiddy/paperscan/pkg/types"
)

// Placeholders for sections that could not be located.
const (
	NoConclusion   = "Aucune conclusion trouvée."
	NoDiscussion   = "Aucune discussion trouvée."
	NoBibliography = "Aucune bibliographie trouvée."
)

var (
	// reAbstractWord matches "abstract" as a whole word.
	reAbstractWord = regexp.MustCompile(`(?i)\babstract\b`)

	// reBodyLike matches a line that reads like running text rather than a
	// name or an affiliation.
	reBodyLike = regexp.MustCompile(`(?i)^[a-z][a-z\s,;\-()\[\].:'"0-9]+$`)
)

// heading is a classified heading line.
type heading struct {
	line int
	kind Kind
}

// Extract builds the article for text read from filename. Title and
// abstract come from fields.Extract with cfg; the other parts are located
// from heading lines.
func Extract(filename, text string, cfg fields.Config) types.Article {
	res := fields.Extract(text, cfg)
	lines := strings.Split(text, "\n")

	a := types.Article{
		Filename:     strings.ReplaceAll(filename, " ", "_"),
		Title:        res.Title,
		Abstract:     res.Abstract,
		Conclusion:   NoConclusion,
		Discussion:   NoDiscussion,
		Bibliography: NoBibliography,
	}
	if !res.HasTitle {
		return a
	}

	a.Authors = Authors(lines, 1)

	// Sections start after the abstract, or after the title when there is
	// no abstract marker.
	start := 1
	if res.MarkerLine >= 0 {
		start = res.MarkerLine + 1
	}
	headings := findHeadings(lines, start)

	// Without an introduction heading the body starts where the abstract
	// scan stopped.
	bodyStart := start
	if res.MarkerLine >= 0 {
		bodyStart = res.Scan.StopLine
	}
	if intro, ok := firstOf(headings, start, Introduction); ok {
		end := nextHeading(headings, intro.line, len(lines), func(Kind) bool { return true })
		a.Introduction = joinParagraph(lines[intro.line+1 : end])
		bodyStart = end
	}

	bodyEnd := nextHeading(headings, bodyStart-1, len(lines), Kind.closing)
	a.Body = joinBlock(lines[bodyStart:bodyEnd])

	if h, ok := firstOf(headings, bodyEnd, Discussion); ok {
		end := nextHeading(headings, h.line, len(lines), func(k Kind) bool { return k > Discussion })
		if text := joinBlock(lines[h.line+1 : end]); text != "" {
			a.Discussion = text
		}
	}
	if h, ok := firstOf(headings, bodyEnd, Conclusion); ok {
		end := nextHeading(headings, h.line, len(lines), func(k Kind) bool { return k > Conclusion })
		if text := joinBlock(lines[h.line+1 : end]); text != "" {
			a.Conclusion = text
		}
	}
	if h, ok := firstOf(headings, start, References); ok {
		if text := joinBlock(lines[h.line+1:]); text != "" {
			a.Bibliography = text
		}
	}
	return a
}

// Authors collects the author block that follows the title, starting at
// line from. Blank lines are ignored. The block ends at a line naming the
// abstract, at an introduction heading, or at the first line after the
// block started that reads like running text.
func Authors(lines []string, from int) string {
	var parts []string
	for i := from; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if reAbstractWord.MatchString(trimmed) || Classify(trimmed) == Introduction {
			break
		}
		if len(parts) > 0 && reBodyLike.MatchString(trimmed) {
			break
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}

func findHeadings(lines []string, from int) []heading {
	var out []heading
	for i := from; i < len(lines); i++ {
		if k := Classify(lines[i]); k != NotHeading {
			out = append(out, heading{line: i, kind: k})
		}
	}
	return out
}

// firstOf returns the first heading of kind at or after line from.
func firstOf(headings []heading, from int, kind Kind) (heading, bool) {
	for _, h := range headings {
		if h.line >= from && h.kind == kind {
			return h, true
		}
	}
	return heading{}, false
}

// nextHeading returns the line of the first heading after line after whose
// kind satisfies stop, or end.
func nextHeading(headings []heading, after, end int, stop func(Kind) bool) int {
	for _, h := range headings {
		if h.line > after && stop(h.kind) {
			return h.line
		}
	}
	return end
}

// joinParagraph joins the trimmed non-blank lines with single spaces.
func joinParagraph(lines []string) string {
	var parts []string
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// joinBlock keeps the lines as they are and trims the block.
func joinBlock(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
