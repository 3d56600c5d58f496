// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"strings"
)

// Markers is the closed vocabulary of section headers recognized by
// AnnotateSections, in lower case.
var Markers = []string{
	"abstract",
	"introduction",
	"state of the art",
	"state-of-the-art",
	"méthode",
	"method",
	"experiments",
	"results",
	"discussion",
	"conclusion",
	"references",
	"bibliography",
}

// markerTrailer is the set of characters allowed after a marker word.
const markerTrailer = ` .:–-`

var reMarker = buildMarkerPattern(Markers)

// buildMarkerPattern compiles a pattern matching exactly one marker followed
// only by trailer characters.
func buildMarkerPattern(markers []string) *regexp.Regexp {
	quoted := make([]string, len(markers))
	for i, m := range markers {
		quoted[i] = regexp.QuoteMeta(m)
	}
	return regexp.MustCompile(`^(` + strings.Join(quoted, "|") + `)[` + regexp.QuoteMeta(markerTrailer) + `]*$`)
}

// Section is a marker line found in a document.
type Section struct {
	// Marker is the matched vocabulary word, lower case.
	Marker string `json:"marker" yaml:"marker"`

	// Line is the zero-based line index.
	Line int `json:"line" yaml:"line"`
}

// IsSectionMarker reports whether line, once trimmed and lower-cased, is a
// marker word followed only by optional punctuation and spaces. It returns
// the matched marker.
func IsSectionMarker(line string) (string, bool) {
	m := reMarker.FindStringSubmatch(strings.ToLower(strings.TrimSpace(line)))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// AnnotateSections upper-cases every marker line and leaves all other lines
// untouched. The output always has as many lines as the input.
func AnnotateSections(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if _, ok := IsSectionMarker(line); ok {
			lines[i] = strings.ToUpper(strings.TrimSpace(line))
		}
	}
	return strings.Join(lines, "\n")
}

// Sections lists the marker lines of text in document order.
func Sections(text string) []Section {
	var out []Section
	for i, line := range strings.Split(text, "\n") {
		if marker, ok := IsSectionMarker(line); ok {
			out = append(out, Section{Marker: marker, Line: i})
		}
	}
	return out
}
