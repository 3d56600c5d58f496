// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"regexp"
	"strings"
	"unicode"
)

// Kind classifies a heading line.
type Kind int

const (
	// NotHeading is an ordinary text line.
	NotHeading Kind = iota
	// Other is a heading outside the known vocabulary, such as
	// "2 Related Work" or "EXPERIMENTAL SETUP".
	Other
	Introduction
	Discussion
	Conclusion
	Acknowledgments
	References
)

func (k Kind) String() string {
	switch k {
	case NotHeading:
		return "text"
	case Other:
		return "heading"
	case Introduction:
		return "introduction"
	case Discussion:
		return "discussion"
	case Conclusion:
		return "conclusion"
	case Acknowledgments:
		return "acknowledgments"
	case References:
		return "references"
	}
	return "unknown"
}

// closing reports whether k ends the body of a paper.
func (k Kind) closing() bool {
	return k >= Discussion
}

var (
	// reKnown matches a known section title, optionally numbered with
	// arabic or roman numerals, on a lower-cased trimmed line.
	reKnown = regexp.MustCompile(`^(?:(?:\d+(?:\.\d+)*|[ivxlc]+)[.)]?\s*)?` +
		`(introduction|results and discussion|discussion and conclusions?|discussion and future work|discussion|` +
		`conclusions?|concluding remarks|future work|acknowledge?ments?|references|références|bibliography)` +
		`\s*[.:–-]*$`)

	// reNumbered matches a short numbered heading such as "3 Method" or
	// "IV. Results".
	reNumbered = regexp.MustCompile(`^(?:\d+(?:\.\d+)*|[IVXLC]+)[.)]?\s+[A-Z][^.]*$`)
)

// maxHeadingRunes bounds the length of an unknown heading line.
const maxHeadingRunes = 60

var knownKinds = map[string]Kind{
	"introduction":       Introduction,
	"concluding remarks": Conclusion,
	"future work":        Conclusion,
	"references":         References,
	"références":         References,
	"bibliography":       References,
}

// Classify returns the heading kind of line.
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return NotHeading
	}
	lower := strings.ToLower(trimmed)

	if k := knownKind(lower); k != NotHeading {
		return k
	}
	// Letter-spaced titles: "R E F E R E N C E S".
	if k := knownKind(strings.ReplaceAll(lower, " ", "")); k != NotHeading {
		return k
	}

	if len([]rune(trimmed)) > maxHeadingRunes {
		return NotHeading
	}
	if reNumbered.MatchString(trimmed) || isUpperTitle(trimmed) {
		return Other
	}
	return NotHeading
}

func knownKind(lower string) Kind {
	m := reKnown.FindStringSubmatch(lower)
	if m == nil {
		return NotHeading
	}
	title := m[1]
	switch {
	case strings.HasPrefix(title, "acknowledg"):
		return Acknowledgments
	case strings.HasPrefix(title, "discussion"), title == "results and discussion":
		return Discussion
	case strings.HasPrefix(title, "conclusion"):
		return Conclusion
	}
	return knownKinds[title]
}

// isUpperTitle reports whether line, once a leading number is dropped, is
// mostly upper-case letters.
func isUpperTitle(line string) bool {
	rest := strings.TrimLeftFunc(line, func(r rune) bool {
		return unicode.IsDigit(r) || r == '.' || r == ' '
	})
	var total, upper int
	for _, r := range rest {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return total > 5 && float64(upper)/float64(total) > 0.8
}
