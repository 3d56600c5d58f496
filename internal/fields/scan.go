// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import "strings"

// Action is what the scan does with one line.
type Action int

const (
	// Accumulate keeps the line (or its left column) as a fragment.
	Accumulate Action = iota
	// Skip ignores the line and continues.
	Skip
	// Stop ends the abstract before the line.
	Stop
)

func (a Action) String() string {
	switch a {
	case Accumulate:
		return "accumulate"
	case Skip:
		return "skip"
	case Stop:
		return "stop"
	}
	return "unknown"
}

// StopReason records why the scan ended.
type StopReason int

const (
	// StopEOF means the document ended while scanning.
	StopEOF StopReason = iota
	// StopIndent means a deeply indented line followed abstract content.
	StopIndent
	// StopBlank means a blank line closed the abstract paragraph.
	StopBlank
)

func (r StopReason) String() string {
	switch r {
	case StopEOF:
		return "end of document"
	case StopIndent:
		return "indented line"
	case StopBlank:
		return "blank line"
	}
	return "unknown"
}

// Decision is the scan outcome for a single line.
type Decision struct {
	Line     int
	Action   Action
	Reason   StopReason // set when Action is Stop
	Fragment string     // set when Action is Accumulate
}

// ScanResult holds the ordered abstract fragments and how the scan ended.
type ScanResult struct {
	Fragments []string
	Stop      StopReason

	// StopLine is the index of the line that ended the scan, or len(lines)
	// on StopEOF.
	StopLine int

	// Trace holds one decision per scanned line.
	Trace []Decision
}

// Scan walks lines forward from the line after marker and collects abstract
// fragments. Rules are applied per line in priority order:
//
//  1. indented past the threshold with fragments collected: stop;
//  2. blank, and not the line right after the marker: stop;
//  3. indented past the threshold with nothing collected: skip;
//  4. otherwise keep the text left of the first column gap, trimmed.
//
// A blank line right after the marker is kept as an empty fragment, so a
// deeply indented line after it ends the scan.
func Scan(lines []string, marker int, cfg Config) ScanResult {
	cfg = cfg.withDefaults()
	res := ScanResult{Stop: StopEOF, StopLine: len(lines)}

	for j := marker + 1; j < len(lines); j++ {
		line := lines[j]
		action, reason := classifyLine(line, j == marker+1, len(res.Fragments), cfg)
		d := Decision{Line: j, Action: action}

		switch action {
		case Stop:
			d.Reason = reason
			res.Trace = append(res.Trace, d)
			res.Stop = reason
			res.StopLine = j
			return res
		case Accumulate:
			d.Fragment = ColumnFragment(line, cfg.ColumnGap)
			res.Fragments = append(res.Fragments, d.Fragment)
		}
		res.Trace = append(res.Trace, d)
	}
	return res
}

// classifyLine decides what to do with line. first is true for the line
// directly after the marker; collected is the number of fragments so far.
func classifyLine(line string, first bool, collected int, cfg Config) (Action, StopReason) {
	indented := LeadingSpaces(line) > cfg.IndentThreshold
	blank := isBlank(line)

	switch {
	case indented && collected > 0:
		return Stop, StopIndent
	case blank && !first:
		return Stop, StopBlank
	case indented:
		return Skip, StopEOF
	}
	return Accumulate, StopEOF
}

// LeadingSpaces counts the space characters at the start of line. Tabs and
// other whitespace end the count.
func LeadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// ColumnFragment returns line cut at its first run of gap spaces, trimmed.
// A line without such a run is returned whole, trimmed.
func ColumnFragment(line string, gap int) string {
	if gap <= 0 {
		gap = DefaultColumnGap
	}
	if i := strings.Index(line, strings.Repeat(" ", gap)); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
