// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"testing"
)

func TestClassifyLine(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name       string
		line       string
		first      bool
		collected  int
		wantAction Action
		wantReason StopReason
	}{
		{name: "five spaces accumulate", line: "     text", collected: 1, wantAction: Accumulate},
		{name: "six spaces stop after content", line: "      text", collected: 1, wantAction: Stop, wantReason: StopIndent},
		{name: "six spaces skip before content", line: "      text", wantAction: Skip},
		{name: "blank stops in body", line: "", collected: 2, wantAction: Stop, wantReason: StopBlank},
		{name: "blank stops before content when not first", line: "   ", wantAction: Stop, wantReason: StopBlank},
		{name: "blank right after marker accumulates", line: "", first: true, wantAction: Accumulate},
		{name: "indented blank after content stops on indent", line: "        ", collected: 1, wantAction: Stop, wantReason: StopIndent},
		{name: "indented blank right after marker skips", line: "        ", first: true, wantAction: Skip},
		{name: "tab indented line accumulates", line: "\t\t\ttext", collected: 1, wantAction: Accumulate},
		{name: "plain line", line: "text", first: true, wantAction: Accumulate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, reason := classifyLine(tt.line, tt.first, tt.collected, cfg)
			if action != tt.wantAction {
				t.Errorf("action = %v, want %v", action, tt.wantAction)
			}
			if action == Stop && reason != tt.wantReason {
				t.Errorf("reason = %v, want %v", reason, tt.wantReason)
			}
		})
	}
}

func TestLeadingSpaces(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"   abc", 3},
		{"      ", 6},
		{"\t  abc", 0},
		{"  \tabc", 2},
	}
	for _, tt := range tests {
		if got := LeadingSpaces(tt.line); got != tt.want {
			t.Errorf("LeadingSpaces(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestColumnFragment(t *testing.T) {
	tests := []struct {
		line string
		gap  int
		want string
	}{
		{"Result part      column two text", 6, "Result part"},
		{"five     spaces stay", 6, "five     spaces stay"},
		{"six      spaces cut", 6, "six"},
		{"  lead   and trail  ", 6, "lead   and trail"},
		{"a   b", 3, "a"},
		{"no gap", 0, "no gap"},
	}
	for _, tt := range tests {
		if got := ColumnFragment(tt.line, tt.gap); got != tt.want {
			t.Errorf("ColumnFragment(%q, %d) = %q, want %q", tt.line, tt.gap, got, tt.want)
		}
	}
}

func TestScan_StopsAtEOF(t *testing.T) {
	lines := []string{"abstract", "one", "two"}
	res := Scan(lines, 0, DefaultConfig())

	if res.Stop != StopEOF {
		t.Errorf("stop = %v, want %v", res.Stop, StopEOF)
	}
	if res.StopLine != len(lines) {
		t.Errorf("stop line = %d, want %d", res.StopLine, len(lines))
	}
	if len(res.Fragments) != 2 {
		t.Errorf("fragments = %v, want 2 entries", res.Fragments)
	}
}

func TestScan_BlankAfterMarkerCountsAsFragment(t *testing.T) {
	lines := []string{"Abstract", "", "        column bleed", "Real text."}
	res := Scan(lines, 0, DefaultConfig())

	if res.Stop != StopIndent {
		t.Errorf("stop = %v, want %v", res.Stop, StopIndent)
	}
	if res.StopLine != 2 {
		t.Errorf("stop line = %d, want 2", res.StopLine)
	}
	if len(res.Fragments) != 1 || res.Fragments[0] != "" {
		t.Errorf("fragments = %q, want one empty fragment", res.Fragments)
	}
}

func TestScan_MarkerIsLastLine(t *testing.T) {
	res := Scan([]string{"x", "abstract"}, 1, DefaultConfig())
	if len(res.Fragments) != 0 || len(res.Trace) != 0 {
		t.Errorf("expected empty scan, got %+v", res)
	}
}

func TestStringers(t *testing.T) {
	if Stop.String() != "stop" || Skip.String() != "skip" || Accumulate.String() != "accumulate" {
		t.Error("unexpected Action strings")
	}
	if StopBlank.String() != "blank line" || StopIndent.String() != "indented line" || StopEOF.String() != "end of document" {
		t.Error("unexpected StopReason strings")
	}
}
