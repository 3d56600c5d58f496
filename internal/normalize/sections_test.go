// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotateSections_Lines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Abstract", want: "ABSTRACT"},
		{in: "abstract:", want: "ABSTRACT:"},
		{in: "ABSTRACT -", want: "ABSTRACT -"},
		{in: "  Introduction.  ", want: "INTRODUCTION."},
		{in: "Conclusion –", want: "CONCLUSION –"},
		{in: "State of the art:", want: "STATE OF THE ART:"},
		{in: "state-of-the-art", want: "STATE-OF-THE-ART"},
		{in: "Méthode", want: "MÉTHODE"},
		{in: "References", want: "REFERENCES"},
		{in: "Not an abstract section", want: "Not an abstract section"},
		{in: "1. Introduction", want: "1. Introduction"},
		{in: "Results and discussion", want: "Results and discussion"},
		{in: "Methods", want: "Methods"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, AnnotateSections(tt.in))
		})
	}
}

func TestAnnotateSections_PreservesLineCount(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"Title\nabstract\nbody\n\nReferences\n",
		"a\n\n\nb\n",
		"discussion\ndiscussion\ndiscussion",
	}
	for _, in := range inputs {
		got := AnnotateSections(in)
		assert.Len(t, strings.Split(got, "\n"), len(strings.Split(in, "\n")), "input %q", in)
	}
}

func TestAnnotateSections_LeavesOtherLinesUntouched(t *testing.T) {
	in := "  My Paper Title  \nabstract\n   body   text  "
	want := "  My Paper Title  \nABSTRACT\n   body   text  "
	assert.Equal(t, want, AnnotateSections(in))
}

func TestIsSectionMarker(t *testing.T) {
	marker, ok := IsSectionMarker("  Bibliography:  ")
	assert.True(t, ok)
	assert.Equal(t, "bibliography", marker)

	_, ok = IsSectionMarker("Bibliography of the author")
	assert.False(t, ok)
}

func TestSections(t *testing.T) {
	text := "Title\nAbstract\ntext\nIntroduction\nmore\nReferences:"
	want := []Section{
		{Marker: "abstract", Line: 1},
		{Marker: "introduction", Line: 3},
		{Marker: "references", Line: 5},
	}
	assert.Equal(t, want, Sections(text))
	assert.Empty(t, Sections("no markers here"))
}
