// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Article holds the front matter and main section contents of one paper.
// Title and Abstract follow the same rules as Record.
// Per prd006-summary R1.1-R1.4.
type Article struct {
	// Filename is the base name of the text file, spaces replaced by "_".
	Filename string `json:"filename" yaml:"filename" xml:"preamble"`

	Title    string `json:"title" yaml:"title" xml:"titre"`
	Authors  string `json:"authors" yaml:"authors" xml:"auteur"`
	Abstract string `json:"abstract" yaml:"abstract" xml:"abstract"`

	// Introduction is the introduction paragraph text joined on one line.
	Introduction string `json:"introduction" yaml:"introduction" xml:"introduction"`

	// Body runs from the end of the introduction to the first closing
	// section (discussion, conclusion, acknowledgments, references).
	Body string `json:"body" yaml:"body" xml:"corps"`

	Conclusion   string `json:"conclusion" yaml:"conclusion" xml:"conclusion"`
	Discussion   string `json:"discussion" yaml:"discussion" xml:"discussion"`
	Bibliography string `json:"bibliography" yaml:"bibliography" xml:"biblio"`
}

// SummaryFormat selects the combined summary file layout.
type SummaryFormat string

const (
	SummaryText SummaryFormat = "txt"
	SummaryXML  SummaryFormat = "xml"
)

// SummaryConfig holds settings for the combined article summary.
// Per prd006-summary R2.1.
type SummaryConfig struct {
	// Format is txt (resumes.txt) or xml (articles.xml).
	Format SummaryFormat `json:"format" yaml:"format"`
}
