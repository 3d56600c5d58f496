// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/paperscan/pkg/types"
)

const (
	xmlFileName  = "articles.xml"
	textFileName = "resumes.txt"
	separator    = "=============================="
)

// ErrUnknownFormat is returned for a summary format other than txt or xml.
var ErrUnknownFormat = errors.New("unknown summary format")

// FileName returns the summary file name for format.
func FileName(format types.SummaryFormat) (string, error) {
	switch format {
	case types.SummaryXML:
		return xmlFileName, nil
	case types.SummaryText, "":
		return textFileName, nil
	}
	return "", fmt.Errorf("%w: %q (use txt or xml)", ErrUnknownFormat, format)
}

type xmlArticles struct {
	XMLName  xml.Name        `xml:"articles"`
	Articles []types.Article `xml:"article"`
}

// WriteXML writes articles as one <articles> document with one <article>
// element per paper.
func WriteXML(w io.Writer, articles []types.Article) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(xmlArticles{Articles: articles}); err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteText writes one labelled block per article followed by the total
// processing time.
func WriteText(w io.Writer, articles []types.Article, elapsed time.Duration) error {
	var b strings.Builder
	for _, a := range articles {
		fmt.Fprintln(&b, separator)
		fmt.Fprintf(&b, "Fichier        : %s\n", a.Filename)
		fmt.Fprintf(&b, "Titre          : %s\n", a.Title)
		fmt.Fprintf(&b, "Auteurs        : %s\n", a.Authors)
		fmt.Fprintf(&b, "Résumé         : %s\n", a.Abstract)
		fmt.Fprintf(&b, "Introduction   : %s\n", a.Introduction)
		fmt.Fprintf(&b, "Développement  : %s\n", a.Body)
		fmt.Fprintf(&b, "Discussion     : %s\n", a.Discussion)
		fmt.Fprintf(&b, "Conclusion     : %s\n", a.Conclusion)
		fmt.Fprintf(&b, "Références     : %s\n", a.Bibliography)
		fmt.Fprintf(&b, "Longueur texte : %d caractères\n\n", TextLength(a))
	}
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Traitement terminé en %d ms\n", elapsed.Milliseconds())

	_, err := io.WriteString(w, b.String())
	return err
}

// TextLength counts the characters of the abstract and the main sections.
func TextLength(a types.Article) int {
	n := 0
	for _, s := range []string{a.Abstract, a.Introduction, a.Body, a.Discussion, a.Conclusion} {
		n += utf8.RuneCountInString(s)
	}
	return n
}

// WriteSummary writes the summary file for format into dir and returns its
// path.
func WriteSummary(dir string, format types.SummaryFormat, articles []types.Article, elapsed time.Duration) (string, error) {
	name, err := FileName(format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if name == xmlFileName {
		err = WriteXML(f, articles)
	} else {
		err = WriteText(f, articles, elapsed)
	}
	if err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, f.Close()
}
