// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzConverter extracts text in-process with MuPDF through go-fitz. MuPDF
// emits text in reading order without layout padding, so column indentation
// is mostly lost; prefer pdftotext for two-column papers.
type FitzConverter struct{}

// Convert returns the text of every page of pdfPath, pages separated by a
// blank line. Unreadable pages are skipped.
func (FitzConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	var b strings.Builder
	n := doc.NumPage()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		b.WriteString(text)
		if i < n-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String(), nil
}
