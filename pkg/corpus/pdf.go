package corpus

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFProvider extracts text from a PDF document. Pages that fail to decode
// are skipped rather than failing the whole document.
type PDFProvider struct {
	Path string

	// MaxPages caps how many pages are read. Zero or negative means all.
	MaxPages int
}

// ParagraphTexts extracts the text of each page in order and splits the
// combined text into paragraphs. Page boundaries are treated as paragraph
// breaks.
func (p *PDFProvider) ParagraphTexts() ([]string, error) {
	f, r, err := pdf.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if p.MaxPages > 0 && pageCount > p.MaxPages {
		pageCount = p.MaxPages
	}

	var pages []string
	for i := 1; i <= pageCount; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", p.Path)
	}

	return SplitParagraphs(strings.Join(pages, "\n\n")), nil
}
