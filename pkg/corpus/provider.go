// Package corpus loads legal documents and splits them into the paragraph
// lists the glossary builder consumes. Plain text and PDF sources are
// supported; both produce paragraphs in document order.
package corpus

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Provider yields the paragraphs of one document. ParagraphTexts re-reads
// the underlying source on every call, so a rebuild always observes the
// file's current contents.
type Provider interface {
	ParagraphTexts() ([]string, error)
}

// Options configures document loading.
type Options struct {
	// MaxPDFPages caps the number of PDF pages read. Zero or negative
	// means no cap.
	MaxPDFPages int
}

// ForFile picks a provider by file extension. PDF files get the PDF text
// extractor; everything else is treated as plain text.
func ForFile(path string, opts Options) (Provider, error) {
	if path == "" {
		return nil, fmt.Errorf("no document path given")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFProvider{Path: path, MaxPages: opts.MaxPDFPages}, nil
	default:
		return &TextProvider{Path: path}, nil
	}
}
