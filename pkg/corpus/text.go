package corpus

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	// pageNumberPattern matches lines containing only a page number, a
	// common artifact of text extracted from paginated documents.
	pageNumberPattern = regexp.MustCompile(`^\d+\s*$`)

	// hyphenBreakPattern matches lines ending with a word broken across a
	// line break.
	hyphenBreakPattern = regexp.MustCompile(`[a-zA-Z]-$`)
)

// TextProvider reads a plain text document from disk.
type TextProvider struct {
	Path string
}

// ParagraphTexts reads the file and splits it into paragraphs.
func (p *TextProvider) ParagraphTexts() ([]string, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return SplitParagraphs(string(data)), nil
}

// SplitParagraphs turns raw document text into a paragraph list. Standalone
// page-number lines are dropped, words hyphenated across line breaks are
// rejoined, blank lines separate paragraphs, and line breaks within a
// paragraph become single spaces.
func SplitParagraphs(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var cleaned []string
	for _, line := range lines {
		if pageNumberPattern.MatchString(strings.TrimSpace(line)) {
			continue
		}
		cleaned = append(cleaned, line)
	}
	cleaned = rejoinHyphenBreaks(cleaned)

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range cleaned {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()

	return paragraphs
}

// rejoinHyphenBreaks merges lines where a word is split across a line break
// with a hyphen. The merge only happens when the next line starts with a
// lowercase letter, so list markers and headings are left alone.
func rejoinHyphenBreaks(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}

	var result []string
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t")
		if i+1 < len(lines) && hyphenBreakPattern.MatchString(line) {
			next := strings.TrimSpace(lines[i+1])
			if len(next) > 0 && next[0] >= 'a' && next[0] <= 'z' {
				result = append(result, line[:len(line)-1]+next)
				i++
				continue
			}
		}
		result = append(result, lines[i])
	}
	return result
}
