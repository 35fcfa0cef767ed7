// Package extract implements the glossary extraction engine for legal-style
// documents: one-pass classification of paragraphs into direct definitions
// and clause cross-references, plus heuristic recovery of definitions
// embedded in parenthetical drafting conventions elsewhere in the document.
package extract

import (
	"regexp"
	"strings"
)

var (
	// controlCharPattern matches C0 and C1 control characters.
	controlCharPattern = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)

	// whitespaceRunPattern matches any run of whitespace.
	whitespaceRunPattern = regexp.MustCompile(`\s+`)

	// Term keys carry no leading or trailing punctuation.
	leadingNonWordPattern  = regexp.MustCompile(`^\W+`)
	trailingNonWordPattern = regexp.MustCompile(`\W+$`)
)

// curlyQuoteReplacer maps typographic double quotes to the straight quote the
// definition patterns anchor on.
var curlyQuoteReplacer = strings.NewReplacer("“", `"`, "”", `"`)

// CleanText canonicalizes paragraph text: control characters are removed,
// curly double quotes become straight quotes, and whitespace runs collapse to
// a single space. Total and idempotent; empty input yields "".
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = controlCharPattern.ReplaceAllString(s, "")
	s = curlyQuoteReplacer.Replace(s)
	s = whitespaceRunPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeTerm produces the canonical lookup key for a term: cleaned,
// stripped of surrounding quote and non-word characters, lowercased.
// Empty or punctuation-only input yields "", signalling "no term".
func NormalizeTerm(s string) string {
	s = CleanText(s)
	s = strings.Trim(s, "\"'‘’ ")
	s = leadingNonWordPattern.ReplaceAllString(s, "")
	s = trailingNonWordPattern.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
