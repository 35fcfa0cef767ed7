package extract

import (
	"regexp"
	"strings"
)

const (
	// minExtractLen is the minimum length for a usable extracted phrase.
	minExtractLen = 15

	// minPhraseLen is the minimum length the nearest-phrase heuristic accepts.
	minPhraseLen = 20

	// maxDefinitionLen caps extracted definitions; longer text is truncated
	// with the final character replaced by an ellipsis.
	maxDefinitionLen = 260
)

var (
	// beingThePattern matches parenthetical interiors of the form
	// `<X> being the "<Term>"`, with or without quotes around the term.
	beingThePattern = regexp.MustCompile(`(?i)^(.+?)\s+being the\s+"?([^"]+?)"?\s*$`)

	// amountReferentPattern matches interiors that refer back to an amount
	// described before the parenthetical, e.g. "any such amounts ...".
	amountReferentPattern = regexp.MustCompile(`(?i)^(?:any such|such|any)\s+amounts?\b`)

	// sentenceBreakPattern splits text on sentence-ending punctuation
	// followed by whitespace.
	sentenceBreakPattern = regexp.MustCompile(`[.;:!?]\s+`)
)

// cueWords introduce the defining phrase before a parenthetical, as in
// "...repaid via equal monthly instalments (the \"Repayment Amounts\")".
// The rightmost occurrence wins.
var cueWords = []string{" via ", " as ", " in the form of ", " through ", " using "}

// parenSpan is one (...) substring of a paragraph.
type parenSpan struct {
	start    int // byte offset of the opening parenthesis
	interior string
}

// FindEmbedded scans the corpus, in paragraph order, for a parenthetical
// mentioning the term and recovers the defining phrase immediately preceding
// or within it. It is the fallback for terms known only through a clause
// cross-reference, since the referenced clause's prose is not separately
// indexed. A parenthetical that yields no usable phrase does not stop the
// scan; the next parenthetical and then the next paragraph are tried.
// Returns false when the whole corpus yields nothing.
func FindEmbedded(corpus []string, termKey string) (string, bool) {
	if termKey == "" {
		return "", false
	}
	counterpart := Singularize(termKey)

	for _, raw := range corpus {
		para := CleanText(raw)
		if !strings.Contains(para, "(") {
			continue
		}
		for _, span := range parentheticals(para) {
			interior := strings.ToLower(CleanText(span.interior))
			if !strings.Contains(interior, termKey) && !strings.Contains(interior, counterpart) {
				continue
			}
			if def, ok := extractAround(para[:span.start], span.interior, termKey, counterpart); ok {
				return truncateDefinition(def), true
			}
		}
	}
	return "", false
}

// parentheticals returns the (...) spans of a paragraph from left to right.
// Nesting is not tracked: each span runs from an opening parenthesis to the
// next closing one.
func parentheticals(para string) []parenSpan {
	var spans []parenSpan
	for i := 0; i < len(para); {
		open := strings.IndexByte(para[i:], '(')
		if open < 0 {
			break
		}
		open += i
		end := strings.IndexByte(para[open+1:], ')')
		if end < 0 {
			break
		}
		end += open + 1
		spans = append(spans, parenSpan{start: open, interior: para[open+1 : end]})
		i = end + 1
	}
	return spans
}

// extractAround runs the extraction chain for one matching parenthetical:
// the parenthetical-internal "being the" pattern, the amount-referent
// pattern when the interior starts with one, the nearest-phrase heuristic,
// and finally the last sentence of the preceding text. The first usable
// result wins.
func extractAround(preceding, interior, termKey, counterpart string) (string, bool) {
	if def := extractBeingThe(interior, termKey, counterpart); usable(def) {
		return def, true
	}
	if amountReferentPattern.MatchString(strings.TrimSpace(interior)) {
		if def := extractAmountReferent(preceding); usable(def) {
			return def, true
		}
	}
	if def := extractNearestPhrase(preceding); usable(def) {
		return def, true
	}
	if def := lastSentence(preceding); usable(def) {
		return def, true
	}
	return "", false
}

func usable(s string) bool {
	return len(strings.TrimSpace(s)) >= minExtractLen
}

// extractBeingThe handles interiors of the form `<X> being the "<Term>"`,
// returning X when the quoted term is the one being resolved.
func extractBeingThe(interior, termKey, counterpart string) string {
	m := beingThePattern.FindStringSubmatch(CleanText(interior))
	if m == nil {
		return ""
	}
	named := NormalizeTerm(m[2])
	if !strings.Contains(named, termKey) && !strings.Contains(named, counterpart) {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractAmountReferent handles interiors like "any such amounts, the
// \"Clawback Amount\"": the defining phrase is the text from the last
// "such amount(s)" in the preceding prose onward, with the referent prefix
// rewritten so the phrase stands alone. "such amount" is a prefix of both
// forms, so one search finds the rightmost occurrence of either. Falls back
// to the last sentence when the preceding text never mentions one.
func extractAmountReferent(preceding string) string {
	idx := strings.LastIndex(lowerASCII(preceding), "such amount")
	if idx < 0 {
		return lastSentence(preceding)
	}
	return rewriteAmountPrefix(strings.TrimSpace(preceding[idx:]))
}

// lowerASCII lowercases ASCII letters only. Unlike strings.ToLower it never
// changes byte length (U+0130 and U+212A lowercase to a different number of
// bytes), so indices found in the result are valid in the input.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// rewriteAmountPrefix rewrites a leading "such amount(s) as " or
// "such amount(s) " into "amounts ".
func rewriteAmountPrefix(s string) string {
	lower := lowerASCII(s)
	for _, prefix := range []string{"such amounts as ", "such amount as ", "such amounts ", "such amount "} {
		if strings.HasPrefix(lower, prefix) {
			return "amounts " + strings.TrimSpace(s[len(prefix):])
		}
	}
	return s
}

// extractNearestPhrase is the default fallback: the phrase starts at the
// rightmost cue word or just after the rightmost strong delimiter, whichever
// is later, with any leading cue token stripped. Short results are rejected
// so a stray "as" near the parenthetical cannot produce a fragment.
func extractNearestPhrase(preceding string) string {
	lower := lowerASCII(preceding)

	cuePos := -1
	for _, cue := range cueWords {
		if idx := strings.LastIndex(lower, cue); idx > cuePos {
			cuePos = idx
		}
	}

	start := strings.LastIndexAny(preceding, ".;:") + 1
	if cuePos > start {
		start = cuePos
	}

	phrase := stripLeadingCue(strings.TrimSpace(preceding[start:]))
	if len(phrase) < minPhraseLen {
		return ""
	}
	return phrase
}

// stripLeadingCue removes a cue word token from the start of a phrase.
func stripLeadingCue(s string) string {
	lower := lowerASCII(s)
	for _, cue := range cueWords {
		token := strings.TrimSpace(cue) + " "
		if strings.HasPrefix(lower, token) {
			return strings.TrimSpace(s[len(token):])
		}
	}
	return s
}

// lastSentence returns the final non-empty sentence of the preceding text,
// or the whole trimmed text when nothing splits.
func lastSentence(preceding string) string {
	text := strings.TrimSpace(preceding)
	if text == "" {
		return ""
	}
	parts := sentenceBreakPattern.Split(text, -1)
	for i := len(parts) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(strings.TrimRight(parts[i], ".;:!?")); s != "" {
			return s
		}
	}
	return text
}

// truncateDefinition trims the phrase and caps it at maxDefinitionLen
// characters including a trailing ellipsis. Whitespace left at the cut point
// is dropped before the ellipsis, so a truncated phrase may come in under
// the cap but never shows "word …".
func truncateDefinition(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxDefinitionLen {
		return s
	}
	return strings.TrimRight(string(runes[:maxDefinitionLen-1]), " ") + "…"
}
