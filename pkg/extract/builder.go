package extract

import (
	"regexp"
	"strings"
)

var (
	// directPattern matches a paragraph that states a term's meaning inline:
	//
	//	"Term" means|shall mean|includes|shall include|has the following meaning <definition>
	//
	// optionally closed by a single trailing ".", ";" or ":". Anchored to the
	// whole paragraph; the keyword phrase is case-insensitive.
	directPattern = regexp.MustCompile(`(?i)^"([^"]+)"\s+(means|shall mean|includes|shall include|has the following meaning)\s+(.+?)\s*[.;:]?$`)

	// crossRefPattern matches a paragraph that defers to another clause:
	//
	//	"Term" has the meaning given in|set out in|set forth in clause 9.2
	//
	// Trailing text and punctuation after the dotted clause number are ignored.
	crossRefPattern = regexp.MustCompile(`(?i)^"([^"]+)"\s+has the meaning\s+(given in|set out in|set forth in)\s+clause\s+(\d+(?:\.\d+)*).*$`)
)

// Build scans the paragraphs once and produces a Glossary snapshot. Each
// paragraph is tried against the direct pattern first, then the
// cross-reference pattern; paragraphs matching neither are ignored. A later
// paragraph redefining a key overwrites the earlier entry and removes the
// key from the other table, so a key lives in at most one table.
func Build(paragraphs []string) *Glossary {
	g := &Glossary{
		Direct:   make(map[string]string),
		CrossRef: make(map[string]CrossRef),
		Corpus:   paragraphs,
	}

	for _, raw := range paragraphs {
		para := CleanText(raw)
		if para == "" {
			continue
		}

		if m := directPattern.FindStringSubmatch(para); m != nil {
			key := NormalizeTerm(m[1])
			if key == "" {
				continue
			}
			g.Direct[key] = strings.TrimSpace(m[3])
			delete(g.CrossRef, key)
			continue
		}

		if m := crossRefPattern.FindStringSubmatch(para); m != nil {
			key := NormalizeTerm(m[1])
			if key == "" {
				continue
			}
			g.CrossRef[key] = CrossRef{ClauseRef: m[3], Paragraph: para}
			delete(g.Direct, key)
		}
	}

	return g
}
