package extract

import "sort"

// CrossRef records a paragraph that defers a term's meaning to another
// clause rather than stating it inline.
type CrossRef struct {
	// ClauseRef is the dotted numeric clause path, e.g. "9.2".
	ClauseRef string `json:"clause_ref"`

	// Paragraph is the normalized paragraph the cross-reference came from.
	Paragraph string `json:"paragraph"`
}

// Glossary is an immutable snapshot of one full-document scan: the direct
// definition table, the cross-reference table, and the paragraph corpus the
// embedded-definition search runs against. Snapshots are built wholesale by
// Build and replaced atomically on rebuild, never partially mutated. A term
// key appears in at most one of the two tables.
type Glossary struct {
	Direct   map[string]string   `json:"direct"`
	CrossRef map[string]CrossRef `json:"cross_refs"`
	Corpus   []string            `json:"-"`
}

// Stats holds summary counts for a glossary snapshot.
type Stats struct {
	DirectEntries   int `json:"direct_entries"`
	CrossRefEntries int `json:"cross_ref_entries"`
	Paragraphs      int `json:"paragraphs"`
}

// Stats returns summary counts for the snapshot.
func (g *Glossary) Stats() Stats {
	return Stats{
		DirectEntries:   len(g.Direct),
		CrossRefEntries: len(g.CrossRef),
		Paragraphs:      len(g.Corpus),
	}
}

// DirectTerms returns the directly defined term keys in sorted order.
func (g *Glossary) DirectTerms() []string {
	keys := make([]string, 0, len(g.Direct))
	for key := range g.Direct {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// CrossRefTerms returns the cross-referenced term keys in sorted order.
func (g *Glossary) CrossRefTerms() []string {
	keys := make([]string, 0, len(g.CrossRef))
	for key := range g.CrossRef {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
