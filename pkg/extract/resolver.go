package extract

import "fmt"

// ResolutionStatus indicates the outcome of resolving a selected phrase.
type ResolutionStatus string

const (
	// StatusNoSelection means the selection normalized to an empty key;
	// no lookup was performed.
	StatusNoSelection ResolutionStatus = "no_selection"

	// StatusDirect means the term is defined inline in the document.
	StatusDirect ResolutionStatus = "direct"

	// StatusEmbedded means the term is cross-referenced to another clause and
	// its definition was recovered from a parenthetical elsewhere.
	StatusEmbedded ResolutionStatus = "embedded"

	// StatusClauseOnly means the term is cross-referenced but no embedded
	// definition could be located; only the clause reference is known.
	StatusClauseOnly ResolutionStatus = "clause_only"

	// StatusNotFound means neither table holds the term or its singular form.
	StatusNotFound ResolutionStatus = "not_found"
)

// Resolution is the outcome of one lookup. Term echoes the raw selected text
// for display; Key is the canonical form the tables were probed with.
type Resolution struct {
	Term       string           `json:"term"`
	Key        string           `json:"key,omitempty"`
	Definition string           `json:"definition,omitempty"`
	ClauseRef  string           `json:"clause_ref,omitempty"`
	Status     ResolutionStatus `json:"status"`
}

// Message returns the advisory status line for this resolution.
func (r Resolution) Message() string {
	switch r.Status {
	case StatusNoSelection:
		return "no term selected"
	case StatusDirect:
		return fmt.Sprintf("%q is defined in the document", r.Term)
	case StatusEmbedded:
		return fmt.Sprintf("%q recovered from clause %s drafting", r.Term, r.ClauseRef)
	case StatusClauseOnly:
		return fmt.Sprintf("no embedded definition located; %q has the meaning given in clause %s", r.Term, r.ClauseRef)
	case StatusNotFound:
		return "no definition found"
	}
	return string(r.Status)
}

// Resolve looks up the raw selected text against a glossary snapshot. The
// selected key is probed before its singular form, the direct table is
// exhausted before the cross-reference table, and the embedded-definition
// search runs only on a cross-reference hit. Resolve never fails for a
// well-formed glossary; every outcome is a Resolution.
func Resolve(g *Glossary, rawSelected string) Resolution {
	res := Resolution{Term: rawSelected}

	key := NormalizeTerm(rawSelected)
	if key == "" {
		res.Status = StatusNoSelection
		return res
	}
	res.Key = key

	// Pluralization is probe-side only: the tables hold whatever form the
	// document used.
	candidates := []string{key}
	if singular := Singularize(key); singular != key {
		candidates = append(candidates, singular)
	}

	for _, candidate := range candidates {
		if def, ok := g.Direct[candidate]; ok {
			res.Key = candidate
			res.Definition = def
			res.Status = StatusDirect
			return res
		}
	}

	for _, candidate := range candidates {
		xref, ok := g.CrossRef[candidate]
		if !ok {
			continue
		}
		res.Key = candidate
		res.ClauseRef = xref.ClauseRef
		if def, found := FindEmbedded(g.Corpus, candidate); found {
			res.Definition = def
			res.Status = StatusEmbedded
		} else {
			res.Status = StatusClauseOnly
		}
		return res
	}

	res.Status = StatusNotFound
	return res
}
