// Package session owns the live glossary of one document: a single writer
// rebuilds the glossary and swaps it in atomically, while lookups read
// whichever snapshot is current. Readers never block the rebuild and never
// observe a half-built glossary.
package session

import (
	"fmt"
	"sync/atomic"

	"github.com/coolbeans/glossa/pkg/corpus"
	"github.com/coolbeans/glossa/pkg/extract"
)

// StatusNotReady is reported for lookups that arrive before the first
// successful rebuild.
const StatusNotReady extract.ResolutionStatus = "not_ready"

// Sink receives lookup output. ShowResult carries a resolved term and its
// definition; ShowStatus carries an advisory line when there is no
// definition to show.
type Sink interface {
	ShowResult(term, definition string)
	ShowStatus(message string)
}

// Session binds a document provider to an output sink and keeps the
// current glossary snapshot.
type Session struct {
	provider corpus.Provider
	sink     Sink
	snapshot atomic.Pointer[extract.Glossary]
}

// New creates a session with no glossary yet; call Rebuild before the
// first lookup.
func New(provider corpus.Provider, sink Sink) *Session {
	return &Session{provider: provider, sink: sink}
}

// Glossary returns the current snapshot, or nil before the first
// successful rebuild.
func (s *Session) Glossary() *extract.Glossary {
	return s.snapshot.Load()
}

// Rebuild re-reads the document and swaps in a fresh glossary. On provider
// failure the previous snapshot stays current and lookups keep answering
// from it.
func (s *Session) Rebuild() error {
	paragraphs, err := s.provider.ParagraphTexts()
	if err != nil {
		s.sink.ShowStatus(fmt.Sprintf("rebuild failed, keeping previous glossary: %v", err))
		return err
	}
	s.snapshot.Store(extract.Build(paragraphs))
	return nil
}

// Lookup resolves the selected text against the current snapshot and
// renders the outcome on the sink.
func (s *Session) Lookup(selected string) extract.Resolution {
	g := s.snapshot.Load()
	if g == nil {
		res := extract.Resolution{Term: selected, Status: StatusNotReady}
		s.sink.ShowStatus("glossary not ready")
		return res
	}

	res := extract.Resolve(g, selected)
	switch res.Status {
	case extract.StatusDirect, extract.StatusEmbedded:
		s.sink.ShowResult(res.Term, res.Definition)
	case extract.StatusClauseOnly:
		s.sink.ShowResult(res.Term, "")
		s.sink.ShowStatus(res.Message())
	default:
		s.sink.ShowStatus(res.Message())
	}
	return res
}
