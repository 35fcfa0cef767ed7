package session

import "context"

// Run consumes selection events until the channel closes or the context is
// cancelled. Selections are handled one at a time in arrival order; a slow
// lookup delays later ones rather than running them concurrently.
func (s *Session) Run(ctx context.Context, selections <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case selected, ok := <-selections:
			if !ok {
				return
			}
			s.Lookup(selected)
		}
	}
}
