// Package display renders lookup results for a terminal. The terminal sink
// colors and wraps output; the plain sink writes bare lines for pipes and
// tests.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// placeholder stands in for a missing term or definition so the two-line
// layout stays stable.
const placeholder = "—"

// defaultWidth is the wrap width used when the output is not a terminal or
// its size cannot be determined.
const defaultWidth = 80

// Terminal writes colored, wrapped lookup output.
type Terminal struct {
	out       io.Writer
	width     int
	termColor *color.Color
	defColor  *color.Color
	msgColor  *color.Color
}

// NewTerminal creates a sink writing to out. When out is a terminal its
// width is used for wrapping; noColor disables ANSI colors globally.
func NewTerminal(out io.Writer, noColor bool) *Terminal {
	if noColor {
		color.NoColor = true
	}

	width := defaultWidth
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 20 {
			width = w
		}
	}

	return &Terminal{
		out:       out,
		width:     width,
		termColor: color.New(color.FgCyan, color.Bold),
		defColor:  color.New(color.FgWhite),
		msgColor:  color.New(color.FgYellow),
	}
}

// ShowResult prints the term and its definition on separate lines. Empty
// fields are shown as a placeholder.
func (t *Terminal) ShowResult(termText, definition string) {
	if strings.TrimSpace(termText) == "" {
		termText = placeholder
	}
	if strings.TrimSpace(definition) == "" {
		definition = placeholder
	}
	t.termColor.Fprintln(t.out, termText)
	t.defColor.Fprintln(t.out, wrap(definition, t.width))
}

// ShowStatus prints an advisory line.
func (t *Terminal) ShowStatus(message string) {
	t.msgColor.Fprintln(t.out, message)
}

// Plain writes unstyled lines, one per call.
type Plain struct {
	Out io.Writer
}

func (p *Plain) ShowResult(termText, definition string) {
	if strings.TrimSpace(termText) == "" {
		termText = placeholder
	}
	if strings.TrimSpace(definition) == "" {
		definition = placeholder
	}
	fmt.Fprintf(p.Out, "%s: %s\n", termText, definition)
}

func (p *Plain) ShowStatus(message string) {
	fmt.Fprintln(p.Out, message)
}

// wrap greedily wraps text at word boundaries to the given width. Words
// longer than the width stand on their own line.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
