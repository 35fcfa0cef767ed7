package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainShowResult(t *testing.T) {
	var buf bytes.Buffer
	p := &Plain{Out: &buf}

	p.ShowResult("Business Day", "a day on which banks are open")
	assert.Equal(t, "Business Day: a day on which banks are open\n", buf.String())
}

func TestPlainPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	p := &Plain{Out: &buf}

	p.ShowResult("Blocked Term", "")
	assert.Equal(t, "Blocked Term: —\n", buf.String())

	buf.Reset()
	p.ShowResult("  ", "some definition")
	assert.Equal(t, "—: some definition\n", buf.String())
}

func TestPlainShowStatus(t *testing.T) {
	var buf bytes.Buffer
	p := &Plain{Out: &buf}

	p.ShowStatus("no definition found")
	assert.Equal(t, "no definition found\n", buf.String())
}

func TestTerminalNoColor(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminal(&buf, true)

	sink.ShowResult("Margin", "the percentage rate set out in the pricing grid")
	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Margin\n")
	assert.Contains(t, out, "pricing grid")
}

func TestWrap(t *testing.T) {
	wrapped := wrap("one two three four five", 9)
	assert.Equal(t, "one two\nthree\nfour five", wrapped)

	assert.Equal(t, "short", wrap("short", 80))
	assert.Equal(t, "", wrap("", 80))

	// Oversized words are not broken mid-word.
	wrapped = wrap("a extraordinarily b", 5)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.NotEmpty(t, line)
	}
}
