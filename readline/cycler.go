package readline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/fwojciec/radiogaga"
)

// Cycler applies completion suggestions to the edit buffer on Tab. The first
// Tab replaces the word under completion with the first suggestion; each
// further Tab, as long as the line was not edited in between, swaps in the
// next one, wrapping around.
//
// When a cycle starts with more than one candidate, or with a labelled one,
// the candidates are listed on the output, one per line with their label.
type Cycler struct {
	complete radiogaga.CompleteFunc
	out      io.Writer

	// state of the cycle in progress
	line        []rune // buffer before the first Tab
	pos         int
	suggestions []radiogaga.Suggestion
	index       int
	shown       []rune // buffer after the last Tab
	shownPos    int
}

// NewCycler returns a Cycler backed by complete.
func NewCycler(complete radiogaga.CompleteFunc) *Cycler {
	return &Cycler{complete: complete}
}

// SetOutput sets where candidate menus are written. Nil disables them.
func (c *Cycler) SetOutput(w io.Writer) {
	c.out = w
}

// OnChange has the signature of readline.Listener.OnChange.
func (c *Cycler) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	if key != readline.CharTab {
		return nil, 0, false
	}
	return c.Next(line, pos)
}

// Next returns the buffer and cursor after one Tab press on line at pos.
// ok is false when there is nothing to complete.
func (c *Cycler) Next(line []rune, pos int) ([]rune, int, bool) {
	if c.cycling(line, pos) {
		c.index = (c.index + 1) % len(c.suggestions)
	} else {
		c.reset()
		suggestions := c.complete(string(line), pos)
		if len(suggestions) == 0 {
			return nil, 0, false
		}
		c.line = slices.Clone(line)
		c.pos = pos
		c.suggestions = suggestions
		c.printMenu()
	}

	s := c.suggestions[c.index]
	text := []rune(s.Text)
	start := min(max(s.Start, 0), c.pos)

	out := make([]rune, 0, len(c.line)+len(text))
	out = append(out, c.line[:start]...)
	out = append(out, text...)
	out = append(out, c.line[c.pos:]...)

	c.shown = out
	c.shownPos = start + len(text)
	return slices.Clone(out), c.shownPos, true
}

// Current returns the suggestion last applied, if a cycle is in progress.
func (c *Cycler) Current() (radiogaga.Suggestion, bool) {
	if len(c.suggestions) == 0 {
		return radiogaga.Suggestion{}, false
	}
	return c.suggestions[c.index], true
}

// printMenu lists the candidates of a new cycle, marking the one applied.
func (c *Cycler) printMenu() {
	if c.out == nil {
		return
	}
	current, ok := c.Current()
	if !ok || (len(c.suggestions) == 1 && current.Label == "") {
		return
	}

	width := 0
	for _, s := range c.suggestions {
		width = max(width, utf8.RuneCountInString(s.Text))
	}

	var b strings.Builder
	for i, s := range c.suggestions {
		marker := "  "
		if i == c.index {
			marker = "> "
		}
		line := marker + s.Text
		if s.Label != "" {
			line += strings.Repeat(" ", width-utf8.RuneCountInString(s.Text)) + "  " + s.Label
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprint(c.out, b.String())
}

func (c *Cycler) cycling(line []rune, pos int) bool {
	return len(c.suggestions) > 0 && pos == c.shownPos && slices.Equal(line, c.shown)
}

func (c *Cycler) reset() {
	c.line = nil
	c.pos = 0
	c.suggestions = nil
	c.index = 0
	c.shown = nil
	c.shownPos = 0
}
