// Package readline implements radiogaga.LineReader on top of
// github.com/chzyer/readline: line editing, persistent history with
// incremental search, and fuzzy Tab completion.
package readline

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/fwojciec/radiogaga"
)

// DefaultPrompt is shown before each input line.
const DefaultPrompt = "radioGaGa > "

// Config configures a LineReader. Zero values fall back to the terminal.
type Config struct {
	Prompt      string
	HistoryFile string // empty disables persistent history
	Complete    radiogaga.CompleteFunc

	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

var _ radiogaga.LineReader = (*LineReader)(nil)

// LineReader reads edited input lines from the terminal.
type LineReader struct {
	rl *readline.Instance
}

// Open starts a line editor. The caller must Close it to restore the terminal.
func Open(cfg Config) (*LineReader, error) {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}

	rc := &readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		Stdin:             cfg.Stdin,
		Stdout:            cfg.Stdout,
		Stderr:            cfg.Stderr,
	}
	var cycler *Cycler
	if cfg.Complete != nil {
		// Suggestions may replace the typed text, which the library's
		// AutoCompleter cannot do. Tab is handled in the change listener
		// and the completer only keeps the terminal from beeping.
		cycler = NewCycler(cfg.Complete)
		rc.AutoComplete = silentCompleter{}
		rc.Listener = readline.FuncListener(cycler.OnChange)
	}

	rl, err := readline.NewEx(rc)
	if err != nil {
		return nil, err
	}
	r := &LineReader{rl: rl}
	if cycler != nil {
		// Menus go through the editor so the prompt is redrawn below them.
		cycler.SetOutput(r.Stderr())
	}
	return r, nil
}

// ReadLine returns the next line. Ctrl-C yields radiogaga.ErrInterrupt and
// Ctrl-D on an empty line yields io.EOF.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", radiogaga.ErrInterrupt
	}
	return line, err
}

// Stderr returns a writer that does not corrupt the prompt line.
func (r *LineReader) Stderr() io.Writer {
	return r.rl.Stderr()
}

// Close restores the terminal and flushes history.
func (r *LineReader) Close() error {
	return r.rl.Close()
}

type silentCompleter struct{}

func (silentCompleter) Do([]rune, int) ([][]rune, int) {
	return nil, 0
}
