package mock

import (
	"context"
	"io"

	"github.com/fwojciec/radiogaga"
)

var _ radiogaga.LineReader = (*LineReader)(nil)

// LineReader is a mock implementation of radiogaga.LineReader.
type LineReader struct {
	ReadLineFn func() (string, error)
	CloseFn    func() error
}

func (r *LineReader) ReadLine() (string, error) {
	return r.ReadLineFn()
}

func (r *LineReader) Close() error {
	return r.CloseFn()
}

// Step is one scripted result of a ScriptedLineReader.
type Step struct {
	Line string
	Err  error
}

// ScriptedLineReader returns a LineReader that replays steps in order and
// then reports io.EOF.
func ScriptedLineReader(steps ...Step) *LineReader {
	i := 0
	return &LineReader{
		ReadLineFn: func() (string, error) {
			if i >= len(steps) {
				return "", io.EOF
			}
			s := steps[i]
			i++
			return s.Line, s.Err
		},
		CloseFn: func() error { return nil },
	}
}

var _ radiogaga.Player = (*Player)(nil)

// Player is a mock implementation of radiogaga.Player.
type Player struct {
	PlayFn func(ctx context.Context, url string) error
}

func (p *Player) Play(ctx context.Context, url string) error {
	return p.PlayFn(ctx, url)
}

var _ radiogaga.Pager = (*Pager)(nil)

// Pager is a mock implementation of radiogaga.Pager.
type Pager struct {
	PageFn func(ctx context.Context, text string) error
}

func (p *Pager) Page(ctx context.Context, text string) error {
	return p.PageFn(ctx, text)
}
