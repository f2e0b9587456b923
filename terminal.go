package radiogaga

import (
	"context"
	"errors"
)

// ErrInterrupt is returned by a LineReader when the user aborts the line
// being edited (Ctrl-C). It does not end the session.
var ErrInterrupt = errors.New("interrupt")

// LineReader reads lines of user input with editing and history.
type LineReader interface {
	// ReadLine blocks until the user submits a line.
	// Returns ErrInterrupt if the line was aborted and io.EOF at end of input.
	ReadLine() (string, error)

	// Close releases the terminal and flushes history.
	Close() error
}

// Player plays a stream with an external media player.
type Player interface {
	// Play starts the player on url and blocks until it exits.
	Play(ctx context.Context, url string) error
}

// Pager presents long text one screen at a time.
type Pager interface {
	// Page displays text and returns when the user leaves the viewer.
	Page(ctx context.Context, text string) error
}
