// Package exec implements radiogaga.Player by running an external media
// player process.
package exec

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/fwojciec/radiogaga"
)

// DefaultPlayer is the media player used when none is configured.
const DefaultPlayer = "mpv"

var defaultArgs = map[string][]string{
	"mpv": {"--no-video"},
	"vlc": nil,
}

// DefaultArgs returns the flags passed to a known player before the stream
// URL. Unknown players get none.
func DefaultArgs(player string) []string {
	return append([]string(nil), defaultArgs[player]...)
}

var _ radiogaga.Player = (*Player)(nil)

// Player runs one player process per stream and waits for it to exit.
type Player struct {
	name   string
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Player.
type Option func(*Player)

// WithArgs replaces the player's default flags.
func WithArgs(args ...string) Option {
	return func(p *Player) {
		p.args = args
	}
}

// WithStdio sets the player's standard streams. Defaults to the process's own.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(p *Player) {
		p.stdin = stdin
		p.stdout = stdout
		p.stderr = stderr
	}
}

// NewPlayer creates a Player for the named executable with its default flags.
func NewPlayer(name string, opts ...Option) *Player {
	p := &Player{
		name:   name,
		args:   DefaultArgs(name),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the player executable.
func (p *Player) Name() string {
	return p.name
}

// Args returns the command line for url, excluding the executable.
func (p *Player) Args(url string) []string {
	args := make([]string, 0, len(p.args)+1)
	args = append(args, p.args...)
	return append(args, url)
}

// Play runs the player on url and blocks until it exits. The process is not
// tied to ctx: playback lasts until the user quits the player. While it
// runs, interrupts are left to the player so that Ctrl-C stops the stream
// rather than this program.
func (p *Player) Play(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := exec.LookPath(p.name)
	if err != nil {
		return radiogaga.Errorf(radiogaga.ENOTFOUND, "media player %q not found in PATH", p.name)
	}

	cmd := exec.Command(path, p.Args(url)...)
	cmd.Stdin = p.stdin
	cmd.Stdout = p.stdout
	cmd.Stderr = p.stderr

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", p.name, err)
	}
	return nil
}
