// Package repl runs the interactive command loop.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/radiogaga"
)

// Config holds everything the loop needs. It is built once at startup.
type Config struct {
	Catalog  *radiogaga.Catalog
	Commands *CommandSet
	Reader   radiogaga.LineReader
	Player   radiogaga.Player
	Pager    radiogaga.Pager
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
}

// Completer returns the completion function for a command table and catalog.
func Completer(commands *CommandSet, catalog *radiogaga.Catalog) radiogaga.CompleteFunc {
	names := commands.Names()
	return func(line string, cursor int) []radiogaga.Suggestion {
		return radiogaga.Complete(line, cursor, names, catalog)
	}
}

// Controller reads commands and dispatches them until end of input.
type Controller struct {
	cfg Config
	env *Env
}

// NewController creates a Controller. Missing commands default to
// DefaultCommands and a missing logger discards output.
func NewController(cfg Config) *Controller {
	if cfg.Commands == nil {
		cfg.Commands = DefaultCommands()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = radiogaga.NewCatalog()
	}
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	if cfg.Stderr == nil {
		cfg.Stderr = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		cfg: cfg,
		env: &Env{
			Catalog: cfg.Catalog,
			Player:  cfg.Player,
			Pager:   cfg.Pager,
			Stdout:  cfg.Stdout,
		},
	}
}

// Run loops until the reader reports io.EOF, which is a normal stop. An
// interrupt discards the current line. Handler failures are printed and do
// not end the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.cfg.Reader.ReadLine()
		switch {
		case errors.Is(err, radiogaga.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := c.Dispatch(ctx, line); err != nil {
			fmt.Fprintf(c.cfg.Stderr, "error: %s\n", errorText(err))
		}
	}
}

// Dispatch runs the command on line. Unknown commands and blank lines are
// ignored.
func (c *Controller) Dispatch(ctx context.Context, line string) error {
	in := radiogaga.ParseInput(line)
	if in.Command == "" {
		return nil
	}
	h, ok := c.cfg.Commands.Lookup(in.Command)
	if !ok {
		c.cfg.Logger.Debug("unknown command", "command", in.Command)
		return nil
	}
	return h(ctx, c.env, in.Argument)
}

// errorText prefers the application message and falls back to the raw
// error for infrastructure failures.
func errorText(err error) string {
	var e *radiogaga.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
