package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/radiogaga"
)

// Env is what a command handler operates on.
type Env struct {
	Catalog *radiogaga.Catalog
	Player  radiogaga.Player
	Pager   radiogaga.Pager
	Stdout  io.Writer
}

// Handler runs a command. station is the argument typed after the command,
// empty when absent.
type Handler func(ctx context.Context, env *Env, station string) error

// Command binds a name to its handler.
type Command struct {
	Name    string
	Handler Handler
}

// CommandSet is an ordered table of commands.
type CommandSet struct {
	names    []string
	handlers map[string]Handler
}

// NewCommandSet builds a CommandSet. A repeated name keeps its first position
// and takes the last handler.
func NewCommandSet(cmds ...Command) *CommandSet {
	s := &CommandSet{handlers: make(map[string]Handler, len(cmds))}
	for _, c := range cmds {
		if _, ok := s.handlers[c.Name]; !ok {
			s.names = append(s.names, c.Name)
		}
		s.handlers[c.Name] = c.Handler
	}
	return s
}

// DefaultCommands returns play, listen, show, info and search.
func DefaultCommands() *CommandSet {
	return NewCommandSet(
		Command{Name: "play", Handler: Play},
		Command{Name: "listen", Handler: Play},
		Command{Name: "show", Handler: Show},
		Command{Name: "info", Handler: Show},
		Command{Name: "search", Handler: Search},
	)
}

// Lookup returns the handler for name.
func (s *CommandSet) Lookup(name string) (Handler, bool) {
	h, ok := s.handlers[name]
	return h, ok
}

// Names returns the command names in table order.
func (s *CommandSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Play streams a station with the media player, blocking until it exits.
func Play(ctx context.Context, env *Env, station string) error {
	url, err := env.Catalog.Lookup(station)
	if radiogaga.ErrorCode(err) == radiogaga.ENOTFOUND {
		fmt.Fprintln(env.Stdout, radiogaga.ErrorMessage(err))
		return nil
	} else if err != nil {
		return err
	}
	return env.Player.Play(ctx, url)
}

// Show prints a station's stream URL.
func Show(ctx context.Context, env *Env, station string) error {
	url, err := env.Catalog.Lookup(station)
	if radiogaga.ErrorCode(err) == radiogaga.ENOTFOUND {
		fmt.Fprintln(env.Stdout, radiogaga.ErrorMessage(err))
		return nil
	} else if err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.Stdout, "%s: %s\n", station, url)
	return err
}

// Search pages the station names that fuzzy-match query, one per line. An
// empty query lists every station.
func Search(ctx context.Context, env *Env, query string) error {
	matches := radiogaga.FuzzyMatch(query, env.Catalog.Names())
	if len(matches) == 0 {
		_, err := fmt.Fprintln(env.Stdout, "No matching stations.")
		return err
	}
	return env.Pager.Page(ctx, strings.Join(matches, "\n"))
}
