package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/radiogaga"
	"github.com/fwojciec/radiogaga/bubbletea"
	"github.com/fwojciec/radiogaga/exec"
	"github.com/fwojciec/radiogaga/fs"
	"github.com/fwojciec/radiogaga/goquery"
	radiogagahttp "github.com/fwojciec/radiogaga/http"
	"github.com/fwojciec/radiogaga/readline"
	"github.com/fwojciec/radiogaga/refresh"
	"github.com/fwojciec/radiogaga/repl"
	radiogagaslog "github.com/fwojciec/radiogaga/slog"
	"github.com/fwojciec/radiogaga/sqlite"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when the catalog is stored in SQLite.
	DB *sqlite.DB

	// Services for end-to-end testing. Nil fields get real implementations.
	Fetcher    radiogaga.Fetcher
	LineReader radiogaga.LineReader
	Player     radiogaga.Player
	Pager      radiogaga.Pager
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("radiogaga"),
		kong.Description("Play French radio stations from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"default_source":  radiogaga.DefaultSourceURL,
			"default_exclude": radiogaga.DefaultExcludePattern,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Version {
		fmt.Fprintf(stdout, "radiogaga %s\n", Version)
		return nil
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:        ctx,
		Stdin:      stdin,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		Fetcher:    m.Fetcher,
		LineReader: m.LineReader,
		Player:     m.Player,
		Pager:      m.Pager,
	}
	defer m.Close()

	return m.run(cli, deps)
}

func (m *Main) run(cli *CLI, deps *Dependencies) error {
	ctx := deps.Ctx

	exclude, err := compilePatterns(cli.Exclude)
	if err != nil {
		return err
	}

	store, location, err := m.openStore(cli.StationsFile)
	if err != nil {
		return err
	}
	logged := radiogagaslog.NewLoggingCatalogStore(store, deps.Logger)

	catalog, err := logged.Load(ctx)
	if cli.Refresh || radiogaga.ErrorCode(err) == radiogaga.ENOTFOUND {
		catalog, err = m.refresh(cli, deps, exclude, logged, location)
	}
	if err != nil {
		return err
	}

	commands := repl.DefaultCommands()
	stderr := deps.Stderr

	if deps.LineReader == nil {
		rl, err := readline.Open(readline.Config{
			HistoryFile: cli.History,
			Complete:    repl.Completer(commands, catalog),
			Stdin:       editorInput(deps.Stdin),
			Stdout:      deps.Stdout,
			Stderr:      deps.Stderr,
		})
		if err != nil {
			return fmt.Errorf("failed to start line editor: %w", err)
		}
		deps.LineReader = rl
		stderr = rl.Stderr()
	}
	defer deps.LineReader.Close()

	if deps.Player == nil {
		var opts []exec.Option
		if len(cli.PlayerArg) > 0 {
			opts = append(opts, exec.WithArgs(cli.PlayerArg...))
		}
		deps.Player = exec.NewPlayer(cli.Player, opts...)
	}

	if deps.Pager == nil {
		deps.Pager = bubbletea.NewPager(deps.Stdin, deps.Stdout,
			bubbletea.WithInteractive(isTerminal(deps.Stdout)),
		)
	}

	controller := repl.NewController(repl.Config{
		Catalog:  catalog,
		Commands: commands,
		Reader:   deps.LineReader,
		Player:   radiogagaslog.NewLoggingPlayer(deps.Player, deps.Logger),
		Pager:    deps.Pager,
		Stdout:   deps.Stdout,
		Stderr:   stderr,
		Logger:   deps.Logger,
	})
	return controller.Run(ctx)
}

// openStore picks the catalog backend from the file extension and returns
// it with a printable location.
func (m *Main) openStore(path string) (radiogaga.CatalogStore, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			return nil, "", fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		return sqlite.NewCatalogStore(m.DB), abs, nil
	default:
		store := fs.NewCatalogStore(path)
		return store, store.Path(), nil
	}
}

func (m *Main) refresh(cli *CLI, deps *Dependencies, exclude []*regexp.Regexp, store radiogaga.CatalogStore, location string) (*radiogaga.Catalog, error) {
	fetcher := deps.Fetcher
	if fetcher == nil {
		fetcher = radiogagahttp.NewFetcher(radiogagahttp.WithTimeout(cli.Timeout))
	}
	fetcher = radiogagaslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer fetcher.Close()

	builder := &refresh.Builder{
		Fetcher: fetcher,
		Parser:  radiogagaslog.NewLoggingAnchorParser(goquery.NewAnchorParser(), deps.Logger),
		Limiter: refresh.NewDomainLimiter(1.0),
		Exclude: exclude,
		Logger:  deps.Logger,
	}

	fmt.Fprintf(deps.Stdout, "Fetching stations from %s\n", strings.Join(cli.Source, ", "))
	catalog, err := builder.Refresh(deps.Ctx, cli.Source, store)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh stations: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Saved %d stations to %s\n", catalog.Len(), location)
	return catalog, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, radiogaga.Errorf(radiogaga.EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// editorInput returns nil for the process's own stdin so the line editor
// uses its cancelable terminal reader and never closes os.Stdin.
func editorInput(r io.Reader) io.ReadCloser {
	if f, ok := r.(*os.File); ok && f == os.Stdin {
		return nil
	}
	return io.NopCloser(r)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
