package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/radiogaga"
)

// Version is set at build time.
var Version = "dev"

// Dependencies holds the services the CLI runs with.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher    radiogaga.Fetcher
	LineReader radiogaga.LineReader
	Player     radiogaga.Player
	Pager      radiogaga.Pager
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	StationsFile string        `short:"f" name:"stations-file" env:"RADIOGAGA_STATIONS_FILE" default:"radio_stations.json" help:"Station catalog (.json, or .db/.sqlite/.sqlite3 for SQLite)"`
	Refresh      bool          `short:"r" aliases:"refresh-stations" help:"Rebuild the catalog from the station list before starting"`
	Player       string        `short:"p" default:"mpv" help:"Media player executable"`
	PlayerArg    []string      `name:"player-arg" help:"Flag passed to the player, replacing its defaults (repeatable)"`
	Source       []string      `default:"${default_source}" sep:"none" help:"Station list page to scrape (repeatable)"`
	Exclude      []string      `default:"${default_exclude}" sep:"none" help:"Skip stream URLs matching this regex (repeatable)"`
	History      string        `default:"history.txt" help:"Command history file"`
	Timeout      time.Duration `default:"10s" help:"Timeout for fetching a station list page"`
	Verbose      bool          `short:"v" help:"Log debug output to stderr"`
	Version      bool          `help:"Print version and exit"`
}
