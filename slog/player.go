package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/radiogaga"
)

// Ensure LoggingPlayer implements radiogaga.Player.
var _ radiogaga.Player = (*LoggingPlayer)(nil)

// LoggingPlayer wraps a Player with logging.
type LoggingPlayer struct {
	next   radiogaga.Player
	logger *slog.Logger
}

// NewLoggingPlayer creates a new LoggingPlayer.
func NewLoggingPlayer(next radiogaga.Player, logger *slog.Logger) *LoggingPlayer {
	return &LoggingPlayer{next: next, logger: logger}
}

// Play logs when playback starts and, with its duration, when it ends.
func (p *LoggingPlayer) Play(ctx context.Context, url string) (err error) {
	p.logger.Debug("play start", "url", url)
	defer func(begin time.Time) {
		p.logger.Info("play",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Play(ctx, url)
}
