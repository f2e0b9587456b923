package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/radiogaga"
)

// Ensure LoggingAnchorParser implements radiogaga.AnchorParser.
var _ radiogaga.AnchorParser = (*LoggingAnchorParser)(nil)

// LoggingAnchorParser wraps an AnchorParser with debug logging.
type LoggingAnchorParser struct {
	next   radiogaga.AnchorParser
	logger *slog.Logger
}

// NewLoggingAnchorParser creates a new LoggingAnchorParser.
func NewLoggingAnchorParser(next radiogaga.AnchorParser, logger *slog.Logger) *LoggingAnchorParser {
	return &LoggingAnchorParser{next: next, logger: logger}
}

// ParseAnchors delegates to the wrapped parser and logs the anchor count.
func (p *LoggingAnchorParser) ParseAnchors(html string) (anchors []radiogaga.Anchor, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("parse anchors",
			"bytes", len(html),
			"count", len(anchors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseAnchors(html)
}
