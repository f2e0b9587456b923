package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/radiogaga"
)

// Ensure LoggingCatalogStore implements radiogaga.CatalogStore.
var _ radiogaga.CatalogStore = (*LoggingCatalogStore)(nil)

// LoggingCatalogStore wraps a CatalogStore with logging.
type LoggingCatalogStore struct {
	next   radiogaga.CatalogStore
	logger *slog.Logger
}

// NewLoggingCatalogStore creates a new LoggingCatalogStore.
func NewLoggingCatalogStore(next radiogaga.CatalogStore, logger *slog.Logger) *LoggingCatalogStore {
	return &LoggingCatalogStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the station count.
func (s *LoggingCatalogStore) Load(ctx context.Context) (c *radiogaga.Catalog, err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalog load",
			"count", c.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the station count.
func (s *LoggingCatalogStore) Save(ctx context.Context, c *radiogaga.Catalog) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalog save",
			"count", c.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, c)
}
