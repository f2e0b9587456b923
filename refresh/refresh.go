// Package refresh rebuilds the station catalog from station list pages.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"

	"github.com/fwojciec/radiogaga"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of source pages fetched at once.
const DefaultConcurrency = 4

// Builder fetches station list pages and extracts a catalog from them.
type Builder struct {
	Fetcher radiogaga.Fetcher
	Parser  radiogaga.AnchorParser

	// Limiter, if set, paces requests to the same host.
	Limiter radiogaga.DomainLimiter

	// Exclude discards stream links whose href matches any pattern.
	Exclude []*regexp.Regexp

	// Concurrency bounds simultaneous fetches. Zero means DefaultConcurrency.
	Concurrency int

	// Logger receives extraction warnings. Nil disables logging.
	Logger *slog.Logger
}

// Build fetches every source and extracts one catalog from their anchors,
// taken in source order. Any fetch or parse failure fails the whole build.
// A build that finds no stations is an error too, so that a changed page
// layout never replaces a good catalog with an empty one.
func (b *Builder) Build(ctx context.Context, sources []string) (*radiogaga.Extraction, error) {
	if len(sources) == 0 {
		return nil, radiogaga.Errorf(radiogaga.EINVALID, "no station list source given")
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([][]radiogaga.Anchor, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, source := range sources {
		g.Go(func() error {
			anchors, err := b.anchors(gctx, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			results[i] = anchors
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []radiogaga.Anchor
	for _, anchors := range results {
		all = append(all, anchors...)
	}

	ext := radiogaga.ExtractCatalog(all, b.Exclude)
	if b.Logger != nil {
		for _, a := range ext.Orphans {
			b.Logger.Warn("skipped stream link without station", "text", a.Text, "href", a.Href)
		}
		b.Logger.Debug("catalog extracted",
			"anchors", len(all),
			"stations", ext.Catalog.Len(),
			"excluded", len(ext.Excluded),
			"orphans", len(ext.Orphans),
		)
	}

	if ext.Catalog.Len() == 0 {
		return nil, radiogaga.Errorf(radiogaga.EINVALID, "no stations found in %d source(s)", len(sources))
	}
	return ext, nil
}

// Refresh builds a catalog and saves it to store. Nothing is saved if the
// build fails.
func (b *Builder) Refresh(ctx context.Context, sources []string, store radiogaga.CatalogStore) (*radiogaga.Catalog, error) {
	ext, err := b.Build(ctx, sources)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, ext.Catalog); err != nil {
		return nil, fmt.Errorf("failed to save catalog: %w", err)
	}
	return ext.Catalog, nil
}

func (b *Builder) anchors(ctx context.Context, source string) ([]radiogaga.Anchor, error) {
	if b.Limiter != nil {
		u, err := url.Parse(source)
		if err != nil {
			return nil, radiogaga.Errorf(radiogaga.EINVALID, "invalid source URL: %v", err)
		}
		if err := b.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := b.Fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return b.Parser.ParseAnchors(html)
}
