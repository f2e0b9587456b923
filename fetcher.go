package radiogaga

import "context"

// DefaultSourceURL is the station list scraped on refresh.
const DefaultSourceURL = "https://doc.ubuntu-fr.org/liste_radio_france"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the document at url decoded as UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
