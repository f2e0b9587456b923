// Package goquery implements radiogaga.AnchorParser using goquery CSS selectors.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/radiogaga"
)

// DefaultSelector matches every anchor that carries an href.
const DefaultSelector = "a[href]"

var _ radiogaga.AnchorParser = (*AnchorParser)(nil)

var httpHrefRe = regexp.MustCompile(`https?://`)

// AnchorParser collects the anchors of a station list page. Only anchors
// whose href points at an http(s) URL are kept: on the station list those
// are the station home pages (headers) and their stream links. In-page
// navigation and relative links are dropped.
type AnchorParser struct {
	selector string
}

// Option configures an AnchorParser.
type Option func(*AnchorParser)

// WithSelector restricts parsing to anchors matched by a CSS selector,
// e.g. "div.page a[href]" to skip site navigation.
func WithSelector(selector string) Option {
	return func(p *AnchorParser) {
		p.selector = selector
	}
}

// NewAnchorParser creates a new AnchorParser.
func NewAnchorParser(opts ...Option) *AnchorParser {
	p := &AnchorParser{selector: DefaultSelector}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseAnchors returns matching anchors in document order with their text
// trimmed of surrounding whitespace.
func (p *AnchorParser) ParseAnchors(html string) ([]radiogaga.Anchor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, radiogaga.Errorf(radiogaga.EINVALID, "failed to parse HTML: %v", err)
	}

	var anchors []radiogaga.Anchor
	doc.Find(p.selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || !httpHrefRe.MatchString(href) {
			return
		}

		anchors = append(anchors, radiogaga.Anchor{
			Text: strings.TrimSpace(sel.Text()),
			Href: strings.TrimSpace(href),
		})
	})

	return anchors, nil
}
