package mock

import "github.com/fwojciec/radiogaga"

var _ radiogaga.AnchorParser = (*AnchorParser)(nil)

// AnchorParser is a mock implementation of radiogaga.AnchorParser.
type AnchorParser struct {
	ParseAnchorsFn func(html string) ([]radiogaga.Anchor, error)
}

func (p *AnchorParser) ParseAnchors(html string) ([]radiogaga.Anchor, error) {
	return p.ParseAnchorsFn(html)
}
