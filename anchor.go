package radiogaga

import (
	"regexp"
	"strconv"
	"strings"
)

// Anchor is a hyperlink taken from a station list document.
type Anchor struct {
	Text string
	Href string // empty when the anchor has no href
}

// AnchorParser extracts anchors from an HTML document.
type AnchorParser interface {
	// ParseAnchors returns the document's stream-list anchors in document order.
	ParseAnchors(html string) ([]Anchor, error)
}

// DefaultExcludePattern matches hrefs of streams that are not radio stations
// proper, such as looping "lofi" channels.
const DefaultExcludePattern = `[^A-Za-z0-9]lofi[^A-Za-z0-9]`

// DefaultExcludePatterns returns DefaultExcludePattern compiled.
func DefaultExcludePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{regexp.MustCompile(DefaultExcludePattern)}
}

var absoluteURLRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// IsAbsoluteURL reports whether s looks like an absolute URL (scheme://...).
func IsAbsoluteURL(s string) bool {
	return absoluteURLRe.MatchString(s)
}

// Extraction is the result of ExtractCatalog.
type Extraction struct {
	Catalog *Catalog

	// Orphans are stream links that could not be attributed: they appeared
	// before any station header, or had no href.
	Orphans []Anchor

	// Excluded are stream links whose href matched an exclude pattern.
	Excluded []Anchor
}

// ExtractCatalog groups anchors into a station catalog.
//
// An anchor whose text is not a URL is a station header and names the links
// that follow it. An anchor whose text is a URL is a stream link for the
// current header. The first link of a station is stored under the bare name;
// later ones get an occurrence suffix ("France Inter 2", "France Inter 3").
// Counters are kept per name, so a header that appears twice in the document
// continues numbering where it left off. Excluded links never take a number.
func ExtractCatalog(anchors []Anchor, exclude []*regexp.Regexp) *Extraction {
	ext := &Extraction{Catalog: NewCatalog()}
	counts := make(map[string]int)

	var station string
	var haveStation bool

	for _, a := range anchors {
		text := strings.TrimSpace(a.Text)
		if text == "" {
			continue
		}

		if !IsAbsoluteURL(text) {
			station = text
			haveStation = true
			continue
		}

		if !haveStation || a.Href == "" {
			ext.Orphans = append(ext.Orphans, a)
			continue
		}

		if matchesAny(exclude, a.Href) {
			ext.Excluded = append(ext.Excluded, a)
			continue
		}

		for {
			counts[station]++
			name := station
			if n := counts[station]; n > 1 {
				name = station + " " + strconv.Itoa(n)
			}
			if ext.Catalog.Add(name, a.Href) {
				break
			}
		}
	}

	return ext
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
