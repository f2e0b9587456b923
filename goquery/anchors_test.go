package goquery_test

import (
	"testing"

	"github.com/fwojciec/radiogaga"
	"github.com/fwojciec/radiogaga/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorParser_ParseAnchors(t *testing.T) {
	t.Parallel()

	t.Run("returns http anchors in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<ul>
	<li><a href="https://www.franceinter.fr">France Inter</a>
		<ul>
			<li><a href="http://direct.franceinter.fr/live/franceinter-midfi.mp3">
				http://direct.franceinter.fr/live/franceinter-midfi.mp3
			</a></li>
		</ul>
	</li>
	<li><a href="https://www.fip.fr">FIP</a></li>
</ul>
</body>
</html>`

		anchors, err := goquery.NewAnchorParser().ParseAnchors(html)

		require.NoError(t, err)
		assert.Equal(t, []radiogaga.Anchor{
			{Text: "France Inter", Href: "https://www.franceinter.fr"},
			{Text: "http://direct.franceinter.fr/live/franceinter-midfi.mp3", Href: "http://direct.franceinter.fr/live/franceinter-midfi.mp3"},
			{Text: "FIP", Href: "https://www.fip.fr"},
		}, anchors)
	})

	t.Run("skips relative, fragment and mailto links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="#sommaire">Sommaire</a>
<a href="/wiki/radio">Radio</a>
<a href="mailto:someone@example.com">Contact</a>
<a>No href</a>
<a href="https://www.rtl.fr">RTL</a>
</body></html>`

		anchors, err := goquery.NewAnchorParser().ParseAnchors(html)

		require.NoError(t, err)
		assert.Equal(t, []radiogaga.Anchor{{Text: "RTL", Href: "https://www.rtl.fr"}}, anchors)
	})

	t.Run("honours custom selector", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="https://doc.example.org/">Accueil</a></nav>
<div class="page"><a href="https://www.nova.fr">Radio Nova</a></div>
</body></html>`

		parser := goquery.NewAnchorParser(goquery.WithSelector("div.page a[href]"))
		anchors, err := parser.ParseAnchors(html)

		require.NoError(t, err)
		assert.Equal(t, []radiogaga.Anchor{{Text: "Radio Nova", Href: "https://www.nova.fr"}}, anchors)
	})

	t.Run("returns empty result for document without anchors", func(t *testing.T) {
		t.Parallel()

		anchors, err := goquery.NewAnchorParser().ParseAnchors("<html><body><p>nothing</p></body></html>")

		require.NoError(t, err)
		assert.Empty(t, anchors)
	})

	t.Run("keeps decoded text", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://www.cheriefm.fr">Ch&eacute;rie FM</a>`

		anchors, err := goquery.NewAnchorParser().ParseAnchors(html)

		require.NoError(t, err)
		require.Len(t, anchors, 1)
		assert.Equal(t, "Chérie FM", anchors[0].Text)
	})
}
