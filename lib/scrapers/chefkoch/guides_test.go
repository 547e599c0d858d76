package chefkoch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractGuides(t *testing.T) {
	page := `<div class="theme-community">
	<div class="without-footer"><a href="/user/profil/42/a.html">hobbykoch</a><a href="/magazin/brot.html">Brot backen</a></div>
	<div class="without-footer"><a href="/magazin/nur-ein-link.html">wird übersprungen</a></div>
	<div class="without-footer"><a href="/user/profil/42/a.html">hobbykoch</a><a href="/magazin/pasta.html">Pasta selber machen</a></div>
	</div>`

	guides := extractGuides(docFromString(t, page))
	require.Equal(t, []Guide{
		{URL: "/magazin/brot.html", Title: "Brot backen"},
		{URL: "/magazin/pasta.html", Title: "Pasta selber machen"},
	}, guides)
}

func TestExtractGuidesEmpty(t *testing.T) {
	guides := extractGuides(docFromString(t, `<html><body></body></html>`))
	require.Empty(t, guides)
}
