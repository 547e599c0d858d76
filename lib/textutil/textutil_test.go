package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstInt(t *testing.T) {
	require.Equal(t, "23", FirstInt("Freunde (23)"))
	require.Equal(t, "4", FirstInt("rating--4"))
	require.Equal(t, "102", FirstInt("102 Rezepte von hobbykoch"))
	require.Equal(t, "", FirstInt("Über mich"))
	require.Equal(t, "", FirstInt(""))
}

func TestProfileId(t *testing.T) {
	require.Equal(t, "99", ProfileId("/user/profil/99/bob.html"))
	require.Equal(t, "123456", ProfileId("https://www.chefkoch.de/user/profil/123456/hobbykoch.html"))
	require.Equal(t, "", ProfileId("/user/freunde/99/"))
	require.Equal(t, "", ProfileId(""))
}

func TestPathSegment(t *testing.T) {
	require.Equal(t, "42", PathSegment("/user/profil/42/eve.html", 3))
	require.Equal(t, "user", PathSegment("/user/profil/42/eve.html", 1))
	require.Equal(t, "", PathSegment("/user/profil/42/eve.html", 0))
	require.Equal(t, "", PathSegment("/short", 3))
}

func TestNormalizeSpace(t *testing.T) {
	require.Equal(t, "a b c", NormalizeSpace("  a\n\tb   c "))
	require.Equal(t, "", NormalizeSpace(" \n "))
}
