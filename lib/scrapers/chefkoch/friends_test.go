package chefkoch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFriends(t *testing.T) {
	friends := extractFriends(docFromString(t, friendsPage))
	require.Equal(t, []Friend{
		{Username: "Bob", Link: "/user/profil/99/bob.html", ID: "99"},
		{Username: "Eve"},
	}, friends)
}

func TestExtractFriendsAbsoluteLinks(t *testing.T) {
	page := `<ul>
	<li class="user-buddies__buddy"><a href="https://www.chefkoch.de/user/profil/123456/anna.html">Anna</a></li>
	</ul>`

	friends := extractFriends(docFromString(t, page))
	require.Len(t, friends, 1)
	require.Equal(t, "123456", friends[0].ID)
}

func TestExtractFriendsUnparseableLink(t *testing.T) {
	// a link that exists but does not follow the profile path pattern
	// keeps the href and leaves the id empty
	page := `<ul>
	<li class="user-buddies__buddy"><a href="/user/geloescht">Alt</a></li>
	</ul>`

	friends := extractFriends(docFromString(t, page))
	require.Equal(t, []Friend{
		{Username: "Alt", Link: "/user/geloescht"},
	}, friends)
}

func TestExtractFriendsEmpty(t *testing.T) {
	friends := extractFriends(docFromString(t, `<html><body></body></html>`))
	require.Empty(t, friends)
}
