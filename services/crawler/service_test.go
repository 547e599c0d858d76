package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kochindex-backend/lib/scrapers/chefkoch"
	"kochindex-backend/lib/testutil"
	"kochindex-backend/services/crawler/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type recordingQueue struct {
	enqueued []string
}

func (q *recordingQueue) EnqueueUser(ctx context.Context, userID string) error {
	q.enqueued = append(q.enqueued, userID)
	return nil
}

func TestEnsureUserKnown(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/crawler",
		DbSchema: db.Schema,
	})
	defer cleanup()

	queue := &recordingQueue{}
	service := NewService(setup.DB, queue, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	service.EnsureUserKnown(ctx, "42")
	require.Equal(t, []string{"42"}, queue.enqueued)

	// the store does not change on enqueue alone, so a second check for
	// the same id enqueues again: at-least-once, not exactly-once
	service.EnsureUserKnown(ctx, "42")
	require.Equal(t, []string{"42", "42"}, queue.enqueued)

	err := db.New(setup.DB).UpsertUser(ctx, db.UpsertUserParams{
		ID:        "42",
		Username:  "hobbykoch",
		Profile:   "{}",
		CrawledAt: time.Now().Unix(),
	})
	require.NoError(t, err)

	// known ids are a no-op
	service.EnsureUserKnown(ctx, "42")
	require.Equal(t, []string{"42", "42"}, queue.enqueued)
}

func TestDBQueueDedup(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/crawler",
		DbSchema: db.Schema,
	})
	defer cleanup()

	queue := NewDBQueue(setup.DB)
	ctx := context.Background()

	require.NoError(t, queue.EnqueueUser(ctx, "42"))
	require.NoError(t, queue.EnqueueUser(ctx, "42"))
	require.NoError(t, queue.EnqueueUser(ctx, "7"))

	pending, err := queue.Pending(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"42", "7"}, pending)

	require.NoError(t, queue.MarkDone(ctx, "42"))
	pending, err = queue.Pending(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"7"}, pending)
}

const ratingsPage = `<table class="voting-table">
<tr><th>Wertung</th><th>Benutzer</th><th>Datum</th></tr>
<tr>
  <td><span class="rating"><span class="rating__stars rating--5"></span></span></td>
  <td><a href="/user/profil/99/bob.html">Bob</a></td>
  <td>01.02.2016</td>
</tr>
<tr>
  <td><span class="rating"><span class="rating__stars rating--2"></span></span></td>
  <td>Gelöschter Nutzer</td>
  <td>13.07.2014</td>
</tr>
</table>`

func TestIngestRatings(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/crawler",
		DbSchema: db.Schema,
	})
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rezepte/wertungen/4711/" {
			w.Write([]byte(ratingsPage))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	scraper, err := chefkoch.NewClient(chefkoch.ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	queue := &recordingQueue{}
	service := NewService(setup.DB, queue, scraper)

	rating, err := service.IngestRatings(context.Background(), "4711")
	require.NoError(t, err)
	require.Len(t, rating.Entries, 2)

	// the resolved voter goes through the dedup gate, the unresolved
	// one only produces a diagnostic
	require.Equal(t, []string{"99"}, queue.enqueued)
}

const profilePage = `<html><body>
<span class="username">hobbykoch</span>
<h2 class="slat__title">Freunde (2)</h2>
</body></html>`

const friendsPage = `<ul>
<li class="user-buddies__buddy"><a href="/user/profil/99/bob.html">Bob</a></li>
<li class="user-buddies__buddy">Eve</li>
</ul>`

func TestIngestProfile(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/crawler",
		DbSchema: db.Schema,
	})
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/profil/42":
			w.Write([]byte(profilePage))
		case "/user/freunde/42/":
			w.Write([]byte(friendsPage))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	scraper, err := chefkoch.NewClient(chefkoch.ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	queue := &recordingQueue{}
	service := NewService(setup.DB, queue, scraper)

	ctx := context.Background()
	profile, err := service.IngestProfile(ctx, "42")
	require.NoError(t, err)
	require.Equal(t, "hobbykoch", profile.Username)
	require.Len(t, profile.Friends, 2)

	stored, err := db.New(setup.DB).GetUser(ctx, "42")
	require.NoError(t, err)
	require.Equal(t, "hobbykoch", stored.Username)
	require.NotEmpty(t, stored.Profile)

	// the linked friend was gated, the friend without a profile link
	// was not
	require.Equal(t, []string{"99"}, queue.enqueued)
}
