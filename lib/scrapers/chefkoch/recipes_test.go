package chefkoch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"kochindex-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestGetRecipe(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/chefkoch")()

	payload := `{"id":"1234","title":"Gulasch","ingredients":[{"name":"Zwiebel"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/recipes/1234" {
			w.Write([]byte(payload))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{ApiBaseUrl: server.URL})
	require.NoError(t, err)

	recipe, err := client.GetRecipe(context.Background(), "1234")
	require.NoError(t, err)
	// the payload passes through unmodified
	require.JSONEq(t, payload, string(recipe))

	_, err = client.GetRecipe(context.Background(), "9999")
	var notFound RecipeNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "9999", notFound.RecipeID)
}

func TestSearchRecipes(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/chefkoch")()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"count":2,"results":[{"id":"1"},{"id":"2"}]}`))
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{ApiBaseUrl: server.URL})
	require.NoError(t, err)

	results, err := client.SearchRecipes(context.Background(), SearchRequest{
		Query:   "gulasch",
		OrderBy: OrderByRating,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.JSONEq(t, `{"id":"1"}`, string(results[0]))

	require.Equal(t, "gulasch", gotQuery.Get("query"))
	require.Equal(t, "50", gotQuery.Get("limit"))
	require.Equal(t, "0", gotQuery.Get("offset"))
	require.Equal(t, "3", gotQuery.Get("orderBy"))
	require.Equal(t, "1", gotQuery.Get("descendCategories"))
	require.Equal(t, "0", gotQuery.Get("order"))
}

func TestSearchRecipesConnectionFailure(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/chefkoch")()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{ApiBaseUrl: server.URL})
	require.NoError(t, err)

	_, err = client.SearchRecipes(context.Background(), SearchRequest{Query: "gulasch"})
	require.ErrorIs(t, err, ErrConnection)
}

func TestLogin(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/chefkoch")()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/benutzer/authentifizieren":
			require.NoError(t, r.ParseForm())
			if r.PostForm.Get("password") == "richtig" {
				w.Write([]byte("ok"))
				return
			}
			// the real site answers 200 via a redirect to the login
			// form instead of an error status
			http.Redirect(w, r, "/benutzer/einloggen", http.StatusFound)
		case "/benutzer/einloggen":
			w.Write([]byte("login form"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	require.NoError(t, client.Login(context.Background(), "hobbykoch", "richtig"))

	err = client.Login(context.Background(), "hobbykoch", "falsch")
	var loginErr LoginError
	require.ErrorAs(t, err, &loginErr)
	require.Equal(t, "hobbykoch", loginErr.Username)
}
