package movies

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient("test-key", "api.example.com", &http.Client{Transport: rt})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func TestSearchFilmsByTitleSendsAuthHeadersAndEscapesPath(t *testing.T) {
	var seen *http.Request

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return jsonResponse(http.StatusOK, `{"results":[{"imdb_id":"tt0117571","title":"Scream"}]}`), nil
	}))

	results, err := client.SearchFilmsByTitle(context.Background(), "the scream")
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NotNil(t, seen)
	assert.Equal(t, "test-key", seen.Header.Get("x-rapidapi-key"))
	assert.Equal(t, "api.example.com", seen.Header.Get("x-rapidapi-host"))
	assert.Equal(t, "api.example.com", seen.URL.Host)
	assert.Equal(t, "/movie/imdb_id/byTitle/the%20scream/", seen.URL.EscapedPath())
}

func TestSearchFilmsByTitleResultsShape(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"results":[
			{"imdb_id":"tt0117571","title":"Scream"},
			{"imdb_id":"tt3521102","title":"Scream 2"}
		]}`), nil
	}))

	results, err := client.SearchFilmsByTitle(context.Background(), "scream")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Contains(t, string(results[0]), `"tt0117571"`)
}

func TestSearchSeriesByTitleUsesSeriesPath(t *testing.T) {
	var seenPath string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenPath = r.URL.EscapedPath()
		return jsonResponse(http.StatusOK, `{"results":[{"imdb_id":"tt0475784","title":"Westworld"}]}`), nil
	}))

	_, err := client.SearchSeriesByTitle(context.Background(), "westworld")
	require.NoError(t, err)
	assert.Equal(t, "/series/imdb_id/byTitle/westworld/", seenPath)
}

func TestGetResultsNoResults(t *testing.T) {
	for name, body := range map[string]string{
		"null results":  `{"results":null}`,
		"empty array":   `{"results":[]}`,
		"missing field": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, body), nil
			}))

			_, err := client.SearchFilmsByTitle(context.Background(), "nothing")
			assert.ErrorIs(t, err, ErrNoResults)
		})
	}
}

func TestGetResultsNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"message":"quota exceeded"}`), nil
	}))

	_, err := client.SearchFilmsByTitle(context.Background(), "scream")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
	assert.Contains(t, err.Error(), "403")
}

func TestMovieByIDReturnsSingleRecord(t *testing.T) {
	var seenPath string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenPath = r.URL.EscapedPath()
		return jsonResponse(http.StatusOK, `{"results":{"imdb_id":"tt0117571","title":"Scream","year":1996}}`), nil
	}))

	raw, err := client.MovieByID(context.Background(), "tt0117571")
	require.NoError(t, err)
	assert.Equal(t, "/movie/id/tt0117571/", seenPath)
	assert.Contains(t, string(raw), `"year":1996`)
}

func TestMoviesByActorFlattensWrappedEntries(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/movie/byActor/nm0000093/", r.URL.EscapedPath())
		return jsonResponse(http.StatusOK, `{"results":[
			[{"imdb_id":"tt0117571","title":"Scream"}],
			[{"imdb_id":"tt0120082","title":"Wild Things"}],
			[]
		]}`), nil
	}))

	matches, err := client.MoviesByActor(context.Background(), "nm0000093")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "tt0117571", matches[0].IMDBID)
	assert.Equal(t, "Wild Things", matches[1].Title)
}

func TestMoviesByActorAllEmptyEntries(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"results":[[],[]]}`), nil
	}))

	_, err := client.MoviesByActor(context.Background(), "nm0000093")
	assert.ErrorIs(t, err, ErrNoResults)
}
