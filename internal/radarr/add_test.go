// ABOUTME: Tests for AddMovie: payload shape, defaults, duplicate rejection.
// ABOUTME: Uses a stateful fake backend so a second add collides like Radarr.

package radarr

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAddBackend emulates the endpoints AddMovie touches and remembers which
// tmdb ids have already been added.
func fakeAddBackend(t *testing.T) (http.Handler, *addMoviePayload) {
	t.Helper()
	added := map[int64]bool{}
	var lastPayload addMoviePayload

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/rootfolder", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "path": "/movies"}]`))
	})
	mux.HandleFunc("/api/v3/movie/lookup/tmdb", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tmdbId") == "27205" {
			w.Write([]byte(`{"title": "Inception", "year": 2010, "tmdbId": 27205}`))
			return
		}
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/api/v3/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastPayload))
		if added[lastPayload.TmdbID] {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`[{"errorMessage": "This movie has already been added"}]`))
			return
		}
		added[lastPayload.TmdbID] = true
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 10, "title": "Inception", "year": 2010, "tmdbId": 27205, "monitored": true, "qualityProfileId": 1}`))
	})
	return mux, &lastPayload
}

func TestAddMovie_Success(t *testing.T) {
	handler, payload := fakeAddBackend(t)
	client := newTestClient(t, handler)

	movie, err := client.AddMovie(context.Background(), 27205, 1, AddOptions{})
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, int64(10), movie.ID)

	// Defaults resolved against the fake backend.
	assert.Equal(t, "/movies", payload.RootFolderPath)
	assert.Equal(t, "released", payload.MinimumAvailability)
	assert.True(t, payload.Monitored)
	assert.True(t, payload.AddOptions.SearchForMovie)
	assert.Equal(t, "Inception", payload.Title)
	assert.Equal(t, 2010, payload.Year)
}

func TestAddMovie_ExplicitRootFolder(t *testing.T) {
	handler, payload := fakeAddBackend(t)
	client := newTestClient(t, handler)

	_, err := client.AddMovie(context.Background(), 27205, 1, AddOptions{RootFolderPath: "/data/films"})
	require.NoError(t, err)
	assert.Equal(t, "/data/films", payload.RootFolderPath)
}

func TestAddMovie_SecondAddIsRemoteRejected(t *testing.T) {
	handler, _ := fakeAddBackend(t)
	client := newTestClient(t, handler)

	_, err := client.AddMovie(context.Background(), 27205, 1, AddOptions{})
	require.NoError(t, err)

	_, err = client.AddMovie(context.Background(), 27205, 1, AddOptions{})
	require.Error(t, err)
	assert.Equal(t, KindRemoteRejected, KindOf(err))
	assert.Contains(t, err.Error(), "already been added")
}

func TestAddMovie_UnknownTMDBID(t *testing.T) {
	handler, _ := fakeAddBackend(t)
	client := newTestClient(t, handler)

	_, err := client.AddMovie(context.Background(), 555, 1, AddOptions{})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestAddMovie_InvalidArguments(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler())

	_, err := client.AddMovie(context.Background(), 0, 1, AddOptions{})
	assert.Equal(t, KindInvalidArgument, KindOf(err))

	_, err = client.AddMovie(context.Background(), 27205, 0, AddOptions{})
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}
