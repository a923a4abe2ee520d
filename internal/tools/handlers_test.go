// ABOUTME: Tests for the read and add tool handlers over a mocked client.
// ABOUTME: Covers local validation, pass-through results, and found flags.

package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/mcp-radarr/internal/radarr"
)

func TestLookupMovieRejectsBlankQueryBeforeRemoteCall(t *testing.T) {
	called := false
	r := newTestRegistry(&mockAPI{
		lookupMovie: func(context.Context, string) ([]radarr.MovieSummary, error) {
			called = true
			return nil, nil
		},
	})

	_, err := r.lookupMovie(context.Background(), LookupMovieInput{Query: "   "})
	require.Error(t, err)
	assert.Equal(t, radarr.KindInvalidArgument, radarr.KindOf(err))
	assert.False(t, called)
}

func TestLookupMoviePassesResultsThrough(t *testing.T) {
	r := newTestRegistry(&mockAPI{
		lookupMovie: func(_ context.Context, term string) ([]radarr.MovieSummary, error) {
			assert.Equal(t, "solaris", term)
			return []radarr.MovieSummary{{Title: "Solaris", Year: 1972}, {Title: "Solaris", Year: 2002}}, nil
		},
	})

	out, err := r.lookupMovie(context.Background(), LookupMovieInput{Query: "solaris"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Len(t, out.Movies, 2)
}

func TestMovieListCountsMovies(t *testing.T) {
	r := newTestRegistry(&mockAPI{
		listMovies: func(context.Context) ([]radarr.MovieSummary, error) {
			return []radarr.MovieSummary{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	})

	out, err := r.movieList(context.Background(), MovieListInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count)
}

func TestMovieInfoReportsFound(t *testing.T) {
	r := newTestRegistry(&mockAPI{
		getMovieByTitle: func(_ context.Context, title string) (*radarr.MovieDetail, error) {
			return &radarr.MovieDetail{ID: 7, Title: "Stalker"}, nil
		},
	})

	out, err := r.movieInfo(context.Background(), MovieInfoInput{Title: "Stalker"})
	require.NoError(t, err)
	assert.True(t, out.Found)
	require.NotNil(t, out.Movie)
	assert.Equal(t, int64(7), out.Movie.ID)
}

func TestMovieInfoAbsentIsNotAnError(t *testing.T) {
	r := newTestRegistry(&mockAPI{
		getMovieByTitle: func(context.Context, string) (*radarr.MovieDetail, error) {
			return nil, nil
		},
	})

	out, err := r.movieInfo(context.Background(), MovieInfoInput{Title: "Nothing"})
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Nil(t, out.Movie)
}

func TestMovieInfoRequiresTitle(t *testing.T) {
	r := newTestRegistry(&mockAPI{})

	_, err := r.movieInfo(context.Background(), MovieInfoInput{})
	require.Error(t, err)
	assert.Equal(t, radarr.KindInvalidArgument, radarr.KindOf(err))
}

func TestMovieInfoByTMDBIDRequiresPositiveID(t *testing.T) {
	r := newTestRegistry(&mockAPI{})

	_, err := r.movieInfoByTMDBID(context.Background(), MovieInfoByTMDBIDInput{TmdbID: 0})
	require.Error(t, err)
	assert.Equal(t, radarr.KindInvalidArgument, radarr.KindOf(err))
}

func TestQualityProfilesPassThrough(t *testing.T) {
	r := newTestRegistry(&mockAPI{
		listQualityProfiles: func(context.Context) ([]radarr.QualityProfile, error) {
			return []radarr.QualityProfile{
				{ID: 1, Name: "HD-1080p", AllowedQualities: []string{"Bluray-1080p"}},
				{ID: 4, Name: "Ultra-HD"},
			}, nil
		},
	})

	out, err := r.qualityProfiles(context.Background(), QualityProfilesInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "HD-1080p", out.Profiles[0].Name)
}

func TestAddMovieValidatesIDsLocally(t *testing.T) {
	called := false
	r := newTestRegistry(&mockAPI{
		addMovie: func(context.Context, int64, int64, radarr.AddOptions) (*radarr.MovieDetail, error) {
			called = true
			return nil, nil
		},
	})

	_, err := r.addMovie(context.Background(), AddMovieInput{TmdbID: 0, QualityProfileID: 1})
	require.Error(t, err)
	assert.Equal(t, radarr.KindInvalidArgument, radarr.KindOf(err))

	_, err = r.addMovie(context.Background(), AddMovieInput{TmdbID: 603, QualityProfileID: -2})
	require.Error(t, err)
	assert.Equal(t, radarr.KindInvalidArgument, radarr.KindOf(err))
	assert.False(t, called)
}

func TestAddMovieForwardsRootFolder(t *testing.T) {
	r := newTestRegistry(&mockAPI{
		addMovie: func(_ context.Context, tmdbID, profileID int64, opts radarr.AddOptions) (*radarr.MovieDetail, error) {
			assert.Equal(t, int64(603), tmdbID)
			assert.Equal(t, int64(1), profileID)
			assert.Equal(t, "/data/movies", opts.RootFolderPath)
			return &radarr.MovieDetail{ID: 42, TmdbID: 603}, nil
		},
	})

	out, err := r.addMovie(context.Background(), AddMovieInput{
		TmdbID:           603,
		QualityProfileID: 1,
		RootFolderPath:   "/data/movies",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Movie)
	assert.Equal(t, int64(42), out.Movie.ID)
}

func TestSearchForMovieMapsCriteria(t *testing.T) {
	year := 1979
	monitored := true
	var captured radarr.SearchCriteria
	r := newTestRegistry(&mockAPI{
		searchMovies: func(_ context.Context, criteria radarr.SearchCriteria) ([]radarr.MovieSummary, error) {
			captured = criteria
			return []radarr.MovieSummary{{Title: "Stalker"}}, nil
		},
	})

	out, err := r.searchForMovie(context.Background(), SearchForMovieInput{
		Name:      "stal",
		Year:      &year,
		Genres:    []string{"Sci-Fi"},
		Monitored: &monitored,
		Status:    "released",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)

	assert.Equal(t, "stal", captured.Name)
	require.NotNil(t, captured.Year)
	assert.Equal(t, 1979, *captured.Year)
	assert.Equal(t, []string{"Sci-Fi"}, captured.Genres)
	require.NotNil(t, captured.Monitored)
	assert.True(t, *captured.Monitored)
	assert.Equal(t, "released", captured.Status)
}
