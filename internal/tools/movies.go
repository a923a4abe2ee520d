// ABOUTME: Tool handlers for lookup_movie, movie_list, and the movie_info pair.
// ABOUTME: Typed inputs are validated before any remote call is made.

package tools

import (
	"context"
	"strings"

	"github.com/2389/mcp-radarr/internal/radarr"
)

// LookupMovieInput is the lookup_movie argument schema.
type LookupMovieInput struct {
	Query string `json:"query" jsonschema:"movie name or title to search for, optionally with a year for precision"`
}

// MovieListResult carries a batch of movie summaries.
type MovieListResult struct {
	Movies []radarr.MovieSummary `json:"movies"`
	Count  int                   `json:"count"`
}

func (r *Registry) lookupMovie(ctx context.Context, in LookupMovieInput) (MovieListResult, error) {
	if strings.TrimSpace(in.Query) == "" {
		return MovieListResult{}, &radarr.Error{Kind: radarr.KindInvalidArgument, Message: "query is required"}
	}

	movies, err := r.api.LookupMovie(ctx, in.Query)
	if err != nil {
		return MovieListResult{}, err
	}
	return MovieListResult{Movies: movies, Count: len(movies)}, nil
}

// MovieListInput is the empty movie_list argument schema.
type MovieListInput struct{}

func (r *Registry) movieList(ctx context.Context, _ MovieListInput) (MovieListResult, error) {
	movies, err := r.api.ListMovies(ctx)
	if err != nil {
		return MovieListResult{}, err
	}
	return MovieListResult{Movies: movies, Count: len(movies)}, nil
}

// MovieInfoInput is the movie_info argument schema.
type MovieInfoInput struct {
	Title string `json:"title" jsonschema:"exact movie title, matched case-insensitively"`
}

// MovieInfoResult reports a single-movie fetch. Found is false when no
// library movie matches; that is a normal outcome, not an error.
type MovieInfoResult struct {
	Found bool                `json:"found"`
	Movie *radarr.MovieDetail `json:"movie,omitempty"`
}

func (r *Registry) movieInfo(ctx context.Context, in MovieInfoInput) (MovieInfoResult, error) {
	if strings.TrimSpace(in.Title) == "" {
		return MovieInfoResult{}, &radarr.Error{Kind: radarr.KindInvalidArgument, Message: "title is required"}
	}

	movie, err := r.api.GetMovieByTitle(ctx, in.Title)
	if err != nil {
		return MovieInfoResult{}, err
	}
	return MovieInfoResult{Found: movie != nil, Movie: movie}, nil
}

// MovieInfoByTMDBIDInput is the movie_info_by_tmdb_id argument schema.
type MovieInfoByTMDBIDInput struct {
	TmdbID int64 `json:"tmdb_id" jsonschema:"TMDB id of the movie (not Radarr's internal id)"`
}

func (r *Registry) movieInfoByTMDBID(ctx context.Context, in MovieInfoByTMDBIDInput) (MovieInfoResult, error) {
	if in.TmdbID <= 0 {
		return MovieInfoResult{}, &radarr.Error{Kind: radarr.KindInvalidArgument, Message: "tmdb_id must be positive"}
	}

	movie, err := r.api.GetMovieByTMDBID(ctx, in.TmdbID)
	if err != nil {
		return MovieInfoResult{}, err
	}
	return MovieInfoResult{Found: movie != nil, Movie: movie}, nil
}
