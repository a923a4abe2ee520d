// ABOUTME: Tool handler for edit_movie: identifier resolution plus a patch.
// ABOUTME: Exactly one identifier must resolve to exactly one movie.

package tools

import (
	"context"
	"strings"

	"github.com/2389/mcp-radarr/internal/radarr"
)

// EditMovieInput is the edit_movie argument schema. Exactly one of movie_id,
// title, or tmdb_id identifies the movie; the remaining fields form the
// patch, and only the supplied ones change.
type EditMovieInput struct {
	MovieID             *int64  `json:"movie_id,omitempty" jsonschema:"Radarr id of the movie to edit"`
	Title               string  `json:"title,omitempty" jsonschema:"exact movie title, matched case-insensitively"`
	TmdbID              *int64  `json:"tmdb_id,omitempty" jsonschema:"TMDB id of the movie to edit"`
	Monitored           *bool   `json:"monitored,omitempty" jsonschema:"whether Radarr should monitor the movie"`
	QualityProfileID    *int64  `json:"quality_profile_id,omitempty" jsonschema:"new quality profile id, from get_quality_profiles"`
	MinimumAvailability *string `json:"minimum_availability,omitempty" jsonschema:"one of announced, inCinemas, released"`
}

func (r *Registry) editMovie(ctx context.Context, in EditMovieInput) (MovieResult, error) {
	movieID, err := r.resolveMovieID(ctx, in)
	if err != nil {
		return MovieResult{}, err
	}

	patch := radarr.EditPatch{
		Monitored:           in.Monitored,
		QualityProfileID:    in.QualityProfileID,
		MinimumAvailability: in.MinimumAvailability,
	}
	if patch.IsZero() {
		return MovieResult{}, &radarr.Error{
			Kind:    radarr.KindInvalidArgument,
			Message: "at least one of monitored, quality_profile_id, or minimum_availability is required",
		}
	}

	movie, err := r.api.EditMovie(ctx, movieID, patch)
	if err != nil {
		return MovieResult{}, err
	}
	return MovieResult{Movie: movie}, nil
}

// resolveMovieID maps the input's identifier to a Radarr movie id. Title and
// TMDB resolution reuse the single-movie lookup semantics: absent is
// not_found, several exact title matches are ambiguous_match.
func (r *Registry) resolveMovieID(ctx context.Context, in EditMovieInput) (int64, error) {
	identifiers := 0
	if in.MovieID != nil {
		identifiers++
	}
	if strings.TrimSpace(in.Title) != "" {
		identifiers++
	}
	if in.TmdbID != nil {
		identifiers++
	}
	if identifiers != 1 {
		return 0, &radarr.Error{
			Kind:    radarr.KindInvalidArgument,
			Message: "exactly one of movie_id, title, or tmdb_id is required",
		}
	}

	switch {
	case in.MovieID != nil:
		if *in.MovieID <= 0 {
			return 0, &radarr.Error{Kind: radarr.KindInvalidArgument, Message: "movie_id must be positive"}
		}
		return *in.MovieID, nil

	case in.TmdbID != nil:
		movie, err := r.api.GetMovieByTMDBID(ctx, *in.TmdbID)
		if err != nil {
			return 0, err
		}
		if movie == nil {
			return 0, &radarr.Error{Kind: radarr.KindNotFound, Message: "no library movie with that tmdb_id"}
		}
		return movie.ID, nil

	default:
		movie, err := r.api.GetMovieByTitle(ctx, in.Title)
		if err != nil {
			return 0, err
		}
		if movie == nil {
			return 0, &radarr.Error{Kind: radarr.KindNotFound, Message: "no library movie with that title"}
		}
		return movie.ID, nil
	}
}
