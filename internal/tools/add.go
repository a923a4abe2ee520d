// ABOUTME: Tool handler for add_movie.
// ABOUTME: Validates ids locally; duplicates surface as remote_rejected.

package tools

import (
	"context"

	"github.com/2389/mcp-radarr/internal/radarr"
)

// AddMovieInput is the add_movie argument schema.
type AddMovieInput struct {
	TmdbID           int64  `json:"tmdb_id" jsonschema:"TMDB id of the movie to add, from lookup_movie"`
	QualityProfileID int64  `json:"quality_profile_id" jsonschema:"quality profile id, from get_quality_profiles"`
	RootFolderPath   string `json:"root_folder_path,omitempty" jsonschema:"storage path override; Radarr's default root folder is used when omitted"`
}

// MovieResult wraps a single movie returned by a mutating tool.
type MovieResult struct {
	Movie *radarr.MovieDetail `json:"movie"`
}

func (r *Registry) addMovie(ctx context.Context, in AddMovieInput) (MovieResult, error) {
	if in.TmdbID <= 0 {
		return MovieResult{}, &radarr.Error{Kind: radarr.KindInvalidArgument, Message: "tmdb_id must be positive"}
	}
	if in.QualityProfileID <= 0 {
		return MovieResult{}, &radarr.Error{Kind: radarr.KindInvalidArgument, Message: "quality_profile_id must be positive"}
	}

	movie, err := r.api.AddMovie(ctx, in.TmdbID, in.QualityProfileID, radarr.AddOptions{
		RootFolderPath: in.RootFolderPath,
	})
	if err != nil {
		return MovieResult{}, err
	}
	return MovieResult{Movie: movie}, nil
}
