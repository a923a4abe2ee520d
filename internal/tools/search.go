// ABOUTME: Tool handler for search_for_movie.
// ABOUTME: Flattened scalar criteria map onto the client's SearchCriteria.

package tools

import (
	"context"

	"github.com/2389/mcp-radarr/internal/radarr"
)

// SearchForMovieInput is the search_for_movie argument schema. Every field
// is optional; empty criteria return the whole library.
type SearchForMovieInput struct {
	Name             string   `json:"name,omitempty" jsonschema:"partial title match, case-insensitive"`
	Year             *int     `json:"year,omitempty" jsonschema:"exact release year"`
	YearMin          *int     `json:"year_min,omitempty" jsonschema:"earliest release year, inclusive"`
	YearMax          *int     `json:"year_max,omitempty" jsonschema:"latest release year, inclusive"`
	Genres           []string `json:"genres,omitempty" jsonschema:"genres to match; any one suffices"`
	Certification    string   `json:"certification,omitempty" jsonschema:"certification such as G, PG, PG-13, R"`
	Monitored        *bool    `json:"monitored,omitempty" jsonschema:"monitored state"`
	Status           string   `json:"status,omitempty" jsonschema:"one of announced, inCinemas, released"`
	QualityProfileID *int64   `json:"quality_profile_id,omitempty" jsonschema:"quality profile id"`
	MinSizeBytes     *int64   `json:"min_size_bytes,omitempty" jsonschema:"minimum file size in bytes; only matches downloaded movies"`
	MaxSizeBytes     *int64   `json:"max_size_bytes,omitempty" jsonschema:"maximum file size in bytes; only matches downloaded movies"`
}

func (r *Registry) searchForMovie(ctx context.Context, in SearchForMovieInput) (MovieListResult, error) {
	movies, err := r.api.SearchMovies(ctx, radarr.SearchCriteria{
		Name:             in.Name,
		Year:             in.Year,
		YearMin:          in.YearMin,
		YearMax:          in.YearMax,
		Genres:           in.Genres,
		Certification:    in.Certification,
		Monitored:        in.Monitored,
		Status:           in.Status,
		QualityProfileID: in.QualityProfileID,
		MinSizeBytes:     in.MinSizeBytes,
		MaxSizeBytes:     in.MaxSizeBytes,
	})
	if err != nil {
		return MovieListResult{}, err
	}
	return MovieListResult{Movies: movies, Count: len(movies)}, nil
}
