// ABOUTME: SearchMovies operation: criteria-driven filtering of the library.
// ABOUTME: Filtering happens client-side; Radarr has no matching query API.

package radarr

import (
	"context"
	"strings"
)

// librarySearchMovie is the per-movie view the search filter inspects. It
// extends the summary with the fields criteria can match against.
type librarySearchMovie struct {
	MovieSummary
	Genres        []string   `json:"genres,omitempty"`
	Certification string     `json:"certification,omitempty"`
	MovieFile     *MovieFile `json:"movieFile,omitempty"`
}

// SearchMovies returns the library movies matching every set criterion.
// Empty criteria match the whole library, equivalent to ListMovies.
func (c *Client) SearchMovies(ctx context.Context, criteria SearchCriteria) ([]MovieSummary, error) {
	var movies []librarySearchMovie
	if err := c.get(ctx, "movie", nil, &movies); err != nil {
		return nil, err
	}

	var results []MovieSummary
	for _, m := range movies {
		if criteria.matches(m) {
			results = append(results, m.MovieSummary)
		}
	}
	return results, nil
}

// matches reports whether the movie satisfies every set criterion.
func (sc SearchCriteria) matches(m librarySearchMovie) bool {
	if sc.Name != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(sc.Name)) {
		return false
	}
	if sc.Year != nil && m.Year != *sc.Year {
		return false
	}
	if sc.YearMin != nil && m.Year < *sc.YearMin {
		return false
	}
	if sc.YearMax != nil && m.Year > *sc.YearMax {
		return false
	}
	if len(sc.Genres) > 0 && !anyGenreMatches(sc.Genres, m.Genres) {
		return false
	}
	if sc.Certification != "" && !strings.EqualFold(m.Certification, sc.Certification) {
		return false
	}
	if sc.Monitored != nil && m.Monitored != *sc.Monitored {
		return false
	}
	if sc.Status != "" && !strings.EqualFold(m.Status, sc.Status) {
		return false
	}
	if sc.QualityProfileID != nil && m.QualityProfileID != *sc.QualityProfileID {
		return false
	}
	if sc.MinSizeBytes != nil || sc.MaxSizeBytes != nil {
		// Size criteria only match movies that actually have a file.
		if m.MovieFile == nil {
			return false
		}
		if sc.MinSizeBytes != nil && m.MovieFile.Size < *sc.MinSizeBytes {
			return false
		}
		if sc.MaxSizeBytes != nil && m.MovieFile.Size > *sc.MaxSizeBytes {
			return false
		}
	}
	return true
}

// anyGenreMatches reports whether any wanted genre appears in the movie's
// genre list, case-insensitively.
func anyGenreMatches(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
