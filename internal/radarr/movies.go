// ABOUTME: Movie lookup and library listing operations.
// ABOUTME: Implements search-by-term, full listing, and single-movie fetches.

package radarr

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// LookupMovie searches external movie databases by name or title. The term
// may include a year for precision ("The Matrix 1999"). An empty result is
// not an error; an empty term is rejected before any remote call.
func (c *Client) LookupMovie(ctx context.Context, term string) ([]MovieSummary, error) {
	if strings.TrimSpace(term) == "" {
		return nil, invalidArgument("search term must not be empty")
	}

	var results []MovieSummary
	query := url.Values{"term": {term}}
	if err := c.get(ctx, "movie/lookup", query, &results); err != nil {
		return nil, err
	}
	for i := range results {
		results[i].RemotePoster = c.absolutizeURL(results[i].RemotePoster)
	}
	return results, nil
}

// ListMovies returns every movie tracked in the Radarr library.
func (c *Client) ListMovies(ctx context.Context) ([]MovieSummary, error) {
	var movies []MovieSummary
	if err := c.get(ctx, "movie", nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovieByTitle finds a library movie by case-insensitive exact title.
// A missing title returns (nil, nil); multiple exact matches return an
// ambiguous-match error rather than silently picking one.
func (c *Client) GetMovieByTitle(ctx context.Context, title string) (*MovieDetail, error) {
	if strings.TrimSpace(title) == "" {
		return nil, invalidArgument("title must not be empty")
	}

	var movies []MovieDetail
	if err := c.get(ctx, "movie", nil, &movies); err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(title))
	var matches []*MovieDetail
	for i := range movies {
		if strings.ToLower(movies[i].Title) == want {
			matches = append(matches, &movies[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		c.absolutizeImages(matches[0].Images)
		return matches[0], nil
	default:
		return nil, ambiguousMatch("%d movies share the title %q; use movie_info_by_tmdb_id", len(matches), title)
	}
}

// GetMovieByTMDBID finds a library movie by its TMDB id. Returns (nil, nil)
// when the movie is not in the library.
func (c *Client) GetMovieByTMDBID(ctx context.Context, tmdbID int64) (*MovieDetail, error) {
	if tmdbID <= 0 {
		return nil, invalidArgument("tmdb id must be positive")
	}

	var movies []MovieDetail
	query := url.Values{"tmdbId": {strconv.FormatInt(tmdbID, 10)}}
	if err := c.get(ctx, "movie", query, &movies); err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, nil
	}
	c.absolutizeImages(movies[0].Images)
	return &movies[0], nil
}
