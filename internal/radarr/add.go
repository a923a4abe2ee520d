// ABOUTME: AddMovie operation: resolves defaults, looks up metadata, POSTs.
// ABOUTME: Duplicate movies surface as remote_rejected, matching Radarr's 400.

package radarr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// addMoviePayload is the POST /movie request body.
type addMoviePayload struct {
	TmdbID              int64           `json:"tmdbId"`
	Title               string          `json:"title"`
	Year                int             `json:"year"`
	QualityProfileID    int64           `json:"qualityProfileId"`
	RootFolderPath      string          `json:"rootFolderPath"`
	MinimumAvailability string          `json:"minimumAvailability"`
	Monitored           bool            `json:"monitored"`
	AddOptions          addMovieOptions `json:"addOptions"`
}

type addMovieOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

// AddMovie adds the movie identified by tmdbID to the library under the given
// quality profile and triggers an immediate search for it. When no root
// folder is supplied, Radarr's first configured root folder is used. Radarr
// rejects duplicates and unknown profiles; both surface as remote_rejected.
func (c *Client) AddMovie(ctx context.Context, tmdbID, qualityProfileID int64, opts AddOptions) (*MovieDetail, error) {
	if tmdbID <= 0 {
		return nil, invalidArgument("tmdb id must be positive")
	}
	if qualityProfileID <= 0 {
		return nil, invalidArgument("quality profile id must be positive")
	}

	rootFolderPath := opts.RootFolderPath
	if rootFolderPath == "" {
		folders, err := c.ListRootFolders(ctx)
		if err != nil {
			return nil, err
		}
		if len(folders) == 0 {
			return nil, &Error{Kind: KindRemoteRejected, Message: "no root folders configured in Radarr"}
		}
		rootFolderPath = folders[0].Path
	}

	// Radarr requires title and year in the add payload, so look the movie
	// up by tmdb id first.
	var movie MovieDetail
	query := url.Values{"tmdbId": {strconv.FormatInt(tmdbID, 10)}}
	if err := c.get(ctx, "movie/lookup/tmdb", query, &movie); err != nil {
		return nil, err
	}
	if movie.Title == "" {
		return nil, &Error{Kind: KindNotFound, Message: "no movie found for tmdb id " + strconv.FormatInt(tmdbID, 10)}
	}

	payload := addMoviePayload{
		TmdbID:              tmdbID,
		Title:               movie.Title,
		Year:                movie.Year,
		QualityProfileID:    qualityProfileID,
		RootFolderPath:      rootFolderPath,
		MinimumAvailability: "released",
		Monitored:           true,
		AddOptions:          addMovieOptions{SearchForMovie: true},
	}

	var added MovieDetail
	if err := c.do(ctx, http.MethodPost, "movie", nil, payload, &added); err != nil {
		return nil, err
	}
	c.absolutizeImages(added.Images)
	return &added, nil
}
