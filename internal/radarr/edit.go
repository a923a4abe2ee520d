// ABOUTME: EditMovie operation: partial update of a single library movie.
// ABOUTME: Round-trips the raw document so unpatched fields stay untouched.

package radarr

import (
	"context"
	"net/http"
	"strconv"
)

// EditMovie applies a partial update to the movie with the given Radarr id.
// Only the patch fields that are set are written; everything else in the
// remote document is preserved by round-tripping it unmodified. Applying the
// same patch twice yields the same final state.
func (c *Client) EditMovie(ctx context.Context, movieID int64, patch EditPatch) (*MovieDetail, error) {
	if movieID <= 0 {
		return nil, invalidArgument("movie id must be positive")
	}
	if patch.IsZero() {
		return nil, invalidArgument("patch must set at least one field")
	}
	if patch.MinimumAvailability != nil && !validAvailability(*patch.MinimumAvailability) {
		return nil, invalidArgument("minimum availability must be announced, inCinemas, or released")
	}
	if patch.QualityProfileID != nil {
		if err := c.validateQualityProfile(ctx, *patch.QualityProfileID); err != nil {
			return nil, err
		}
	}

	// Fetch the raw document rather than a typed struct: Radarr's PUT is a
	// full replace, and unknown fields must survive the round-trip.
	endpoint := "movie/" + strconv.FormatInt(movieID, 10)
	var doc map[string]any
	if err := c.get(ctx, endpoint, nil, &doc); err != nil {
		return nil, err
	}

	if patch.Monitored != nil {
		doc["monitored"] = *patch.Monitored
	}
	if patch.QualityProfileID != nil {
		doc["qualityProfileId"] = *patch.QualityProfileID
	}
	if patch.MinimumAvailability != nil {
		doc["minimumAvailability"] = *patch.MinimumAvailability
	}

	var updated MovieDetail
	if err := c.do(ctx, http.MethodPut, endpoint, nil, doc, &updated); err != nil {
		return nil, err
	}
	c.absolutizeImages(updated.Images)
	return &updated, nil
}

func validAvailability(v string) bool {
	switch v {
	case "announced", "inCinemas", "released":
		return true
	}
	return false
}
