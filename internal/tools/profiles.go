// ABOUTME: Tool handler for get_quality_profiles.
// ABOUTME: Profiles pass through in the order the remote API reports them.

package tools

import (
	"context"

	"github.com/2389/mcp-radarr/internal/radarr"
)

// QualityProfilesInput is the empty get_quality_profiles argument schema.
type QualityProfilesInput struct{}

// QualityProfilesResult lists the configured profiles.
type QualityProfilesResult struct {
	Profiles []radarr.QualityProfile `json:"profiles"`
	Count    int                     `json:"count"`
}

func (r *Registry) qualityProfiles(ctx context.Context, _ QualityProfilesInput) (QualityProfilesResult, error) {
	profiles, err := r.api.ListQualityProfiles(ctx)
	if err != nil {
		return QualityProfilesResult{}, err
	}
	return QualityProfilesResult{Profiles: profiles, Count: len(profiles)}, nil
}
