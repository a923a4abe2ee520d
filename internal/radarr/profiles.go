// ABOUTME: Quality profile and root folder listing operations.
// ABOUTME: Profiles are flattened into id/name plus allowed quality names.

package radarr

import "context"

// rawQualityProfile mirrors Radarr's nested profile document.
type rawQualityProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Items []struct {
		Allowed bool `json:"allowed"`
		Quality *struct {
			Name string `json:"name"`
		} `json:"quality"`
	} `json:"items"`
}

// ListQualityProfiles returns the configured quality profiles in the order
// Radarr reports them, each with the names of its allowed quality levels.
func (c *Client) ListQualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var raw []rawQualityProfile
	if err := c.get(ctx, "qualityprofile", nil, &raw); err != nil {
		return nil, err
	}

	profiles := make([]QualityProfile, 0, len(raw))
	for _, p := range raw {
		profile := QualityProfile{ID: p.ID, Name: p.Name}
		for _, item := range p.Items {
			if item.Allowed && item.Quality != nil && item.Quality.Name != "" {
				profile.AllowedQualities = append(profile.AllowedQualities, item.Quality.Name)
			}
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// ListRootFolders returns the storage locations movies can be added under.
func (c *Client) ListRootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "rootfolder", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// validateQualityProfile confirms the id references a configured profile.
func (c *Client) validateQualityProfile(ctx context.Context, id int64) error {
	profiles, err := c.ListQualityProfiles(ctx)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if p.ID == id {
			return nil
		}
	}
	return invalidArgument("quality profile %d does not exist", id)
}
