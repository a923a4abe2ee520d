// ABOUTME: Domain types for the Radarr v3 API surface used by the tool layer.
// ABOUTME: Field names mirror Radarr's JSON so responses round-trip unchanged.

package radarr

// MovieSummary is the compact movie view returned by list, lookup, and search
// operations. It carries the identifying fields plus availability state.
type MovieSummary struct {
	ID               int64  `json:"id,omitempty"`
	Title            string `json:"title"`
	Year             int    `json:"year,omitempty"`
	TmdbID           int64  `json:"tmdbId,omitempty"`
	Status           string `json:"status,omitempty"`
	Monitored        bool   `json:"monitored,omitempty"`
	HasFile          bool   `json:"hasFile,omitempty"`
	QualityProfileID int64  `json:"qualityProfileId,omitempty"`
	RemotePoster     string `json:"remotePoster,omitempty"`
}

// MovieDetail is the full movie view, a superset of MovieSummary with the
// metadata and file state needed for add/edit round-trips.
type MovieDetail struct {
	ID                  int64             `json:"id,omitempty"`
	Title               string            `json:"title"`
	OriginalTitle       string            `json:"originalTitle,omitempty"`
	Year                int               `json:"year,omitempty"`
	Status              string            `json:"status,omitempty"`
	Overview            string            `json:"overview,omitempty"`
	InCinemas           string            `json:"inCinemas,omitempty"`
	Studio              string            `json:"studio,omitempty"`
	Runtime             int               `json:"runtime,omitempty"`
	Genres              []string          `json:"genres,omitempty"`
	ImdbID              string            `json:"imdbId,omitempty"`
	TmdbID              int64             `json:"tmdbId,omitempty"`
	Certification       string            `json:"certification,omitempty"`
	HasFile             bool              `json:"hasFile,omitempty"`
	Path                string            `json:"path,omitempty"`
	RootFolderPath      string            `json:"rootFolderPath,omitempty"`
	Monitored           bool              `json:"monitored,omitempty"`
	MinimumAvailability string            `json:"minimumAvailability,omitempty"`
	QualityProfileID    int64             `json:"qualityProfileId,omitempty"`
	Ratings             map[string]Rating `json:"ratings,omitempty"`
	Images              []Image           `json:"images,omitempty"`
	MovieFile           *MovieFile        `json:"movieFile,omitempty"`
	Popularity          float64           `json:"popularity,omitempty"`
}

// Summary projects a MovieDetail down to its MovieSummary view.
func (m *MovieDetail) Summary() MovieSummary {
	return MovieSummary{
		ID:               m.ID,
		Title:            m.Title,
		Year:             m.Year,
		TmdbID:           m.TmdbID,
		Status:           m.Status,
		Monitored:        m.Monitored,
		HasFile:          m.HasFile,
		QualityProfileID: m.QualityProfileID,
	}
}

// Rating is a single provider's score, keyed by provider name in
// MovieDetail.Ratings (imdb, tmdb, metacritic, rottenTomatoes).
type Rating struct {
	Votes int     `json:"votes,omitempty"`
	Value float64 `json:"value,omitempty"`
}

// Image is a poster or backdrop reference.
type Image struct {
	CoverType string `json:"coverType,omitempty"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// MovieFile describes the downloaded file attached to a library movie.
type MovieFile struct {
	Size      int64      `json:"size,omitempty"`
	Quality   *Quality   `json:"quality,omitempty"`
	Languages []Language `json:"languages,omitempty"`
	MediaInfo *MediaInfo `json:"mediaInfo,omitempty"`
}

// Quality wraps Radarr's nested quality revision object.
type Quality struct {
	Quality QualityRef `json:"quality"`
}

// QualityRef identifies a quality level by id and display name.
type QualityRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Language is an audio/subtitle language reference.
type Language struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// MediaInfo carries the codec details surfaced to callers.
type MediaInfo struct {
	AudioChannels     float64 `json:"audioChannels,omitempty"`
	AudioCodec        string  `json:"audioCodec,omitempty"`
	VideoDynamicRange string  `json:"videoDynamicRange,omitempty"`
	Subtitles         string  `json:"subtitles,omitempty"`
}

// QualityProfile is a configured download quality profile. AllowedQualities
// lists the names of the quality levels the profile permits.
type QualityProfile struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	AllowedQualities []string `json:"allowedQualities,omitempty"`
}

// RootFolder is a storage location movies can be added under.
type RootFolder struct {
	ID        int64  `json:"id"`
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace,omitempty"`
}

// AddOptions tunes AddMovie beyond the required tmdb id and profile.
type AddOptions struct {
	// RootFolderPath overrides the default root folder when non-empty.
	RootFolderPath string
}

// EditPatch is a partial update for a single movie. Nil fields are left
// untouched on the remote side.
type EditPatch struct {
	Monitored           *bool
	QualityProfileID    *int64
	MinimumAvailability *string
}

// IsZero reports whether the patch changes nothing.
func (p EditPatch) IsZero() bool {
	return p.Monitored == nil && p.QualityProfileID == nil && p.MinimumAvailability == nil
}

// SearchCriteria filters the library in SearchMovies. Zero-valued fields are
// ignored; an empty criteria matches every movie.
type SearchCriteria struct {
	Name             string
	Year             *int
	YearMin          *int
	YearMax          *int
	Genres           []string
	Certification    string
	Monitored        *bool
	Status           string
	QualityProfileID *int64
	MinSizeBytes     *int64
	MaxSizeBytes     *int64
}
