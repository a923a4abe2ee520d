// Package radarr implements a typed client for the Radarr v3 REST API.
//
// # Overview
//
// The client is the single caller of the remote Radarr instance. It is
// constructed once at startup from resolved settings and shared read-only by
// every tool handler; all fields are immutable after construction, so
// concurrent calls need no synchronization.
//
// # Operations
//
//   - LookupMovie: search external databases by term
//   - ListMovies: full library enumeration
//   - GetMovieByTitle / GetMovieByTMDBID: single-movie fetch, absent on miss
//   - ListQualityProfiles / ListRootFolders: configuration lookups
//   - AddMovie: add to the library and trigger a search
//   - EditMovie: partial update of one movie
//   - SearchMovies: criteria-driven library filtering
//
// # Error mapping
//
// Every failure is a *Error carrying a stable Kind. HTTP statuses map as
// 401/403 authentication, 404 not_found, 400/409/422 remote_rejected, and
// anything else (including connection failures and timeouts) transport.
// Callers branch on KindOf; raw transport errors never escape this package,
// and no call is retried.
package radarr
