// ABOUTME: Tool registry wiring the eight Radarr tools onto an MCP server.
// ABOUTME: Handlers validate, call the client, and map errors to tool failures.

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389/mcp-radarr/internal/radarr"
)

// API is the Radarr client surface the tools depend on. *radarr.Client
// implements it; tests substitute a mock.
type API interface {
	LookupMovie(ctx context.Context, term string) ([]radarr.MovieSummary, error)
	ListMovies(ctx context.Context) ([]radarr.MovieSummary, error)
	GetMovieByTitle(ctx context.Context, title string) (*radarr.MovieDetail, error)
	GetMovieByTMDBID(ctx context.Context, tmdbID int64) (*radarr.MovieDetail, error)
	ListQualityProfiles(ctx context.Context) ([]radarr.QualityProfile, error)
	AddMovie(ctx context.Context, tmdbID, qualityProfileID int64, opts radarr.AddOptions) (*radarr.MovieDetail, error)
	EditMovie(ctx context.Context, movieID int64, patch radarr.EditPatch) (*radarr.MovieDetail, error)
	SearchMovies(ctx context.Context, criteria radarr.SearchCriteria) ([]radarr.MovieSummary, error)
}

// Registry holds the shared read-only dependencies of every tool handler.
// Handlers keep no per-call state, so any number may run concurrently.
type Registry struct {
	api    API
	logger *slog.Logger
}

// New creates a registry over the given client.
func New(api API, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{api: api, logger: logger}
}

// Install registers every tool on the server. All transport bindings share
// the one server, so this is the single dispatch surface.
func (r *Registry) Install(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_movie",
		Description: "Search external movie databases by name or title. Returns matches with the tmdbId needed to add a movie; results are not necessarily in the library yet.",
	}, wrap(r, "lookup_movie", r.lookupMovie))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "movie_list",
		Description: "List every movie tracked in the Radarr library with minimal per-movie detail.",
	}, wrap(r, "movie_list", r.movieList))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "movie_info",
		Description: "Get detailed information for one library movie by exact title (case-insensitive). Reports when the title is absent or ambiguous.",
	}, wrap(r, "movie_info", r.movieInfo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "movie_info_by_tmdb_id",
		Description: "Get detailed information for one library movie by its TMDB id. More precise than title lookup.",
	}, wrap(r, "movie_info_by_tmdb_id", r.movieInfoByTMDBID))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_quality_profiles",
		Description: "List the configured quality profiles. Profile ids are required when adding or editing movies.",
	}, wrap(r, "get_quality_profiles", r.qualityProfiles))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_movie",
		Description: "Add a movie to the library by TMDB id under a quality profile and trigger an immediate search for it.",
	}, wrap(r, "add_movie", r.addMovie))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "edit_movie",
		Description: "Partially update one library movie, identified by radarr id, exact title, or TMDB id. Only the supplied fields change.",
	}, wrap(r, "edit_movie", r.editMovie))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_for_movie",
		Description: "Filter the library by optional criteria: name, year or year range, genres, certification, monitored state, status, quality profile, and file size. Empty criteria list everything.",
	}, wrap(r, "search_for_movie", r.searchForMovie))
}

// failurePayload is the structured error shape returned to callers.
type failurePayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// failureResult encodes a domain failure as a tool error result. Failures
// never surface as protocol errors; the serving process keeps running.
func failureResult(kind radarr.Kind, message string) *mcp.CallToolResult {
	data, err := json.Marshal(failurePayload{Kind: string(kind), Message: message})
	if err != nil {
		data = []byte(`{"kind":"transport","message":"encoding error payload"}`)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// wrap adapts a typed operation into an MCP tool handler, adding per-call
// correlation logging and the error-to-failure mapping at the registry
// boundary.
func wrap[In, Out any](r *Registry, name string, fn func(context.Context, In) (Out, error)) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		var zero Out
		callID := uuid.NewString()
		start := time.Now()
		r.logger.Debug("tool call started", "tool", name, "call_id", callID)

		out, err := fn(ctx, in)
		if err != nil {
			kind := radarr.KindOf(err)
			message := err.Error()
			var rerr *radarr.Error
			if errors.As(err, &rerr) {
				message = rerr.Message
			}
			r.logger.Warn("tool call failed",
				"tool", name,
				"call_id", callID,
				"kind", string(kind),
				"error", message,
				"duration", time.Since(start),
			)
			return failureResult(kind, message), zero, nil
		}

		r.logger.Info("tool call completed",
			"tool", name,
			"call_id", callID,
			"duration", time.Since(start),
		)
		return nil, out, nil
	}
}
