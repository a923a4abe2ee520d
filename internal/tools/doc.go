// ABOUTME: Package documentation for the tool registry.
// ABOUTME: Describes the tool surface and the failure contract.

// Package tools defines the MCP tool surface over the Radarr client.
//
// # Tools
//
// Eight tools are registered: lookup_movie, movie_list, movie_info,
// movie_info_by_tmdb_id, get_quality_profiles, add_movie, edit_movie, and
// search_for_movie. Inputs and outputs are typed structs; the SDK derives
// JSON schemas from them, so clients get argument validation before a
// handler ever runs.
//
// # Failure contract
//
// Handlers return ordinary Go errors. The registry boundary converts them
// into tool results with IsError set and a JSON body of the form
//
//	{"kind": "not_found", "message": "no library movie with that title"}
//
// where kind is one of the radarr error kinds. A failed call never turns
// into a protocol-level error and never stops the serving process.
package tools
