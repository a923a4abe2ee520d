// ABOUTME: Package documentation for transport bindings.
// ABOUTME: Explains the four serving modes and their lifecycles.

// Package server binds one MCP server to a serving transport.
//
// Four modes are supported. stdio frames the protocol over the process's
// standard streams and is the default for desktop MCP clients. The three
// network modes share one HTTP listener each: sse mounts a Server-Sent
// Events handler at /sse, http mounts a stateless JSON handler at /mcp,
// and streamable-http mounts the session-based streamable handler at /mcp.
// Every network mode also serves GET /health.
//
// All modes treat context cancellation as a normal shutdown. Network modes
// stop accepting connections and give in-flight requests a bounded grace
// period before Run returns.
package server
