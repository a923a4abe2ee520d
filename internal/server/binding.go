// ABOUTME: Transport binding selection for the MCP server.
// ABOUTME: One mode maps to one Binding; all bindings share the tool surface.

package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Mode selects how the MCP server is exposed to clients.
type Mode string

const (
	// ModeStdio frames the protocol over the process's stdin and stdout.
	ModeStdio Mode = "stdio"

	// ModeSSE serves a Server-Sent Events stream with a session message endpoint.
	ModeSSE Mode = "sse"

	// ModeHTTP serves stateless request/response JSON over HTTP POST.
	ModeHTTP Mode = "http"

	// ModeStreamableHTTP serves the streamable HTTP transport with sessions.
	ModeStreamableHTTP Mode = "streamable-http"
)

// ParseMode validates a mode string from a flag or environment value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStdio, ModeSSE, ModeHTTP, ModeStreamableHTTP:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown serving mode %q (expected stdio, sse, http, or streamable-http)", s)
}

// Binding runs an MCP server over one transport. Run blocks until the
// context is canceled or the transport fails; cancellation is a normal
// shutdown, not an error.
type Binding interface {
	Run(ctx context.Context) error
}

// New builds the binding for the given mode. addr is ignored for stdio.
func New(mode Mode, mcpServer *mcp.Server, addr string, logger *slog.Logger) (Binding, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch mode {
	case ModeStdio:
		return &stdioBinding{server: mcpServer, logger: logger}, nil
	case ModeSSE, ModeHTTP, ModeStreamableHTTP:
		return newHTTPBinding(mode, mcpServer, addr, logger), nil
	default:
		return nil, fmt.Errorf("unknown serving mode %q", mode)
	}
}
