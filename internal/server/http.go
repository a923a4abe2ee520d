// ABOUTME: HTTP-based transport bindings: sse, http, and streamable-http.
// ABOUTME: One listener per process with graceful shutdown on cancellation.

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// endpointPath is where the MCP handler is mounted for each HTTP mode.
func endpointPath(mode Mode) string {
	if mode == ModeSSE {
		return "/sse"
	}
	return "/mcp"
}

type httpBinding struct {
	mode    Mode
	addr    string
	handler http.Handler
	logger  *slog.Logger
}

func newHTTPBinding(mode Mode, mcpServer *mcp.Server, addr string, logger *slog.Logger) *httpBinding {
	getServer := func(*http.Request) *mcp.Server { return mcpServer }

	var handler http.Handler
	switch mode {
	case ModeSSE:
		handler = mcp.NewSSEHandler(getServer, nil)
	case ModeHTTP:
		// Plain request/response JSON, no session state between calls.
		handler = mcp.NewStreamableHTTPHandler(getServer, &mcp.StreamableHTTPOptions{
			JSONResponse: true,
			Stateless:    true,
		})
	default:
		handler = mcp.NewStreamableHTTPHandler(getServer, nil)
	}

	mux := http.NewServeMux()
	mux.Handle(endpointPath(mode), handler)
	mux.HandleFunc("/health", handleHealth)

	return &httpBinding{mode: mode, addr: addr, handler: mux, logger: logger}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

// Run listens, serves, and blocks until the context is canceled or the
// server fails. Cancellation triggers a bounded graceful shutdown so
// in-flight tool calls can finish.
func (b *httpBinding) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", b.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", b.addr, err)
	}

	srv := &http.Server{
		Handler:           b.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		b.logger.Info("HTTP server listening",
			"addr", ln.Addr().String(),
			"mode", string(b.mode),
			"endpoint", endpointPath(b.mode),
		)
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		b.logger.Info("context canceled, shutting down HTTP server")
		// The run context is already canceled, so shutdown gets its own.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
