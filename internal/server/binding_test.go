// ABOUTME: Tests for mode parsing, binding selection, and HTTP lifecycle.
// ABOUTME: Network bindings bind to port 0 so tests never collide.

package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMCPServer() *mcp.Server {
	return mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"stdio", "sse", "http", "streamable-http"} {
		mode, err := ParseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, Mode(valid), mode)
	}

	_, err := ParseMode("websocket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "websocket")
}

func TestNewSelectsBindingByMode(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	mcpServer := newTestMCPServer()

	b, err := New(ModeStdio, mcpServer, "", logger)
	require.NoError(t, err)
	assert.IsType(t, &stdioBinding{}, b)

	for _, mode := range []Mode{ModeSSE, ModeHTTP, ModeStreamableHTTP} {
		b, err = New(mode, mcpServer, "127.0.0.1:0", logger)
		require.NoError(t, err)
		assert.IsType(t, &httpBinding{}, b)
	}

	_, err = New(Mode("bogus"), mcpServer, "", logger)
	require.Error(t, err)
}

func TestEndpointPathPerMode(t *testing.T) {
	assert.Equal(t, "/sse", endpointPath(ModeSSE))
	assert.Equal(t, "/mcp", endpointPath(ModeHTTP))
	assert.Equal(t, "/mcp", endpointPath(ModeStreamableHTTP))
}

func TestHealthEndpoint(t *testing.T) {
	b := newHTTPBinding(ModeHTTP, newTestMCPServer(), "127.0.0.1:0", slog.New(slog.DiscardHandler))

	ts := httptest.NewServer(b.handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestHTTPBindingShutsDownOnCancel(t *testing.T) {
	b := newHTTPBinding(ModeStreamableHTTP, newTestMCPServer(), "127.0.0.1:0", slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- b.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("binding did not shut down after cancellation")
	}
}

func TestHTTPBindingReportsListenFailure(t *testing.T) {
	b := newHTTPBinding(ModeHTTP, newTestMCPServer(), "256.0.0.1:99999", slog.New(slog.DiscardHandler))

	err := b.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "listening on")
}
