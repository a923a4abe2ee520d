// ABOUTME: Stdio transport binding.
// ABOUTME: Stdout carries protocol frames only; logs go elsewhere.

package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type stdioBinding struct {
	server *mcp.Server
	logger *slog.Logger
}

func (b *stdioBinding) Run(ctx context.Context) error {
	b.logger.Info("serving MCP on stdio")
	err := b.server.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
