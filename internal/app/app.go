// Package app wires configuration, session, backend client, catalog and
// server together for the cmd entry points.
package app

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/brandvault/brandvault-mcp-server/internal/backend"
	"github.com/brandvault/brandvault-mcp-server/internal/catalog"
	"github.com/brandvault/brandvault-mcp-server/internal/config"
	"github.com/brandvault/brandvault-mcp-server/internal/mcp"
	"github.com/brandvault/brandvault-mcp-server/internal/session"
)

// NewServer builds a fully wired MCP server. Each server owns its own
// session, so every process (or test) starts anonymous.
func NewServer(cfg *config.Config, log *logrus.Entry) *mcp.Server {
	sess := session.New()
	client := backend.New(cfg, sess, log)
	return mcp.NewServer(catalog.New(cfg, sess, client, log))
}

// RunStdio serves MCP over stdin/stdout until the stream closes.
func RunStdio(ctx context.Context, cfg *config.Config, log *logrus.Entry) error {
	server := NewServer(cfg, log)
	return mcp.NewStdioTransport(server, os.Stdin, os.Stdout, log).Serve(ctx)
}

// RunHTTP serves the MCP HTTP front end on addr.
func RunHTTP(cfg *config.Config, addr string, log *logrus.Entry) error {
	server := NewServer(cfg, log)
	return mcp.RunHTTP(server, addr, log)
}
