// Command mcp-server serves the brand API toolset over stdio MCP framing.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/brandvault/brandvault-mcp-server/internal/app"
	"github.com/brandvault/brandvault-mcp-server/internal/config"
	"github.com/brandvault/brandvault-mcp-server/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, cleanup, err := logging.New("mcp-server")
	if err != nil {
		log.Fatalf("logging setup: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("stdio MCP server starting")
	if err := app.RunStdio(ctx, cfg, logger); err != nil && err != context.Canceled {
		logger.WithError(err).Error("server exited")
		os.Exit(1)
	}
}
