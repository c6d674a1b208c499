// Command mcp-http serves the brand API toolset over HTTP for callers
// that cannot speak stdio MCP framing.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/brandvault/brandvault-mcp-server/internal/app"
	"github.com/brandvault/brandvault-mcp-server/internal/config"
	"github.com/brandvault/brandvault-mcp-server/internal/logging"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", ":3333", "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, cleanup, err := logging.New("mcp-http")
	if err != nil {
		log.Fatalf("logging setup: %v", err)
	}
	defer cleanup()

	log.Printf("MCP HTTP server listening on %s", *httpAddr)
	if err := app.RunHTTP(cfg, *httpAddr, logger); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
