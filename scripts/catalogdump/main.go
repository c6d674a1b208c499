// Command catalogdump writes the tool catalog as a JSON manifest, for
// docs and for clients that want the schema without starting a server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/brandvault/brandvault-mcp-server/internal/backend"
	"github.com/brandvault/brandvault-mcp-server/internal/catalog"
	"github.com/brandvault/brandvault-mcp-server/internal/config"
	"github.com/brandvault/brandvault-mcp-server/internal/logging"
	"github.com/brandvault/brandvault-mcp-server/internal/protocol"
	"github.com/brandvault/brandvault-mcp-server/internal/session"
)

func main() {
	output := flag.String("output", "-", "output file, or - for stdout")
	flag.Parse()

	raw, err := Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *output == "-" {
		fmt.Println(string(raw))
		return
	}
	if err := os.WriteFile(*output, append(raw, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("catalog written to %s\n", *output)
}

// Generate renders the full tool catalog as indented JSON. The catalog is
// static, so placeholder config suffices; no network calls are made.
func Generate() ([]byte, error) {
	cfg := &config.Config{BaseURL: "http://localhost", APIKey: "placeholder"}
	sess := session.New()
	log := logging.Discard()
	cat := catalog.New(cfg, sess, backend.New(cfg, sess, log), log)

	return json.MarshalIndent(protocol.ListResult{Tools: cat.Describe()}, "", "  ")
}
