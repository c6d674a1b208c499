package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/brandvault/brandvault-mcp-server/internal/protocol"
)

// StdioTransport serves line-delimited JSON-RPC 2.0 over a reader/writer
// pair, normally stdin/stdout. Diagnostics must never touch the output
// stream; they go through the logrus entry only.
type StdioTransport struct {
	server *Server
	in     io.Reader
	out    io.Writer
	log    *logrus.Entry
}

// NewStdioTransport builds a transport over the given streams.
func NewStdioTransport(server *Server, in io.Reader, out io.Writer, log *logrus.Entry) *StdioTransport {
	return &StdioTransport{server: server, in: in, out: out, log: log}
}

// Serve processes requests until the input closes or ctx is cancelled.
// Requests are handled in arrival order.
func (t *StdioTransport) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(t.in)
	// Tool arguments can carry whole documents; allow large frames.
	const maxFrame = 4 * 1024 * 1024
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrame)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			t.log.Info("context cancelled, shutting down")
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal(line, &req); err != nil {
			t.log.WithError(err).Warn("unparseable frame")
			if err := t.write(protocol.Response{JSONRPC: "2.0", ID: "0", Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}); err != nil {
				return err
			}
			continue
		}

		// Notifications carry no id and expect no response.
		if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		resp, err := t.server.Handle(ctx, req)
		if err != nil {
			t.log.WithError(err).Error("handler error")
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := t.write(resp); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	t.log.Info("stdin closed, shutting down")
	return nil
}

// write emits one newline-terminated response frame.
func (t *StdioTransport) write(resp protocol.Response) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := t.out.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
