package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandvault/brandvault-mcp-server/internal/protocol"
)

// handleForward proxies an arbitrary call through the backend's /forward
// endpoint. Public forwards skip the auth precondition; whether the
// cached bearer token is still attached to them is configuration-driven,
// since the upstream variants disagreed.
func (c *Catalog) handleForward(ctx context.Context, ep Endpoint, args arguments) (protocol.CallResult, error) {
	isPublic, _ := args.boolean("isPublic")
	if !isPublic {
		if _, err := c.sess.RequireAccessToken(); err != nil {
			return protocol.CallResult{}, err
		}
	}

	req := buildRequest(ep, args)
	if isPublic && !c.cfg.ForwardPublicAuth {
		req.SkipAuth = true
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return protocol.CallResult{}, err
	}

	method, ok := args.str("method")
	if !ok || method == "" {
		method = "GET"
	}
	path, _ := args.str("path")

	result := jsonResult(ep, args, resp)
	result.Content[1].Text = fmt.Sprintf("Forwarded %s %s.", strings.ToUpper(method), path)
	return result, nil
}
