package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/brandvault/brandvault-mcp-server/internal/backend"
	"github.com/brandvault/brandvault-mcp-server/internal/protocol"
)

// invoke is the generic handler: expand the descriptor into one upstream
// request, issue it, shape the response into content blocks.
func (c *Catalog) invoke(ctx context.Context, ep Endpoint, args arguments) (protocol.CallResult, error) {
	req := buildRequest(ep, args)
	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return protocol.CallResult{}, err
	}
	if ep.Binary {
		return binaryResult(ep, args, resp), nil
	}
	return jsonResult(ep, args, resp), nil
}

// buildRequest maps validated arguments onto path segments, query
// parameters and the JSON body according to the descriptor.
func buildRequest(ep Endpoint, args arguments) backend.Request {
	path := ep.PathTemplate
	query := url.Values{}
	var body map[string]json.RawMessage

	for _, p := range ep.Params {
		if !args.has(p.Name) {
			continue
		}
		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(args.scalar(p.Name)))
		case InQuery:
			query.Set(p.Name, args.scalar(p.Name))
		case InBody:
			if body == nil {
				body = make(map[string]json.RawMessage)
			}
			body[p.Name] = args[p.Name]
		}
	}

	req := backend.Request{
		Method:     ep.Method,
		Path:       path,
		Query:      query,
		Binary:     ep.Binary,
		SendAPIKey: ep.SendAPIKey,
	}
	if body != nil {
		req.Body = body
	}
	return req
}

// jsonResult renders a JSON response as a raw envelope block plus a
// one-line summary block.
func jsonResult(ep Endpoint, args arguments, resp *backend.Response) protocol.CallResult {
	payload := json.RawMessage(resp.Body)
	if len(resp.Body) == 0 {
		payload = json.RawMessage("null")
	}
	envelope := envelopeFields(ep, args)
	envelope["data"] = payload

	return protocol.CallResult{Content: []protocol.ContentPart{
		{Type: protocol.ContentText, Text: prettyJSON(envelope)},
		{Type: protocol.ContentText, Text: summarize(ep, args)},
	}}
}

// binaryResult renders a binary response as metadata (no payload), a
// summary naming the content type, and the payload as base64.
func binaryResult(ep Endpoint, args arguments, resp *backend.Response) protocol.CallResult {
	envelope := envelopeFields(ep, args)
	envelope["contentType"] = resp.ContentType
	envelope["contentDisposition"] = resp.ContentDisposition
	envelope["size"] = len(resp.Body)

	summary := fmt.Sprintf("%s (%s, %d bytes)", summarize(ep, args), resp.ContentType, len(resp.Body))

	return protocol.CallResult{Content: []protocol.ContentPart{
		{Type: protocol.ContentText, Text: prettyJSON(envelope)},
		{Type: protocol.ContentText, Text: summary},
		{Type: protocol.ContentBlob, Data: base64.StdEncoding.EncodeToString(resp.Body), MimeType: resp.ContentType},
	}}
}

// envelopeFields seeds the result envelope with a timestamp and echoes of
// the path/query arguments that identified the resource.
func envelopeFields(ep Endpoint, args arguments) map[string]any {
	env := map[string]any{
		"success":   true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	for _, p := range ep.Params {
		if p.In == InBody || !args.has(p.Name) {
			continue
		}
		env[p.Name] = args[p.Name]
	}
	return env
}

// summarize expands the descriptor's summary template with argument
// values.
func summarize(ep Endpoint, args arguments) string {
	if ep.Summary == "" {
		return fmt.Sprintf("Completed %s.", ep.Name)
	}
	out := ep.Summary
	for _, p := range ep.Params {
		placeholder := "{" + p.Name + "}"
		if strings.Contains(out, placeholder) {
			out = strings.ReplaceAll(out, placeholder, args.scalar(p.Name))
		}
	}
	return out
}

func prettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
