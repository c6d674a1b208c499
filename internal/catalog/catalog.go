// Package catalog defines the tool catalog and dispatches tool calls. Each
// tool maps to exactly one upstream endpoint; the mapping is a declarative
// descriptor and a single generic invoke routine replaces the per-endpoint
// handler boilerplate.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brandvault/brandvault-mcp-server/internal/backend"
	"github.com/brandvault/brandvault-mcp-server/internal/config"
	"github.com/brandvault/brandvault-mcp-server/internal/protocol"
	"github.com/brandvault/brandvault-mcp-server/internal/session"
)

// Argument locations.
const (
	InPath  = "path"
	InQuery = "query"
	InBody  = "body"
)

// Param declares one tool argument and where it lands in the upstream call.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Enum        []string
	In          string
}

// Endpoint is the static descriptor binding a tool to its upstream call.
type Endpoint struct {
	Name         string
	Description  string
	Method       string
	PathTemplate string
	RequiresAuth bool
	SendAPIKey   bool
	Binary       bool
	Params       []Param
	// Summary is a one-line human template; {param} placeholders are
	// expanded from the call arguments.
	Summary string
}

// handlerFunc overrides the generic invoke for tools with side effects
// (login, refresh) or special routing (forward).
type handlerFunc func(ctx context.Context, ep Endpoint, args arguments) (protocol.CallResult, error)

// Catalog owns the endpoint table and dispatches calls against it.
type Catalog struct {
	cfg       *config.Config
	sess      *session.Session
	client    *backend.Client
	log       *logrus.Entry
	endpoints map[string]Endpoint
	names     []string
	special   map[string]handlerFunc
}

// New builds the catalog over one backend client and session.
func New(cfg *config.Config, sess *session.Session, client *backend.Client, log *logrus.Entry) *Catalog {
	c := &Catalog{
		cfg:       cfg,
		sess:      sess,
		client:    client,
		log:       log,
		endpoints: make(map[string]Endpoint),
	}
	for _, ep := range endpoints() {
		c.endpoints[ep.Name] = ep
		c.names = append(c.names, ep.Name)
	}
	sort.Strings(c.names)

	c.special = map[string]handlerFunc{
		"login":           c.handleLogin,
		"refresh_token":   c.handleRefresh,
		"forward_request": c.handleForward,
	}
	return c
}

// Describe returns all tool descriptors in stable name order.
func (c *Catalog) Describe() []protocol.ToolDescriptor {
	out := make([]protocol.ToolDescriptor, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, describe(c.endpoints[name]))
	}
	return out
}

// Names returns the sorted tool names.
func (c *Catalog) Names() []string { return c.names }

// Call dispatches one tool invocation. Failures of any kind come back as
// an error-flagged result; Call never returns a transport-level error and
// never panics out, so one bad call cannot tear down the connection.
func (c *Catalog) Call(ctx context.Context, name string, raw json.RawMessage) (result protocol.CallResult) {
	callID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{"tool": name, "call_id": callID})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("tool call panicked")
			result = protocol.ErrorResult(fmt.Sprintf("internal error in tool %q: %v", name, r))
		}
	}()

	ep, ok := c.endpoints[name]
	if !ok {
		log.Warn("unknown tool")
		return protocol.ErrorResult(fmt.Sprintf(
			"unknown tool %q; available tools: %s", name, strings.Join(c.names, ", ")))
	}

	args, err := parseArguments(raw)
	if err != nil {
		return protocol.ErrorResult(err.Error())
	}
	if err := validate(ep, args); err != nil {
		return protocol.ErrorResult(err.Error())
	}
	if ep.RequiresAuth {
		if _, err := c.sess.RequireAccessToken(); err != nil {
			log.Warn("rejected unauthenticated call")
			return protocol.ErrorResult(err.Error())
		}
	}

	handler := c.invoke
	if h, ok := c.special[name]; ok {
		handler = h
	}
	res, err := handler(ctx, ep, args)
	if err != nil {
		log.WithError(err).Warn("tool call failed")
		return protocol.ErrorResult(err.Error())
	}
	log.Debug("tool call ok")
	return res
}

// describe renders an endpoint as its MCP tool descriptor.
func describe(ep Endpoint) protocol.ToolDescriptor {
	props := make(map[string]protocol.JSONSchema, len(ep.Params))
	var required []string
	for _, p := range ep.Params {
		props[p.Name] = protocol.JSONSchema{
			Type:        p.Type,
			Description: p.Description,
			Enum:        p.Enum,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return protocol.ToolDescriptor{
		Name:        ep.Name,
		Description: ep.Description,
		InputSchema: &protocol.JSONSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
	}
}
