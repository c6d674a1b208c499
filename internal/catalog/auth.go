package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brandvault/brandvault-mcp-server/internal/backend"
	"github.com/brandvault/brandvault-mcp-server/internal/protocol"
	"github.com/brandvault/brandvault-mcp-server/internal/session"
)

// tokenResponse is the tolerant shape of the upstream auth endpoints.
// Some deployments answer with "token", others with "accessToken".
type tokenResponse struct {
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (t tokenResponse) access() string {
	if t.Token != "" {
		return t.Token
	}
	return t.AccessToken
}

// handleLogin performs the login call and captures the returned tokens
// into the session.
func (c *Catalog) handleLogin(ctx context.Context, ep Endpoint, args arguments) (protocol.CallResult, error) {
	req := buildRequest(ep, args)
	req.SkipAuth = true
	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return protocol.CallResult{}, err
	}

	var tokens tokenResponse
	if err := json.Unmarshal(resp.Body, &tokens); err != nil || tokens.access() == "" {
		return protocol.CallResult{}, errors.New("login succeeded but the response carried no token")
	}
	c.sess.SetTokens(tokens.access(), tokens.RefreshToken)

	username, _ := args.str("username")
	summary := fmt.Sprintf("Login successful for '%s'.", username)
	if ttl, ok := tokenTTL(tokens.access()); ok {
		summary += fmt.Sprintf(" Token expires in %ds.", int(ttl.Seconds()))
	}

	result := jsonResult(ep, args, resp)
	result.Content[1].Text = summary
	return result, nil
}

// handleRefresh rotates the access token using the supplied or cached
// refresh token. It refuses before any I/O when neither exists.
func (c *Catalog) handleRefresh(ctx context.Context, ep Endpoint, args arguments) (protocol.CallResult, error) {
	refresh, ok := args.str("refreshToken")
	if !ok || refresh == "" {
		refresh, ok = c.sess.RefreshToken()
		if !ok {
			return protocol.CallResult{}, session.ErrNoRefreshToken
		}
	}

	req := backend.Request{
		Method:     ep.Method,
		Path:       ep.PathTemplate,
		Body:       map[string]string{"refreshToken": refresh},
		SendAPIKey: ep.SendAPIKey,
		SkipAuth:   true,
	}
	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return protocol.CallResult{}, err
	}

	var tokens tokenResponse
	if err := json.Unmarshal(resp.Body, &tokens); err != nil || tokens.access() == "" {
		return protocol.CallResult{}, errors.New("refresh succeeded but the response carried no token")
	}
	c.sess.SetTokens(tokens.access(), tokens.RefreshToken)

	summary := "Token refreshed."
	if ttl, ok := tokenTTL(tokens.access()); ok {
		summary += fmt.Sprintf(" New token expires in %ds.", int(ttl.Seconds()))
	}

	result := jsonResult(ep, args, resp)
	result.Content[1].Text = summary
	return result, nil
}

// tokenTTL reads the exp claim of a JWT without verifying the signature.
// Verification is the upstream's job; this only feeds the summary line.
func tokenTTL(token string) (time.Duration, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return 0, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	ttl := time.Until(exp.Time)
	if ttl < 0 {
		return 0, false
	}
	return ttl, true
}
