// Package backend issues HTTP calls against the upstream brand API. One
// logical call is exactly one physical request; there are no retries.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/brandvault/brandvault-mcp-server/internal/config"
	"github.com/brandvault/brandvault-mcp-server/internal/session"
)

// Request describes a single upstream call. Path must already be expanded
// (no template placeholders left).
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
	// Binary requests the raw payload rather than JSON.
	Binary bool
	// SendAPIKey attaches the configured x-api-key plus Origin/Referer.
	SendAPIKey bool
	// SkipAuth suppresses the automatic Authorization header even when a
	// session token is cached.
	SkipAuth bool
}

// Response carries the upstream payload. ContentType and
// ContentDisposition are only meaningful for Binary requests.
type Response struct {
	Status             int
	Body               []byte
	ContentType        string
	ContentDisposition string
}

// Client performs the upstream calls for every tool.
type Client struct {
	cfg  *config.Config
	sess *session.Session
	http *http.Client
	log  *logrus.Entry
}

// New builds a client bound to one config and one session.
func New(cfg *config.Config, sess *session.Session, log *logrus.Entry) *Client {
	return &Client{
		cfg:  cfg,
		sess: sess,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// Do issues the request and classifies any failure into the backend error
// taxonomy. A nil error always means a 2xx response.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	target := c.cfg.BaseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		raw, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &RequestError{Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if r.Binary {
		req.Header.Set("Accept", "*/*")
	} else {
		req.Header.Set("Accept", "application/json")
	}
	if r.SendAPIKey {
		req.Header.Set("x-api-key", c.cfg.APIKey)
		if c.cfg.Domain != "" {
			req.Header.Set("Origin", "https://"+c.cfg.Domain)
			req.Header.Set("Referer", "https://"+c.cfg.Domain+"/")
		}
	}
	if !r.SkipAuth {
		if tok, ok := c.sess.AccessToken(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	// Caller-supplied headers take precedence over everything above.
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	c.log.WithFields(logrus.Fields{"method": r.Method, "path": r.Path}).Debug("upstream call")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.classifyTransport(err, req.URL)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classifyTransport(err, req.URL)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    extractMessage(payload),
		}
	}

	return &Response{
		Status:             resp.StatusCode,
		Body:               payload,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}, nil
}

// classifyTransport splits "no response" failures into timeout vs network.
func (c *Client) classifyTransport(err error, u *url.URL) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TimeoutError{Duration: c.cfg.Timeout}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Duration: c.cfg.Timeout}
	}
	return &NetworkError{Host: u.Scheme + "://" + u.Host, Path: u.Path, Err: err}
}

// extractMessage pulls a machine message field out of an error body.
func extractMessage(body []byte) string {
	var probe map[string]any
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		if s, ok := probe[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
