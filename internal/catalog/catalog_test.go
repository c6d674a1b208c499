package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brandvault/brandvault-mcp-server/internal/backend"
	"github.com/brandvault/brandvault-mcp-server/internal/config"
	"github.com/brandvault/brandvault-mcp-server/internal/logging"
	"github.com/brandvault/brandvault-mcp-server/internal/session"
)

func newTestCatalog(t *testing.T, baseURL string) *Catalog {
	t.Helper()
	cfg := &config.Config{
		BaseURL: baseURL,
		APIKey:  "test-api-key",
		Domain:  "brandvault.example",
		Timeout: 2 * time.Second,
	}
	sess := session.New()
	client := backend.New(cfg, sess, logging.Discard())
	return New(cfg, sess, client, logging.Discard())
}

func mustArgs(t *testing.T, args map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	return raw
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u",
		"exp": time.Now().Add(ttl).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestAuthRequiredToolsFailFastWithZeroCalls(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	for _, name := range []string{"get_user_profile", "list_api_keys", "get_dashboard_summary", "extract_brand_data"} {
		args := map[string]any{}
		if name == "extract_brand_data" {
			args["url"] = "https://acme.example"
		}
		res := c.Call(context.Background(), name, mustArgs(t, args))
		if !res.IsError {
			t.Fatalf("%s: expected error result while anonymous", name)
		}
		if !strings.Contains(res.Content[0].Text, "not authenticated") {
			t.Fatalf("%s: message should identify missing auth: %s", name, res.Content[0].Text)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("expected zero outbound calls, got %d", n)
	}
}

func TestUnknownToolEnumeratesKnownNames(t *testing.T) {
	c := newTestCatalog(t, "http://unused.invalid")
	res := c.Call(context.Background(), "does_not_exist", nil)
	if !res.IsError {
		t.Fatal("expected error result")
	}
	msg := res.Content[0].Text
	for _, want := range []string{"unknown tool", "login", "serve_brand_asset", "forward_request"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message should contain %q: %s", want, msg)
		}
	}
}

func TestLoginCapturesTokensAndPropagatesBearer(t *testing.T) {
	access := ""
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "u" || body["password"] != "p" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": access, "refreshToken": "rt1"})
	})
	mux.HandleFunc("GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"email":"u@example.com"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	access = signedToken(t, time.Hour)
	c := newTestCatalog(t, ts.URL)

	res := c.Call(context.Background(), "login", mustArgs(t, map[string]any{"username": "u", "password": "p"}))
	if res.IsError {
		t.Fatalf("login failed: %s", res.Content[0].Text)
	}
	summary := res.Content[1].Text
	if !strings.Contains(summary, "Login successful for 'u'") {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if !strings.Contains(summary, "expires in") {
		t.Fatalf("summary should report token expiry: %s", summary)
	}

	res = c.Call(context.Background(), "get_user_profile", nil)
	if res.IsError {
		t.Fatalf("profile call failed: %s", res.Content[0].Text)
	}
	if gotAuth != "Bearer "+access {
		t.Fatalf("bearer not propagated: %s", gotAuth)
	}
}

func TestRefreshWithoutAnyTokenFailsWithZeroCalls(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	res := c.Call(context.Background(), "refresh_token", nil)
	if !res.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(res.Content[0].Text, "no refresh token") {
		t.Fatalf("message should identify the missing refresh token: %s", res.Content[0].Text)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("expected zero outbound calls, got %d", n)
	}
}

func TestRefreshRotatesTokenUsedByLaterCalls(t *testing.T) {
	var gotAuth, gotRefresh string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotRefresh = body["refreshToken"]
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "at-rotated", "refreshToken": "rt-rotated"})
	})
	mux.HandleFunc("GET /api/users/userId/1", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"1"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	c.sess.SetTokens("at-stale", "")

	res := c.Call(context.Background(), "refresh_token", mustArgs(t, map[string]any{"refreshToken": "rt123"}))
	if res.IsError {
		t.Fatalf("refresh failed: %s", res.Content[0].Text)
	}
	if gotRefresh != "rt123" {
		t.Fatalf("explicit refresh token not forwarded: %s", gotRefresh)
	}

	res = c.Call(context.Background(), "get_user_by_id", mustArgs(t, map[string]any{"id": "1"}))
	if res.IsError {
		t.Fatalf("user call failed: %s", res.Content[0].Text)
	}
	if gotAuth != "Bearer at-rotated" {
		t.Fatalf("expected rotated token, got %s", gotAuth)
	}
	if rt, _ := c.sess.RefreshToken(); rt != "rt-rotated" {
		t.Fatalf("cached refresh token not rotated: %s", rt)
	}
}

func TestBrandNotFoundRendersStatusAndUpstreamMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Brand not found"}`))
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	res := c.Call(context.Background(), "get_brand_details_by_id", mustArgs(t, map[string]any{"id": "missing"}))
	if !res.IsError {
		t.Fatal("expected error result")
	}
	msg := res.Content[0].Text
	if !strings.Contains(msg, "404") || !strings.Contains(msg, "Brand not found") {
		t.Fatalf("message should carry status and upstream message: %s", msg)
	}
}

func TestNetworkAndTimeoutMessagesAreDistinct(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	c := newTestCatalog(t, deadURL)
	res := c.Call(context.Background(), "get_brand_details_by_id", mustArgs(t, map[string]any{"id": "x"}))
	if !res.IsError || !strings.Contains(res.Content[0].Text, "could not reach") {
		t.Fatalf("expected a network error message: %+v", res)
	}

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer slow.Close()

	cfg := &config.Config{BaseURL: slow.URL, APIKey: "k", Timeout: 50 * time.Millisecond}
	sess := session.New()
	ct := New(cfg, sess, backend.New(cfg, sess, logging.Discard()), logging.Discard())
	res = ct.Call(context.Background(), "get_brand_details_by_id", mustArgs(t, map[string]any{"id": "x"}))
	if !res.IsError || !strings.Contains(res.Content[0].Text, "timeout") {
		t.Fatalf("expected a timeout error message: %+v", res)
	}
	if strings.Contains(res.Content[0].Text, "could not reach") {
		t.Fatalf("timeout must be distinguishable from network failure: %s", res.Content[0].Text)
	}
}

func TestServeBrandAssetThreeBlockShape(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x42}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/brands/assets/x" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `inline; filename="x.png"`)
		_, _ = w.Write(payload)
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	res := c.Call(context.Background(), "serve_brand_asset", mustArgs(t, map[string]any{"assetId": "x"}))
	if res.IsError {
		t.Fatalf("asset call failed: %s", res.Content[0].Text)
	}
	if len(res.Content) != 3 {
		t.Fatalf("expected 3 content blocks, got %d", len(res.Content))
	}

	var meta map[string]any
	if err := json.Unmarshal([]byte(res.Content[0].Text), &meta); err != nil {
		t.Fatalf("metadata block is not JSON: %v", err)
	}
	if meta["contentType"] != "image/png" {
		t.Fatalf("metadata missing content type: %v", meta)
	}
	if meta["assetId"] != "x" {
		t.Fatalf("metadata should echo the queried id: %v", meta)
	}
	if _, hasPayload := meta["data"]; hasPayload {
		t.Fatal("metadata block must not carry the payload")
	}

	if !strings.Contains(res.Content[1].Text, "image/png") {
		t.Fatalf("summary should name the content type: %s", res.Content[1].Text)
	}

	blob := res.Content[2]
	if blob.Type != "blob" || blob.MimeType != "image/png" {
		t.Fatalf("unexpected blob block: %+v", blob)
	}
	decoded, err := base64.StdEncoding.DecodeString(blob.Data)
	if err != nil {
		t.Fatalf("blob is not valid base64: %v", err)
	}
	if string(decoded) != string(payload) {
		t.Fatal("decoded blob does not match the upstream bytes")
	}
}

func TestCategoryZeroCountsAsPresent(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	res := c.Call(context.Background(), "get_brands_by_category", mustArgs(t, map[string]any{"categoryId": 0}))
	if res.IsError {
		t.Fatalf("categoryId 0 must not be rejected as missing: %s", res.Content[0].Text)
	}
	if gotPath != "/api/brands/category/0" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}

func TestMissingRequiredArgumentFailsBeforeIO(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	res := c.Call(context.Background(), "get_brand_details_by_id", nil)
	if !res.IsError || !strings.Contains(res.Content[0].Text, `required field "id"`) {
		t.Fatalf("expected missing-field error: %+v", res)
	}

	res = c.Call(context.Background(), "create_api_key", mustArgs(t, map[string]any{
		"name": "ci", "rateLimitTier": "mega",
	}))
	if !res.IsError || !strings.Contains(res.Content[0].Text, "must be one of") {
		t.Fatalf("expected enum error: %+v", res)
	}

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("validation failures must not reach the network, got %d calls", n)
	}
}

func TestForwardPublicAuthBehaviour(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)

	// Protected forward while anonymous refuses before I/O.
	res := c.Call(context.Background(), "forward_request", mustArgs(t, map[string]any{"path": "/x"}))
	if !res.IsError || !strings.Contains(res.Content[0].Text, "not authenticated") {
		t.Fatalf("expected auth refusal: %+v", res)
	}

	c.sess.SetTokens("at1", "")

	// Public forward drops the bearer by default.
	res = c.Call(context.Background(), "forward_request", mustArgs(t, map[string]any{"path": "/x", "isPublic": true}))
	if res.IsError {
		t.Fatalf("public forward failed: %s", res.Content[0].Text)
	}
	if gotAuth != "" {
		t.Fatalf("public forward should not carry the bearer by default: %s", gotAuth)
	}

	// Unless the deployment opts in.
	c.cfg.ForwardPublicAuth = true
	res = c.Call(context.Background(), "forward_request", mustArgs(t, map[string]any{"path": "/x", "isPublic": true}))
	if res.IsError {
		t.Fatalf("public forward failed: %s", res.Content[0].Text)
	}
	if gotAuth != "Bearer at1" {
		t.Fatalf("opt-in public forward should carry the bearer: %s", gotAuth)
	}
}

func TestSuccessEnvelopeShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"b1","name":"Acme"}`))
	}))
	defer ts.Close()

	c := newTestCatalog(t, ts.URL)
	res := c.Call(context.Background(), "get_brand_details_by_id", mustArgs(t, map[string]any{"id": "b1"}))
	if res.IsError {
		t.Fatalf("call failed: %s", res.Content[0].Text)
	}
	if len(res.Content) != 2 {
		t.Fatalf("expected raw + summary blocks, got %d", len(res.Content))
	}

	var envelope struct {
		Success   bool            `json:"success"`
		ID        string          `json:"id"`
		Timestamp string          `json:"timestamp"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal([]byte(res.Content[0].Text), &envelope); err != nil {
		t.Fatalf("raw block is not JSON: %v", err)
	}
	if !envelope.Success || envelope.ID != "b1" || envelope.Timestamp == "" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if res.Content[1].Text != "Retrieved brand b1." {
		t.Fatalf("unexpected summary: %s", res.Content[1].Text)
	}
}
