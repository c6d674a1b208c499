// Package session holds the authentication tokens cached from a login or
// refresh call. The session is an explicit object owned by the server and
// threaded into every authenticated call rather than package-global state,
// so multi-connection deployments can key one per connection.
package session

import (
	"errors"
	"sync"
)

// ErrNotAuthenticated is returned when an authenticated tool is invoked
// before a successful login. Callers must refuse before any I/O.
var ErrNotAuthenticated = errors.New("not authenticated: call the login tool first")

// ErrNoRefreshToken is returned when refresh is attempted with neither a
// cached refresh token nor an explicit one.
var ErrNoRefreshToken = errors.New("no refresh token available: pass refreshToken or login first")

// Session caches the current access and refresh tokens. It has one writer
// path (successful login/refresh) and many readers; the mutex makes the
// concurrent HTTP transport safe.
type Session struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// New returns an empty, anonymous session.
func New() *Session { return &Session{} }

// SetTokens overwrites whichever of the two tokens is non-empty, leaving
// the other untouched. A refresh response that omits the refresh token
// therefore keeps the previous one.
func (s *Session) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if access != "" {
		s.accessToken = access
	}
	if refresh != "" {
		s.refreshToken = refresh
	}
}

// AccessToken returns the cached access token, false when anonymous.
func (s *Session) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.accessToken != ""
}

// RefreshToken returns the cached refresh token, false when unset.
func (s *Session) RefreshToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken, s.refreshToken != ""
}

// RequireAccessToken returns the access token or ErrNotAuthenticated.
func (s *Session) RequireAccessToken() (string, error) {
	if tok, ok := s.AccessToken(); ok {
		return tok, nil
	}
	return "", ErrNotAuthenticated
}
