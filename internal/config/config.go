// Package config loads the adapter's environment configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names.
const (
	EnvBaseURL           = "BRANDAPI_BASE_URL"
	EnvAPIKey            = "BRANDAPI_KEY"
	EnvDomain            = "BRANDAPI_DOMAIN"
	EnvTimeoutMS         = "BRANDAPI_TIMEOUT_MS"
	EnvForwardPublicAuth = "FORWARD_PUBLIC_AUTH"
)

const defaultTimeout = 15 * time.Second

// ConfigurationError is fatal: the process must not start without a
// usable backend target.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is required", e.Missing)
}

// Config holds everything the backend client and the forward tool need.
type Config struct {
	// BaseURL is the upstream REST API root, without a trailing slash.
	BaseURL string
	// APIKey is sent as x-api-key on endpoints that opt in.
	APIKey string
	// Domain is used for the Origin/Referer pair alongside the API key.
	Domain string
	// Timeout bounds each upstream call.
	Timeout time.Duration
	// ForwardPublicAuth controls whether a cached bearer token is still
	// attached when forward_request is invoked with isPublic. The two
	// upstream variants disagreed here, so it stays a knob.
	ForwardPublicAuth bool
}

// Load reads configuration from the environment. Absence of the base URL
// or the API key is a ConfigurationError.
func Load() (*Config, error) {
	base := strings.TrimSpace(os.Getenv(EnvBaseURL))
	if base == "" {
		return nil, &ConfigurationError{Missing: EnvBaseURL}
	}
	key := strings.TrimSpace(os.Getenv(EnvAPIKey))
	if key == "" {
		return nil, &ConfigurationError{Missing: EnvAPIKey}
	}

	cfg := &Config{
		BaseURL: strings.TrimSuffix(base, "/"),
		APIKey:  key,
		Domain:  strings.TrimSpace(os.Getenv(EnvDomain)),
		Timeout: defaultTimeout,
	}

	if v := strings.TrimSpace(os.Getenv(EnvTimeoutMS)); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, &ConfigurationError{Missing: EnvTimeoutMS + " (positive integer)"}
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}
	if v := strings.TrimSpace(os.Getenv(EnvForwardPublicAuth)); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			cfg.ForwardPublicAuth = b
		}
	}
	return cfg, nil
}
