package backend

import (
	"fmt"
	"time"
)

// The failure kind is decided once, here, when the HTTP call is made.
// Handlers never re-derive it by probing error shapes.

// UpstreamError means the server answered with a non-2xx status.
type UpstreamError struct {
	Status     int
	StatusText string
	// Message is the machine message field from the response body, when
	// the upstream provided one.
	Message string
}

func (e *UpstreamError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.StatusText
	}
	return fmt.Sprintf("upstream error %d: %s", e.Status, detail)
}

// NetworkError means no response was received at all (DNS, connection
// refused, reset mid-flight).
type NetworkError struct {
	Host string
	Path string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: could not reach %s%s: %v", e.Host, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError means the configured per-call duration elapsed without a
// complete response. Kept distinct from NetworkError so callers can tell
// "slow" from "unreachable".
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: no response within %s", e.Duration)
}

// RequestError means the request could not be built or sent for a local
// reason (bad URL, unmarshalable body).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request error: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
