package comments

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable indicates the upstream API could not be reached
	// or answered with a non-200 status
	ErrUpstreamUnavailable = errors.New("upstream comment api unavailable")

	// ErrMalformedResponse indicates the upstream answered 200 with a body
	// that is not a valid comment payload
	ErrMalformedResponse = errors.New("malformed response from upstream comment api")
)

// APIError represents a non-200 answer from the upstream API
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e APIError) Error() string {
	return fmt.Sprintf("API error from %s (status %d)", e.Endpoint, e.StatusCode)
}

func (e APIError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// DecodeError describes why an upstream payload was rejected
type DecodeError struct {
	Path   string
	Reason string
}

func (e DecodeError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e DecodeError) Is(target error) bool {
	return target == ErrMalformedResponse
}
