package types

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/comment-search-api/pkg/errors"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Fixed messages returned when the upstream comment API cannot be used
const (
	MessageFetchFailed = "Failed to fetch comments from the base API"
	MessageParseFailed = "Failed to parse JSON response from the base API"
)

// ErrorResponse is the body of every failed search request
type ErrorResponse struct {
	Error   string      `json:"error" example:"Failed to fetch comments from the base API"`
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// UpstreamStatus describes the configured upstream comment API
type UpstreamStatus struct {
	Status  string `json:"status" example:"configured"`
	BaseURL string `json:"base_url,omitempty" example:"https://app.ylytic.com/ylytic/test"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string         `json:"status" example:"ok"`
	Timestamp string         `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Upstream  UpstreamStatus `json:"upstream"`
}

// VersionResponse for the service identity endpoint
type VersionResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// MessageInternal is returned for errors that carry no client message
const MessageInternal = "Internal server error"

// RespondError writes err as an ErrorResponse with its HTTP status.
// Details are only exposed for client errors; server errors keep them for logs.
func RespondError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	resp := ErrorResponse{Error: MessageInternal}

	if appErr, ok := apperrors.As(err); ok {
		resp.Error = appErr.Message
		if status < http.StatusInternalServerError && len(appErr.Details) > 0 {
			resp.Details = appErr.Details
		}
	}

	c.JSON(status, resp)
}

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "request_id"
