package types

import (
	"context"
	"net/url"
	"time"

	"github.com/killallgit/comment-search-api/internal/models"
)

// CommentClient defines the interface for upstream comment API operations
type CommentClient interface {
	Search(ctx context.Context, query url.Values) ([]models.Comment, error)
	BaseURL() string
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	CommentClient CommentClient

	// UpstreamTimeout bounds a single upstream call made on behalf of a request
	UpstreamTimeout time.Duration

	// Version reported by the root endpoint
	Version string
}
