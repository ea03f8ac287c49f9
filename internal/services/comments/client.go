package comments

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/killallgit/comment-search-api/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL   = "https://app.ylytic.com/ylytic/test"
	defaultUserAgent = "CommentSearchAPI/1.0"
	defaultTimeout   = 5 * time.Second

	// maxBodyBytes caps how much of an upstream response is read
	maxBodyBytes = 32 << 20
)

// Client handles communication with the upstream comment API
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Config holds configuration for the comment API client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the default client (for testing)
	HTTPClient *http.Client
}

// NewClient creates a new comment API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// BaseURL returns the upstream endpoint the client queries
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search fetches comments from the upstream API, forwarding query as URL parameters
func (c *Client) Search(ctx context.Context, query url.Values) ([]models.Comment, error) {
	endpoint, err := c.buildURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: building request url: %w", ErrUpstreamUnavailable, err)
	}

	// Create a clean context that inherits deadlines but not values/metadata,
	// so the call is bounded but not tied to the inbound request's values
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	log := logrus.WithFields(logrus.Fields{
		"endpoint": c.baseURL,
		"params":   len(query),
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Comment API request failed")
		return nil, fmt.Errorf("%w: executing request: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if resp.StatusCode != http.StatusOK {
		log.Error("Comment API returned unexpected status")
		return nil, APIError{StatusCode: resp.StatusCode, Endpoint: c.baseURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.WithError(err).Error("Reading comment API response failed")
		return nil, fmt.Errorf("%w: reading response: %w", ErrUpstreamUnavailable, err)
	}

	comments, err := decodeComments(body)
	if err != nil {
		log.WithError(err).Error("Comment API returned a malformed payload")
		return nil, err
	}

	log.WithField("comments", len(comments)).Debug("Fetched comments")
	return comments, nil
}

// buildURL merges the query into any parameters already present on the base URL
func (c *Client) buildURL(query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	params := u.Query()
	for key, values := range query {
		params[key] = values
	}
	u.RawQuery = params.Encode()

	return u.String(), nil
}
