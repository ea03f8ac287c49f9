package search

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/comment-search-api/api/types"
	"github.com/killallgit/comment-search-api/internal/models"
	"github.com/killallgit/comment-search-api/internal/services/comments"
	apperrors "github.com/killallgit/comment-search-api/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultUpstreamTimeout = 5 * time.Second

	// upstreamService names the comment API in error details and logs
	upstreamService = "comment-api"
)

// Get handles comment search requests
// @Summary      Search comments
// @Description  Fetch comments from the upstream comment API and return those matching every supplied filter. All filters are optional; absent or empty filters place no constraint.
// @Tags         search
// @Produce      json
// @Param        search_author  query  string  false  "Substring of the comment author (case-sensitive)"
// @Param        at_from        query  string  false  "Earliest comment date, DD-MM-YYYY"
// @Param        at_to          query  string  false  "Latest comment date, DD-MM-YYYY"
// @Param        like_from      query  int     false  "Minimum like count"
// @Param        like_to        query  int     false  "Maximum like count"
// @Param        reply_from     query  int     false  "Minimum reply count"
// @Param        reply_to       query  int     false  "Maximum reply count"
// @Param        search_text    query  string  false  "Substring of the comment text (case-sensitive)"
// @Success      200 {array}   models.Comment       "Matching comments in upstream order"
// @Failure      400 {object}  types.ErrorResponse  "Bad request - malformed date or integer parameter"
// @Failure      500 {object}  types.ErrorResponse  "Upstream comment API failed or returned malformed JSON"
// @Router       /search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logrus.WithField("request_id", c.GetString(types.RequestIDKey))

		filter, err := models.ParseSearchFilter(c.Request.URL.Query())
		if err != nil {
			if _, ok := apperrors.As(err); !ok {
				err = apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "Invalid search parameters")
			}
			log.WithError(err).Debug("Rejected search parameters")
			types.RespondError(c, err)
			return
		}

		if deps == nil || deps.CommentClient == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error: "Search service not available",
			})
			return
		}

		timeout := deps.UpstreamTimeout
		if timeout <= 0 {
			timeout = defaultUpstreamTimeout
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		results, err := deps.CommentClient.Search(ctx, filter.UpstreamQuery())
		if err != nil {
			appErr := upstreamError(err)
			entry := log.WithError(err).WithFields(logrus.Fields{
				"code":    apperrors.GetCode(appErr),
				"details": appErr.Details,
			})
			if apperrors.Is(appErr, apperrors.ErrCodeAPITimeout) {
				entry.Warn("Comment API timed out")
			} else {
				entry.Warn("Comment search failed upstream")
			}
			types.RespondError(c, appErr)
			return
		}

		c.JSON(http.StatusOK, filter.Apply(results))
	}
}

// upstreamError maps a comment client failure to the response sent to the caller.
// Every failure kind is reported as 500 with a fixed message; the code and
// details tell them apart in logs.
func upstreamError(err error) *apperrors.AppError {
	if errors.Is(err, comments.ErrMalformedResponse) {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstreamMalformed, types.MessageParseFailed).
			WithDetail("service", upstreamService).
			WithHTTPCode(http.StatusInternalServerError)
	}
	if isTimeout(err) {
		return apperrors.TimeoutError(upstreamService, types.MessageFetchFailed, err).
			WithHTTPCode(http.StatusInternalServerError)
	}
	appErr := apperrors.ExternalServiceError(upstreamService, types.MessageFetchFailed, err)
	var apiErr comments.APIError
	if errors.As(err, &apiErr) {
		appErr = appErr.WithDetail("upstream_status", apiErr.StatusCode)
	}
	return appErr.WithHTTPCode(http.StatusInternalServerError)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
