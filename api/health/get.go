package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/comment-search-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service liveness and the configured upstream comment API
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Upstream:  getUpstreamStatus(deps),
		})
	}
}

// getUpstreamStatus reports whether an upstream client is wired.
// The upstream is not contacted; a health check never costs an upstream call.
func getUpstreamStatus(deps *types.Dependencies) types.UpstreamStatus {
	if deps == nil || deps.CommentClient == nil {
		return types.UpstreamStatus{Status: "not configured"}
	}

	return types.UpstreamStatus{
		Status:  "configured",
		BaseURL: deps.CommentClient.BaseURL(),
	}
}
