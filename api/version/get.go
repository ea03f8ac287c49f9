package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/comment-search-api/api/types"
)

const (
	serviceName        = "Comment Search API"
	serviceDescription = "Search and filter comments from the upstream comment API"
	defaultVersion     = "dev"
)

// Get handles version requests
// @Summary      Service information
// @Description  Name, version and status of the service
// @Tags         version
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	v := defaultVersion
	if deps != nil && deps.Version != "" {
		v = deps.Version
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:        serviceName,
			Version:     v,
			Description: serviceDescription,
			Status:      "running",
		})
	}
}
