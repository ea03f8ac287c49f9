package version

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/comment-search-api/api/types"
)

// RegisterRoutes registers version routes
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.GET("/", Get(deps))
}
