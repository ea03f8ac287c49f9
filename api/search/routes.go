package search

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/comment-search-api/api/types"
)

// RegisterRoutes registers search routes
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	// GET /search (and the versioned alias registered by the caller)
	router.GET("/search", Get(deps))
}
