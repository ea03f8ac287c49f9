package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/comment-search-api/api/health"
	"github.com/killallgit/comment-search-api/api/search"
	"github.com/killallgit/comment-search-api/api/types"
	"github.com/killallgit/comment-search-api/api/version"
	_ "github.com/killallgit/comment-search-api/docs/swagger"
	apperrors "github.com/killallgit/comment-search-api/pkg/errors"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// The search endpoint lives at the root and under /api/v1
	search.RegisterRoutes(engine, deps)
	search.RegisterRoutes(engine.Group("/api/v1"), deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := apperrors.New(apperrors.ErrCodeNotFound, "The requested endpoint was not found")
		c.JSON(err.GetHTTPCode(), gin.H{
			"status":  types.StatusError,
			"message": err.Message,
			"path":    c.Request.URL.Path,
		})
	}
}
