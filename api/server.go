package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/comment-search-api/api/types"
	"github.com/killallgit/comment-search-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	security   config.SecurityConfig

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server from the server and security settings
func NewServer(cfg *config.Config, deps *types.Dependencies) *Server {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	engine := gin.New()

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if deps.UpstreamTimeout <= 0 {
		deps.UpstreamTimeout = cfg.Upstream.Timeout
	}

	return &Server{
		engine:       engine,
		security:     cfg.Security,
		dependencies: deps,
		httpServer: &http.Server{
			Addr:           net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:        engine,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()

	if err := RegisterRoutes(s.engine, s.dependencies); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}

	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	if s.security.EnableRequestID {
		s.engine.Use(RequestID())
	}
	s.engine.Use(Logger())
	s.engine.Use(Recovery())

	if s.security.EnableCORS {
		s.engine.Use(CORS(s.security.CORSOrigins))
	}
}

// Start serves until Shutdown is called.
// http.ErrServerClosed is returned after a graceful shutdown.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on an existing listener
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
