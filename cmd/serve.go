package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/comment-search-api/api"
	"github.com/killallgit/comment-search-api/api/types"
	"github.com/killallgit/comment-search-api/internal/services/comments"
	"github.com/killallgit/comment-search-api/pkg/config"
	"github.com/killallgit/comment-search-api/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Comment Search API server",
	Long: `Start the Comment Search API server with the configured settings.

The server answers GET /search by querying the upstream comment API
and filtering the comments it returns.

Example:
  comment-search serve
  comment-search serve --port 9090
  comment-search serve --host 0.0.0.0 --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Flags override config values
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out, err := logging.Setup(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logging.Close(out)
	gin.DefaultWriter = out

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg)
}

// serve runs the API server until ctx is done, then shuts it down gracefully
func serve(ctx context.Context, cfg *config.Config) error {
	client := comments.NewClient(comments.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		UserAgent: cfg.Upstream.UserAgent,
		Timeout:   cfg.Upstream.Timeout,
	})

	server := api.NewServer(cfg, &types.Dependencies{
		CommentClient:   client,
		UpstreamTimeout: cfg.Upstream.Timeout,
		Version:         Version,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
		close(serverErr)
	}()

	logrus.WithFields(logrus.Fields{
		"addr":        server.Addr(),
		"environment": cfg.Environment,
		"upstream":    client.BaseURL(),
		"version":     Version,
	}).Info("Comment Search API server started")

	var runErr error
	select {
	case <-ctx.Done():
		logrus.Info("Shutting down server...")
	case err, ok := <-serverErr:
		if ok {
			runErr = err
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		return err
	}

	if runErr != nil {
		return runErr
	}

	logrus.Info("Server gracefully stopped")
	return nil
}
