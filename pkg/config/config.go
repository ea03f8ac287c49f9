package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/killallgit/comment-search-api/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultConfigPath is where Init looks for the settings file
const DefaultConfigPath = "./config/settings.yaml"

// EnvPrefix is prepended to environment variable overrides (COMMENTS_SERVER_PORT etc.)
const EnvPrefix = "COMMENTS"

// Init initializes the configuration system from the default settings file.
// This should be called once at application startup
func Init() error {
	return InitWithFile(DefaultConfigPath)
}

// InitWithFile initializes the configuration from the given settings file.
// A missing file is not an error; defaults and environment variables apply.
func InitWithFile(path string) error {
	// Set default values
	setDefaults()

	// Set up environment variable reading for overrides
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
		logrus.WithField("path", configPath).Debug("Config file not found, using defaults")
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid server port: %d", port))
	}

	if err := validateBaseURL(viper.GetString("upstream.base_url")); err != nil {
		return err
	}

	if viper.GetDuration("upstream.timeout") <= 0 {
		return apperrors.ConfigError("upstream.timeout", "must be positive")
	}

	if err := validateLogging(viper.GetString("logging.level"), viper.GetString("logging.output")); err != nil {
		return err
	}

	// Auto-correct a missing user agent
	if viper.GetString("upstream.user_agent") == "" {
		viper.Set("upstream.user_agent", "CommentSearchAPI/1.0")
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return apperrors.ConfigError("upstream.base_url", "is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return apperrors.ConfigError("upstream.base_url", err.Error())
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.ConfigError("upstream.base_url", "must be an absolute http(s) URL")
	}
	return nil
}

func validateLogging(level, output string) error {
	if _, err := logrus.ParseLevel(level); err != nil {
		return apperrors.ConfigError("logging.level", err.Error())
	}
	switch output {
	case "stdout", "stderr", "file":
	default:
		return apperrors.ConfigError("logging.output", fmt.Sprintf("unsupported output %q", output))
	}
	return nil
}

// Validate validates a Config struct after flag overrides are applied
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid server port: %d", c.Server.Port))
	}

	if err := validateBaseURL(c.Upstream.BaseURL); err != nil {
		return err
	}

	if c.Upstream.Timeout <= 0 {
		return apperrors.ConfigError("upstream.timeout", "must be positive")
	}

	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "CommentSearchAPI/1.0"
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.idle_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Upstream comment API defaults
	viper.SetDefault("upstream.base_url", "https://app.ylytic.com/ylytic/test")
	viper.SetDefault("upstream.timeout", 5*time.Second)
	viper.SetDefault("upstream.user_agent", "CommentSearchAPI/1.0")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.file_path", "./logs/app.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 10)
	viper.SetDefault("logging.max_age", 30)
	viper.SetDefault("logging.compress", true)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)
}
