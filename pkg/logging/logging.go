package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/killallgit/comment-search-api/pkg/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the logrus standard logger from the logging config.
// It returns the writer logs are sent to so callers can close file outputs.
func Setup(cfg config.LoggingConfig) (io.Writer, error) {
	return Configure(logrus.StandardLogger(), cfg)
}

// Configure applies the logging config to the given logger
func Configure(logger *logrus.Logger, cfg config.LoggingConfig) (io.Writer, error) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logger.SetLevel(lvl)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	out, err := writerFor(cfg)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(out)

	return out, nil
}

func writerFor(cfg config.LoggingConfig) (io.Writer, error) {
	switch cfg.Output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("logging.file_path is required for file output")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		return &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported log output %q", cfg.Output)
	}
}

// Close releases a writer returned by Setup. Standard streams are left open.
func Close(w io.Writer) error {
	if lj, ok := w.(*lumberjack.Logger); ok {
		return lj.Close()
	}
	return nil
}
