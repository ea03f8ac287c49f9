package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/killallgit/comment-search-api/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		wantErr   bool
		wantLevel logrus.Level
		check     func(t *testing.T, logger *logrus.Logger)
	}{
		{
			name:      "defaults to info text on stdout",
			cfg:       config.LoggingConfig{},
			wantLevel: logrus.InfoLevel,
			check: func(t *testing.T, logger *logrus.Logger) {
				assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
				assert.Equal(t, os.Stdout, logger.Out)
			},
		},
		{
			name:      "json debug on stderr",
			cfg:       config.LoggingConfig{Level: "debug", Format: "json", Output: "stderr"},
			wantLevel: logrus.DebugLevel,
			check: func(t *testing.T, logger *logrus.Logger) {
				assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
				assert.Equal(t, os.Stderr, logger.Out)
			},
		},
		{
			name:    "invalid level",
			cfg:     config.LoggingConfig{Level: "loud"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			cfg:     config.LoggingConfig{Format: "xml"},
			wantErr: true,
		},
		{
			name:    "file output without path",
			cfg:     config.LoggingConfig{Output: "file"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logrus.New()
			_, err := Configure(logger, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			if tt.check != nil {
				tt.check(t, logger)
			}
		})
	}
}

func TestConfigureFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger := logrus.New()

	out, err := Configure(logger, config.LoggingConfig{
		Level:      "info",
		Format:     "json",
		Output:     "file",
		FilePath:   path,
		MaxSize:    1,
		MaxBackups: 2,
	})
	require.NoError(t, err)

	_, ok := out.(*lumberjack.Logger)
	require.True(t, ok)

	logger.WithField("component", "test").Info("hello")
	require.NoError(t, Close(out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestCloseLeavesStandardStreamsOpen(t *testing.T) {
	for _, w := range []*os.File{os.Stdout, os.Stderr} {
		require.NoError(t, Close(w))
		_, err := w.Stat()
		assert.NoError(t, err)
	}
}
