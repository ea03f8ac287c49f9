package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "root command without args shows help",
			args:           []string{},
			wantErr:        false,
			expectedOutput: "Comment Search API",
		},
		{
			name:           "root command with --help",
			args:           []string{"--help"},
			wantErr:        false,
			expectedOutput: "Available Commands:",
		},
		{
			name:           "root command with invalid flag",
			args:           []string{"--invalid-flag"},
			wantErr:        true,
			expectedOutput: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeRoot(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectedOutput != "" {
				assert.True(t, strings.Contains(output, tt.expectedOutput), "output: %q", output)
			}
		})
	}
}

func TestLogFlags(t *testing.T) {
	cmd := NewRootCmd()

	logFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logFlag, "Expected log-level flag to be registered")
	assert.Equal(t, "info", logFlag.DefValue)

	jsonFlag := cmd.PersistentFlags().Lookup("json-logs")
	require.NotNil(t, jsonFlag, "Expected json-logs flag to be registered")

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "Expected config flag to be registered")
	assert.Equal(t, "./config/settings.yaml", configFlag.DefValue)
}

func newConfigCommand(path string) *cobra.Command {
	c := &cobra.Command{}
	c.Flags().String("config", path, "")
	c.Flags().String("log-level", "info", "")
	c.Flags().Bool("json-logs", false, "")
	return c
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9191
upstream:
  base_url: http://comments.internal/api
logging:
  level: warn
`), 0o644))

	tests := []struct {
		name  string
		flags map[string]string
		check func(t *testing.T, level, format string)
	}{
		{
			name: "settings file values",
			check: func(t *testing.T, level, format string) {
				assert.Equal(t, "warn", level)
				assert.Equal(t, "text", format)
			},
		},
		{
			name:  "log flags override settings",
			flags: map[string]string{"log-level": "debug", "json-logs": "true"},
			check: func(t *testing.T, level, format string) {
				assert.Equal(t, "debug", level)
				assert.Equal(t, "json", format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			c := newConfigCommand(path)
			for k, v := range tt.flags {
				require.NoError(t, c.Flags().Set(k, v))
			}

			cfg, err := loadConfig(c)
			require.NoError(t, err)

			assert.Equal(t, 9191, cfg.Server.Port)
			assert.Equal(t, "http://comments.internal/api", cfg.Upstream.BaseURL)
			tt.check(t, cfg.Logging.Level, cfg.Logging.Format)
		})
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upstream:\n  base_url: /relative\n"), 0o644))

	_, err := loadConfig(newConfigCommand(path))
	assert.Error(t, err)
}
