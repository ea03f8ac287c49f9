package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		checkOutput func(t *testing.T, output string)
	}{
		{
			name: "version command shows version info",
			args: []string{"version"},
			checkOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Comment Search API")
				assert.Contains(t, output, "Version:      v"+Version)
				assert.Contains(t, output, "OS/Arch:      "+OS+"/"+Arch)
			},
		},
		{
			name: "version command with --short flag",
			args: []string{"version", "--short"},
			checkOutput: func(t *testing.T, output string) {
				assert.Equal(t, "v"+Version+"\n", output)
			},
		},
		{
			name: "version command with --json flag",
			args: []string{"version", "--json"},
			checkOutput: func(t *testing.T, output string) {
				var info buildInfo
				require.NoError(t, json.Unmarshal([]byte(output), &info))
				assert.Equal(t, "Comment Search API", info.Name)
				assert.Equal(t, Version, info.Version)
				assert.Equal(t, GitCommit, info.GitCommit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeRoot(t, tt.args...)
			require.NoError(t, err)

			tt.checkOutput(t, output)
		})
	}
}

func TestVersionCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	versionCmd, _, err := cmd.Find([]string{"version"})
	require.NoError(t, err)

	assert.NotNil(t, versionCmd.Flags().Lookup("short"), "Expected short flag to be registered")
	assert.NotNil(t, versionCmd.Flags().Lookup("json"), "Expected json flag to be registered")
}
