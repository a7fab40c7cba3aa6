package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.AddFlags(flags)
	require.NoError(t, flags.Parse(args))
	cfg.Finalize()
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parseArgs(t)

	assert.Equal(t, ".", cfg.RootDir)
	assert.True(t, cfg.IgnoreHidden)
	assert.True(t, cfg.ReadIgnoreFiles)
	assert.True(t, cfg.ReadGitIgnore)
	assert.False(t, cfg.RequireGit)
	assert.Equal(t, -1, cfg.MaxDepth)
	assert.Equal(t, int64(-1), cfg.MaxFileSize)
	assert.False(t, cfg.FollowLinks)
	assert.False(t, cfg.JSONOutput)
}

func TestFlagParsing(t *testing.T) {
	cfg := parseArgs(t,
		"--dir", "/data",
		"--hidden=false",
		"--ignore", "*.log,*.tmp",
		"--override", "!secrets/",
		"--max-depth", "3",
		"--max-size", "1048576",
		"--follow",
		"--json",
		"--show-skipped",
	)

	assert.Equal(t, "/data", cfg.RootDir)
	assert.False(t, cfg.IgnoreHidden)
	assert.Equal(t, []string{"*.log", "*.tmp"}, cfg.CustomIgnores)
	assert.Equal(t, []string{"!secrets/"}, cfg.Overrides)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.Equal(t, int64(1048576), cfg.MaxFileSize)
	assert.True(t, cfg.FollowLinks)
	assert.True(t, cfg.JSONOutput)
	assert.True(t, cfg.ShowSkipped)
}

func TestFinalizeDisablesColorsForFileOutput(t *testing.T) {
	cfg := parseArgs(t, "--output", "out.txt")
	assert.False(t, cfg.UseColors)
}
