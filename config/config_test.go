package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/config"
)

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.KeyMazeFile, config.KeyStepDelay, config.KeyMaxSteps, config.KeyRenderer, config.KeyTimeout} {
		t.Setenv(k, "") // registers restoration
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 200*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, config.RendererTTY, cfg.Renderer)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, `
# maze settings
MAZE_FILE=mazes/big.txt
MAZE_STEP_DELAY=50ms
MAZE_MAX_STEPS=1000
MAZE_RENDERER=text
MAZE_TIMEOUT=1m
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		MazeFile:     "mazes/big.txt",
		StepDelay:    50 * time.Millisecond,
		MaxSteps:     1000,
		Renderer:     config.RendererText,
		Timeout:      time.Minute,
		StepDelaySet: true,
	}, cfg)

	// Loading must not leak file values into the process environment.
	_, set := os.LookupEnv(config.KeyMazeFile)
	assert.False(t, set)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "MAZE_RENDERER=text\nMAZE_STEP_DELAY=1s\n")
	t.Setenv(config.KeyRenderer, config.RendererNone)
	t.Setenv(config.KeyStepDelay, "0")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.RendererNone, cfg.Renderer)
	assert.Zero(t, cfg.StepDelay)
}

func TestConfig_Delay(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.KeyRenderer, config.RendererNone)
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultStepDelay, cfg.StepDelay)
	assert.Zero(t, cfg.Delay(), "headless runs skip default pacing")

	t.Setenv(config.KeyStepDelay, "1s")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Delay())

	cfg = config.Default()
	assert.Equal(t, config.DefaultStepDelay, cfg.Delay())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{config.KeyStepDelay, "fast"},
		{config.KeyStepDelay, "-1s"},
		{config.KeyMaxSteps, "many"},
		{config.KeyMaxSteps, "-3"},
		{config.KeyRenderer, "opengl"},
		{config.KeyTimeout, "-5m"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_BadEnvFile(t *testing.T) {
	clearEnv(t)
	// A directory cannot be parsed as an env file.
	_, err := config.Load(t.TempDir())
	assert.Error(t, err)
}
