// Package config loads mazepath runtime settings from the process
// environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment keys.
const (
	KeyMazeFile  = "MAZE_FILE"
	KeyStepDelay = "MAZE_STEP_DELAY"
	KeyMaxSteps  = "MAZE_MAX_STEPS"
	KeyRenderer  = "MAZE_RENDERER"
	KeyTimeout   = "MAZE_TIMEOUT"
)

// Renderer names.
const (
	RendererTTY  = "tty"
	RendererText = "text"
	RendererNone = "none"
)

// DefaultStepDelay paces each search step for human viewing.
const DefaultStepDelay = 200 * time.Millisecond

// Config holds the application's configuration values.
type Config struct {
	MazeFile  string        // Maze text file; empty selects the built-in maze
	StepDelay time.Duration // Pause after each search step
	MaxSteps  int           // Step bound; 0 means unbounded
	Renderer  string        // One of tty, text, none
	Timeout   time.Duration // Whole-run deadline; 0 means none

	// StepDelaySet records that StepDelay was given explicitly rather
	// than taken from Default.
	StepDelaySet bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		StepDelay: DefaultStepDelay,
		Renderer:  RendererTTY,
	}
}

// Load reads the given .env files (missing files are skipped) and overlays
// the process environment, which always wins over file values.
// The process environment itself is never modified.
func Load(envFiles ...string) (Config, error) {
	fileVars := make(map[string]string)
	for _, path := range envFiles {
		vars, err := godotenv.Read(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		for k, v := range vars {
			fileVars[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	cfg := Default()
	if v, ok := lookup(KeyMazeFile); ok {
		cfg.MazeFile = v
	}
	if v, ok := lookup(KeyRenderer); ok {
		cfg.Renderer = v
	}
	if v, ok := lookup(KeyStepDelay); ok && v != "" {
		cfg.StepDelaySet = true
	}
	var err error
	if cfg.StepDelay, err = durationOr(lookup, KeyStepDelay, cfg.StepDelay); err != nil {
		return Config{}, err
	}
	if cfg.Timeout, err = durationOr(lookup, KeyTimeout, cfg.Timeout); err != nil {
		return Config{}, err
	}
	if cfg.MaxSteps, err = intOr(lookup, KeyMaxSteps, cfg.MaxSteps); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Delay returns the pause to apply after each search step. Headless runs
// skip the default pacing unless a delay was set explicitly.
func (c Config) Delay() time.Duration {
	if c.Renderer == RendererNone && !c.StepDelaySet {
		return 0
	}
	return c.StepDelay
}

// Validate checks value ranges and the renderer name.
func (c Config) Validate() error {
	switch {
	case c.StepDelay < 0:
		return fmt.Errorf("%w: %s must not be negative (%v)", ErrInvalidConfig, KeyStepDelay, c.StepDelay)
	case c.Timeout < 0:
		return fmt.Errorf("%w: %s must not be negative (%v)", ErrInvalidConfig, KeyTimeout, c.Timeout)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: %s must not be negative (%d)", ErrInvalidConfig, KeyMaxSteps, c.MaxSteps)
	}
	switch c.Renderer {
	case RendererTTY, RendererText, RendererNone:
		return nil
	}
	return fmt.Errorf("%w: %s must be %s, %s or %s, got %q",
		ErrInvalidConfig, KeyRenderer, RendererTTY, RendererText, RendererNone, c.Renderer)
}

// durationOr parses key as a Go duration, or returns def when unset.
func durationOr(lookup func(string) (string, bool), key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}

// intOr parses key as an integer, or returns def when unset.
func intOr(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}
