package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/haptic-arena/internal/config"
	"github.com/vovakirdan/haptic-arena/internal/haptic"
	"github.com/vovakirdan/haptic-arena/internal/registry"
)

// loadConfig loads the arena config and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.ArenaConfig, error) {
	cfg, err := config.Load(expandHome(flagConfig))
	if err != nil {
		return cfg, err
	}
	return applyOverrides(cmd, cfg)
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(cmd *cobra.Command, cfg config.ArenaConfig) (config.ArenaConfig, error) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Haptics.Backend = flagBackend
	}
	if flags.Changed("controller") {
		cfg.Haptics.Controller = flagController
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = flagFPS
	}

	if !registry.Exists(cfg.Haptics.Backend) {
		return cfg, fmt.Errorf("unknown backend %q (run 'arena backends' to list them)", cfg.Haptics.Backend)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the run logger, tagged with a session id.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("session", uuid.NewString())
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// openController opens the configured backend device.
func openController(cfg config.ArenaConfig, logger *log.Logger) (*haptic.Controller, error) {
	dev, err := registry.Create(cfg.Haptics.Backend, cfg.Haptics.Controller, logger)
	if err != nil {
		return nil, err
	}
	return haptic.NewController(cfg.Haptics.Controller, dev, logger), nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
