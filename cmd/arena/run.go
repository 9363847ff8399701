package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/haptic-arena/internal/arena"
	"github.com/vovakirdan/haptic-arena/internal/config"
	"github.com/vovakirdan/haptic-arena/internal/platform/tui"
)

func runArena(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logPath := flagLogFile
	if logPath == "" {
		logPath = filepath.Join(config.StateDir(), "arena.log")
	}
	logFile, err := openLogFile(expandHome(logPath))
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := newLogger(logFile)
	logger.Info("starting arena", "backend", cfg.Haptics.Backend, "controller", cfg.Haptics.Controller,
		"obstacles", len(cfg.Obstacles), "fps", cfg.Window.FPS)

	controller, err := openController(cfg, logger)
	if err != nil {
		return err
	}
	defer controller.Close()

	a, err := arena.New(cfg, arena.Options{
		Haptics: controller,
		Backend: cfg.Haptics.Backend,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	screenshotDir := ""
	if dir := config.StateDir(); dir != "" {
		screenshotDir = filepath.Join(dir, "screenshots")
	}

	if err := tui.Run(a, cfg, tui.Options{
		Width:         width,
		Height:        height,
		ScreenshotDir: screenshotDir,
		Logger:        logger,
	}); err != nil {
		return fmt.Errorf("running arena: %w", err)
	}

	logger.Info("arena finished", "frames", a.Frames())
	return nil
}
