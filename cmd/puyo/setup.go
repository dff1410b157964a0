package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns the logger for interactive commands. The terminal
// belongs to the game, so debug output goes to a file.
func newLogger() (*log.Logger, func()) {
	stderr := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "puyo"})
	if !flagDebug {
		return stderr, func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		stderr.Warn("debug log disabled", "error", err)
		return stderr, func() {}
	}
	path := filepath.Join(home, ".puyo", "puyo.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		stderr.Warn("debug log disabled", "error", err)
		return stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		stderr.Warn("debug log disabled", "error", err)
		return stderr, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "puyo",
	})
	return logger, func() { f.Close() }
}

// loadGameConfig reads puyo.yaml, applies the command-line overrides and
// installs the result for games created afterwards.
func loadGameConfig(logger *log.Logger, players int) (config.PuyoConfig, config.SpeedPreset) {
	cfg, source, err := config.LoadPuyoWithSource(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("config loaded", "source", source)

	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		fail("%v", err)
	}
	config.ApplySpeedPreset(&cfg, preset)
	if players > 0 {
		cfg.Gameplay.Players = players
	}

	puyo.SetConfig(cfg)
	return puyo.CurrentConfig(), preset
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
