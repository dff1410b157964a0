package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/platform/tui"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a game, Left/Right to pick the speed,
Enter to play. Press B from a paused or finished game to come back.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change speed
  Enter/Space     - Select game
  Tab             - High scores
  Q               - Quit

Examples:
  puyo menu
  puyo menu --fps 30
  puyo menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	pc, speed := loadGameConfig(logger, 0)
	if speed == "" {
		speed = config.ClosestSpeedPreset(pc.Gameplay.FallIntervalMs)
	}

	store := openStore(logger)
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, speed)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		cfg = menuResult.Config
		speed = menuResult.Speed

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, logger)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each game unless one was given
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, runCfg, tui.GameOptions{
			Speed:  speed,
			Logger: logger,
		})
		if err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
