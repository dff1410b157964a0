package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/platform/tui"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

var flagPlayers int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: puyo).

Controls (player 1 / player 2 in a duel):
  Left/Right  A/D    - Move the falling pair
  Down        S      - Soft drop
  Up/Space    W/Tab  - Rotate
  R                  - Restart every board
  P/Esc              - Pause
  B                  - Leave (when paused or over)
  Q/Ctrl+C           - Quit

In a solo game both key sets control the board.

Speed presets:
  easy   - 1000ms per row
  normal - 700ms per row
  hard   - 400ms per row

Examples:
  puyo play
  puyo play puyo_duel
  puyo play --speed hard
  puyo play --players 2
  puyo play --config ./my-puyo.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Boards in the solo game (1-2, 0 = config)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := puyo.IDSolo
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'puyo list' to see available games.", gameID)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	_, preset := loadGameConfig(logger, flagPlayers)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore(logger)

	_, runErr := tui.Run(game, store, runtimeConfig(), tui.GameOptions{
		Speed:  preset,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
