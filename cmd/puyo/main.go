// puyo is a falling-pair puzzle game for the terminal.
//
// Usage:
//
//	puyo list              - List available games
//	puyo play [game]       - Play a game (default: puyo)
//	puyo menu              - Start menu to pick games interactively
//	puyo serve             - Start SSH server for remote play
//	puyo scores [game]     - Show high scores and duel results
//	puyo config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.puyo/scores.db)
//	--config <path>   - Use a custom puyo.yaml
//	--speed <preset>  - Override fall speed: easy, normal, hard
//	--debug           - Write debug logs to ~/.puyo/puyo.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-puyo/internal/games/puyo"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagSpeed  string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puyo",
	Short: "Puyo - match falling colors in your terminal",
	Long: `Puyo is a terminal puzzle game. Pairs of colored puyos fall into a
6x12 well; connect four or more of one color to clear them and set off
chains. Two players can duel on one keyboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and duel results
  config   - Print the effective configuration

Examples:
  puyo play
  puyo play puyo_duel --speed hard
  puyo menu
  puyo serve --ssh :2222
  puyo scores puyo_duel`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puyo/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puyo.yaml")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Fall speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.puyo/puyo.log")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
