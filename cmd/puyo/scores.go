package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game (default: puyo).
Two-board games also show the duel record and the latest duels.

Examples:
  puyo scores
  puyo scores puyo_duel
  puyo scores puyo --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all high scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := puyo.IDSolo
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'puyo list' to see available games.", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared high scores for %s.\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'puyo play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Chain", "Date")
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.MaxChain, dateStr)
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Games: %d  Best: %d  Best chain: %d  Average: %.0f\n",
				stats.GamesCount, stats.HighScore, stats.BestChain, stats.AvgScore)
		}
	}

	if mg, ok := game.(registry.MultiPlayerGame); ok && mg.Players() > 1 {
		printDuels(store, gameID)
	}
}

// printDuels shows the win tally and the latest duels of a game.
func printDuels(store *storage.Store, gameID string) {
	tally, err := store.Tally(gameID)
	if err != nil {
		fail("retrieving duels: %v", err)
	}

	fmt.Println()
	fmt.Println("Duels")
	fmt.Printf("  P1 wins: %d  P2 wins: %d  Draws: %d\n", tally.Player1Wins, tally.Player2Wins, tally.Draws)

	recent, err := store.RecentDuels(50)
	if err != nil {
		fail("retrieving duels: %v", err)
	}

	shown := 0
	for _, d := range recent {
		if d.GameID != gameID {
			continue
		}
		if shown == 5 {
			break
		}
		if shown == 0 {
			fmt.Println()
			fmt.Printf("  %-16s  %-7s  %-7s  %-6s  %s\n", "Date", "P1", "P2", "Winner", "Time")
		}
		fmt.Printf("  %-16s  %-7d  %-7d  %-6s  %s\n",
			d.CreatedAt.Format("2006-01-02 15:04"), d.Score1, d.Score2, winnerLabel(d.Winner), d.Duration)
		shown++
	}
}

func winnerLabel(w int) string {
	switch w {
	case storage.DuelPlayer1:
		return "P1"
	case storage.DuelPlayer2:
		return "P2"
	default:
		return "draw"
	}
}
