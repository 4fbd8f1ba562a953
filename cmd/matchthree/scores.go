package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DeXoteric/MatchThreeGame/internal/registry"
	"github.com/DeXoteric/MatchThreeGame/internal/storage"
)

var (
	flagRounds  int
	flagRoundID string
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and round history",
	Long: `Display the top 10 high scores and the most recent rounds for a game.
Without a game, shows a summary for every game that has been played.

Examples:
  matchthree scores
  matchthree scores matchthree
  matchthree scores matchthree_endless --rounds 20
  matchthree scores --round 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  matchthree scores matchthree --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of recent rounds to show")
	scoresCmd.Flags().StringVar(&flagRoundID, "round", "", "Show a single round by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and rounds for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRoundID != "" {
		return showRound(store, flagRoundID)
	}
	if len(args) == 0 {
		return showSummary(store)
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'matchthree list' to see available games", err)
	}

	if flagClear {
		removed, err := store.ClearGame(gameID)
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d scores and the round history for %s\n", removed, game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'matchthree play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}

	if flagRounds <= 0 {
		return nil
	}
	rounds, err := store.RecentRounds(gameID, flagRounds)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %-16s  %s\n", "Score", "Moves", "Boards", "Cleared", "Date", "Round")
	for _, r := range rounds {
		fmt.Printf("  %-8d  %-6d  %-6d  %-7d  %-16s  %s\n",
			r.Score, r.Moves, r.Boards, r.Cleared, r.CreatedAt.Format("2006-01-02 15:04"), r.RoundID)
	}
	return nil
}

// showRound prints every recorded field of one round.
func showRound(store *storage.Store, roundID string) error {
	r, err := store.RoundByID(roundID)
	if errors.Is(err, storage.ErrRoundNotFound) {
		return fmt.Errorf("no round with ID %q", roundID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Round %s\n\n", r.RoundID)
	fmt.Printf("  Game:     %s\n", r.GameID)
	if r.Session != "" {
		fmt.Printf("  Session:  %s\n", r.Session)
	}
	fmt.Printf("  Score:    %d\n", r.Score)
	fmt.Printf("  Moves:    %d\n", r.Moves)
	fmt.Printf("  Boards:   %d\n", r.Boards)
	fmt.Printf("  Cleared:  %d\n", r.Cleared)
	fmt.Printf("  Ticks:    %d\n", r.Ticks)
	fmt.Printf("  Played:   %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// showSummary prints aggregate stats for every game that has been played.
func showSummary(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-20s  %-6s  %-6s  %-8s  %-7s  %s\n", "Game", "Games", "Best", "Average", "Cleared", "Last played")
	for _, s := range stats {
		fmt.Printf("  %-20s  %-6d  %-6d  %-8.1f  %-7d  %s\n",
			s.GameID, s.Games, s.Best, s.Average, s.Cleared, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
