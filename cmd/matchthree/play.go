package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DeXoteric/MatchThreeGame/internal/games/matchthree"
	"github.com/DeXoteric/MatchThreeGame/internal/match3/boardfile"
	"github.com/DeXoteric/MatchThreeGame/internal/platform/tui"
	"github.com/DeXoteric/MatchThreeGame/internal/registry"
)

var flagBoard string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified mode (default: matchthree).

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Pick a piece; pick a neighbour to swap
  X            - Drop the current pick
  ?            - Show a hint
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 4 kinds, 30 moves, progression from the lowest level
  normal - config kinds and moves, progression from 30%
  hard   - 6 kinds, 20 moves, progression from 70%
  fixed  - No progression

Examples:
  matchthree play
  matchthree play matchthree_endless
  matchthree play --difficulty hard
  matchthree play --board boards/corner.yaml
  matchthree play --config ./my-matchthree.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Start from a board file instead of a random deal")
}

// terminalSize returns the size of stdout, or zeros when it is not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

func runPlay(_ *cobra.Command, args []string) error {
	logger := newLogger("matchthree")

	gameID := "matchthree"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'matchthree list' to see available games", gameID)
	}

	gameCfg, preset, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	game, err := registry.CreateConfigured(gameID, gameCfg, preset)
	if err != nil {
		return err
	}

	if flagBoard != "" {
		board, loadErr := boardfile.LoadFile(flagBoard)
		if loadErr != nil {
			return loadErr
		}
		m3, ok := game.(*matchthree.Game)
		if !ok {
			return fmt.Errorf("%s cannot start from a board file", gameID)
		}
		logger.Debug("starting from board file", "id", board.ID, "path", board.FilePath)
		m3.StartFrom(board.Grid)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	if _, err := tui.Run(game, store, runtimeConfig(width, height), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
