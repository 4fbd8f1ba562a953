// matchthree is a terminal match three puzzle.
//
// Usage:
//
//	matchthree list                 - List available game modes
//	matchthree play [game]          - Play a game (default: matchthree)
//	matchthree menu                 - Start menu to pick a mode interactively
//	matchthree serve                - Start SSH server for remote play
//	matchthree scores <game>        - Show high scores and recent rounds
//	matchthree check <board.yaml>   - Report matches and valid swaps on a board file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.matchthree/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DeXoteric/MatchThreeGame/internal/config"
	"github.com/DeXoteric/MatchThreeGame/internal/core"
	"github.com/DeXoteric/MatchThreeGame/internal/storage"

	// Import games to register them
	_ "github.com/DeXoteric/MatchThreeGame/internal/games/matchthree"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matchthree",
	Short: "Match Three - swap pieces, line up three",
	Long: `Match Three is a terminal puzzle: swap two neighbouring pieces so that
three or more of the same kind line up in a row or column.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores and round history
  check    - Inspect a board file

Examples:
  matchthree play
  matchthree play matchthree_endless --difficulty hard
  matchthree menu
  matchthree serve --ssh :2222
  matchthree check boards/corner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadGameConfig loads the game config and validates the difficulty flag.
// An empty preset means the config is used as loaded.
func loadGameConfig(logger *log.Logger) (config.MatchThreeConfig, config.DifficultyPreset, error) {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return config.MatchThreeConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
	}

	cfg, err := config.LoadMatchThree(flagConfig)
	if err != nil {
		return config.MatchThreeConfig{}, "", err
	}
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"kinds", cfg.Board.Kinds,
		"move_limit", cfg.Rules.MoveLimit,
		"difficulty", preset,
	)
	return cfg, preset, nil
}

// openStore opens the scores database. Play works without it, so failure
// is logged and a nil store returned.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config for the given screen size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW = width
		cfg.ScreenH = height
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg.WithDefaults(nil)
}
