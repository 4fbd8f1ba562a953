package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/DeXoteric/MatchThreeGame/internal/config"
	"github.com/DeXoteric/MatchThreeGame/internal/platform/tui"
	"github.com/DeXoteric/MatchThreeGame/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty,
Enter to play. After a game you return to the menu.

Controls:
  Up/Down/j/k     - Pick mode
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Scores and round history
  Q/Esc           - Quit

Examples:
  matchthree menu
  matchthree menu --fps 30
  matchthree menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger("matchthree")

	gameCfg, preset, err := loadGameConfig(logger)
	if err != nil {
		return err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(terminalSize())

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.CreateConfigured(menuResult.GameID, gameCfg, preset)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Debug("game started", "game", menuResult.GameID, "difficulty", preset, "seed", cfg.Seed)

		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
