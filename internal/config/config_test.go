package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matchthree.yaml")
	if err := os.WriteFile(path, GetDefaultYAML("matchthree"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatchThree(path)
	if err != nil {
		t.Fatalf("LoadMatchThree() error = %v", err)
	}
	if cfg != DefaultMatchThreeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultMatchThreeConfig())
	}
}

func TestLoadMatchThreeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  width: 6\n  kinds: 3\nrules:\n  move_limit: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatchThree(path)
	if err != nil {
		t.Fatalf("LoadMatchThree() error = %v", err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Kinds != 3 {
		t.Errorf("board = %+v, expected width 6 kinds 3", cfg.Board)
	}
	if cfg.Board.Height != 8 {
		t.Errorf("unset height should keep default, got %d", cfg.Board.Height)
	}
	if cfg.Rules.MoveLimit != 0 {
		t.Errorf("MoveLimit = %d, expected 0", cfg.Rules.MoveLimit)
	}
}

func TestLoadMatchThreeErrors(t *testing.T) {
	if _, err := LoadMatchThree(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatchThree(path); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestApplyMatchThreePreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		kinds     int
		moves     int
		enabled   bool
		initLevel float64
	}{
		{DifficultyEasy, 4, 30, true, 0.0},
		{DifficultyNormal, 5, 25, true, 0.3},
		{DifficultyHard, 6, 20, true, 0.7},
		{DifficultyFixed, 5, 25, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatchThreeConfig()
			ApplyMatchThreePreset(&cfg, tc.preset)

			if cfg.Board.Kinds != tc.kinds || cfg.Rules.MoveLimit != tc.moves {
				t.Errorf("kinds/moves = %d/%d, expected %d/%d",
					cfg.Board.Kinds, cfg.Rules.MoveLimit, tc.kinds, tc.moves)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyManagerKinds(t *testing.T) {
	cfg := DefaultMatchThreeConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"start", 0, 5},
		{"halfway", 150, 6},
		{"max", 300, 7},
		{"beyond max", 900, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dm.Kinds(5, 8, tc.score, 0); got != tc.want {
				t.Errorf("Kinds(score=%d) = %d, expected %d", tc.score, got, tc.want)
			}
		})
	}

	if got := dm.Kinds(7, 8, 300, 0); got != 8 {
		t.Errorf("Kinds should cap at limit, got %d", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DefaultMatchThreeConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := dm.Level(1000, 1000); got != 0.5 {
		t.Errorf("Level() = %v, expected initial level 0.5", got)
	}

	moves := DefaultMatchThreeConfig().Difficulty
	moves.Progression = ProgressionConfig{Type: "moves", MaxAt: 10}
	if got := NewDifficultyManager(moves).Level(0, 5); got != 0.5 {
		t.Errorf("moves progression Level() = %v, expected 0.5", got)
	}
}
