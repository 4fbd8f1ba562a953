package matchthree

import (
	"strings"
	"testing"

	"github.com/DeXoteric/MatchThreeGame/internal/core"
	"github.com/DeXoteric/MatchThreeGame/internal/match3"
)

func TestRenderFlipsRows(t *testing.T) {
	g := newScripted(t, ModeClassic, testConfig(), lastSwapBoard...)
	s := core.NewScreen(80, 24)
	g.Render(s)

	// 4x2 board framed to 14 columns, centered on 80; pieces start at column 35.
	if s.Get(35, 4) != 'G' {
		t.Errorf("top row should hold the y=1 pieces, got %q", s.Row(4))
	}
	if s.Get(35, 5) != 'R' {
		t.Errorf("bottom row should hold the y=0 pieces, got %q", s.Row(5))
	}
	if s.GetCell(35, 5).Color != core.ColorRed {
		t.Errorf("red piece color = %v", s.GetCell(35, 5).Color)
	}

	// Cursor starts at (2,1)
	if s.Get(40, 4) != '[' || s.Get(42, 4) != ']' {
		t.Errorf("cursor brackets missing on %q", s.Row(4))
	}
	if !strings.Contains(s.Row(0), "Match Three") {
		t.Errorf("title row = %q", s.Row(0))
	}
	if !strings.Contains(s.Row(1), "Moves: 5") {
		t.Errorf("HUD row = %q", s.Row(1))
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newScripted(t, ModeEndless, testConfig(), lastSwapBoard...)
	pickAt(g, match3.C(2, 0))
	pickAt(g, match3.C(3, 0))
	run(g, testSwapTicks+flashDuration)

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("game over overlay should be drawn")
	}
	if !strings.Contains(s.String(), "No swaps left") {
		t.Error("overlay should explain the game over")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 8, Seed: 1})

	s := core.NewScreen(30, 8)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message, got\n%s", s.String())
	}
}
