package matchthree

import (
	"strings"

	"github.com/DeXoteric/MatchThreeGame/internal/match3"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSwapping    GameStateType = "swapping"
	StateClearing    GameStateType = "clearing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Boards    int
	Score     int
	Moves     int
	MovesLeft int // -1 when moves are unlimited
	Cursor    match3.Coord
	Phase     Phase
	Rows      []string // Top row first, as printed
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.tween != nil:
		state = StateSwapping
	case g.flash != nil:
		state = StateClearing
	}

	movesLeft := -1
	if g.limited() {
		movesLeft = g.movesLeft
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Boards:    g.boards,
		Score:     g.score,
		Moves:     g.moves,
		MovesLeft: movesLeft,
		Cursor:    g.cursor,
		Phase:     g.sel.Phase(),
		Rows:      strings.Split(g.grid.String(), "\n"),
		State:     state,
	}
}
