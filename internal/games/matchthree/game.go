// Package matchthree implements the playable match three game on top of the
// match3 board engine: cursor and selection handling, swap animation, move
// accounting and board dealing.
package matchthree

import (
	"math/rand"

	"github.com/DeXoteric/MatchThreeGame/internal/config"
	"github.com/DeXoteric/MatchThreeGame/internal/core"
	"github.com/DeXoteric/MatchThreeGame/internal/match3"
	"github.com/DeXoteric/MatchThreeGame/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const (
	flashDuration   = 20 // Matched cells blink this long before clearing
	hintDuration    = 120
	messageDuration = 90
	maxDealAttempts = 50
	minBoardSide    = 3
	maxBoardSide    = 16
	minKinds        = 3
)

// Game implements the match three puzzle.
type Game struct {
	mode Mode
	cfg  config.MatchThreeConfig
	diff *config.DifficultyManager
	ease Easing
	rng  *rand.Rand
	tick uint64

	grid   *match3.Grid
	start  *match3.Grid // dealt by the next Reset instead of a random board
	cursor match3.Coord
	sel    Selection
	tween  *swapTween
	flash  *flash

	hint      *match3.Swap
	hintTicks int
	message   string
	msgTicks  int

	score     int
	moves     int // Swaps that produced a match
	movesLeft int
	boards    int
	cleared   int

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a classic game with a move limit.
func New() *Game {
	return NewWithConfig(ModeClassic, config.DefaultMatchThreeConfig())
}

// NewEndless creates an endless game that runs until the board is stuck.
func NewEndless() *Game {
	return NewWithConfig(ModeEndless, config.DefaultMatchThreeConfig())
}

// NewWithConfig creates a game with an explicit configuration.
// An unknown easing name falls back to linear.
func NewWithConfig(mode Mode, cfg config.MatchThreeConfig) *Game {
	ease, err := ParseEasing(cfg.Animation.Easing)
	if err != nil {
		ease = Linear
	}
	return &Game{
		mode: mode,
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		ease: ease,
	}
}

func init() {
	registry.Register("matchthree", func() registry.Game {
		return New()
	})
	registry.Register("matchthree_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "matchthree_endless"
	}
	return "matchthree"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match Three (Endless)"
	}
	return "Match Three"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.boards = 0
	g.cleared = 0
	g.sel.Reset()
	g.tween = nil
	g.flash = nil
	g.hint = nil
	g.hintTicks = 0
	g.message = ""
	g.msgTicks = 0
	g.gameOver = false
	g.paused = false

	g.movesLeft = g.cfg.Rules.MoveLimit
	if g.mode == ModeEndless {
		g.movesLeft = 0
	}

	if g.start != nil {
		g.grid = g.start
		g.boards = 1
		g.start = nil
		g.cursor = match3.C(g.grid.Width()/2, g.grid.Height()/2)
		g.resolveStuck()
	} else {
		g.deal()
		g.cursor = match3.C(g.grid.Width()/2, g.grid.Height()/2)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// StartFrom makes the next Reset deal a copy of grid instead of a random
// board. Later restarts deal randomly again.
func (g *Game) StartFrom(grid *match3.Grid) {
	g.start = grid.Clone()
}

// Configure replaces the configuration. The board in play is kept; board
// size and move limit take effect on the next Reset.
func (g *Game) Configure(cfg config.MatchThreeConfig) {
	fresh := NewWithConfig(g.mode, cfg)
	g.cfg = fresh.cfg
	g.diff = fresh.diff
	g.ease = fresh.ease
}

// Resize adapts to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for board, HUD and message line.
func (g *Game) checkScreenSize() {
	if g.grid == nil {
		return
	}
	w, h := boardExtent(g.grid)
	minW := max(w, 40)
	minH := hudHeight + h + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// deal replaces the board with a fresh one that has no runs and at least
// one productive swap.
func (g *Game) deal() {
	w := core.Clamp(g.cfg.Board.Width, minBoardSide, maxBoardSide)
	h := core.Clamp(g.cfg.Board.Height, minBoardSide, maxBoardSide)
	pool := g.kindPool()

	var grid *match3.Grid
	for attempt := 0; attempt < maxDealAttempts; attempt++ {
		grid, _ = match3.NewGrid(w, h)
		grid.Fill(noRunGenerator(grid, g.rng, pool))
		if len(match3.FindValidSwaps(grid)) > 0 {
			break
		}
	}

	g.grid = grid
	g.boards++
}

// kindPool returns the piece kinds for the next deal.
func (g *Game) kindPool() []match3.PieceKind {
	playable := match3.PlayableKinds()
	base := core.Clamp(g.cfg.Board.Kinds, minKinds, len(playable))
	n := g.diff.Kinds(base, len(playable), g.score, g.moves)

	pool := append([]match3.PieceKind(nil), playable[:n]...)
	if g.cfg.Rules.AllowWild {
		pool = append(pool, match3.Wild)
	}
	return pool
}

// noRunGenerator picks kinds that do not complete a run with the two
// already-filled neighbours to the left or below.
func noRunGenerator(grid *match3.Grid, rng *rand.Rand, pool []match3.PieceKind) match3.Generator {
	return match3.GeneratorFunc(func(c match3.Coord) match3.PieceKind {
		candidates := make([]match3.PieceKind, 0, len(pool))
		for _, k := range pool {
			if completesRun(grid, c, k, match3.Left) || completesRun(grid, c, k, match3.Down) {
				continue
			}
			candidates = append(candidates, k)
		}
		if len(candidates) == 0 {
			candidates = pool
		}
		return candidates[rng.Intn(len(candidates))]
	})
}

func completesRun(grid *match3.Grid, c match3.Coord, k match3.PieceKind, dir match3.Direction) bool {
	for i := 1; i < match3.MinMatch; i++ {
		got, err := grid.Get(c.Step(dir, i))
		if err != nil || !got.Matches(k) {
			return false
		}
	}
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickTimers()

	switch {
	case g.tween != nil:
		g.stepTween()
	case g.flash != nil:
		g.stepFlash()
	default:
		g.handleInput(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) tickTimers() {
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}
}

// handleInput moves the cursor and drives the selection.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(match3.Up)
	case in.Has(core.ActionDown):
		g.moveCursor(match3.Down)
	case in.Has(core.ActionLeft):
		g.moveCursor(match3.Left)
	case in.Has(core.ActionRight):
		g.moveCursor(match3.Right)
	}

	if in.Has(core.ActionCancel) {
		g.sel.Reset()
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionSelect) {
		g.pick(g.cursor)
	}
}

func (g *Game) moveCursor(d match3.Direction) {
	next := g.cursor.Step(d, 1)
	if g.grid.InBounds(next) {
		g.cursor = next
	}
}

// pick selects c and starts the swap tween once two adjacent pieces are picked.
func (g *Game) pick(c match3.Coord) {
	if g.sel.Pick(c) != PhasePendingSwap {
		return
	}

	swap, _ := g.sel.Pair()
	res, err := match3.EvaluateSwap(g.grid, swap.A, swap.B)
	if err != nil {
		g.sel.Reset()
		g.say("Nothing to swap there")
		return
	}

	g.hint = nil
	g.hintTicks = 0
	g.tween = newSwapTween(res, g.cfg.Animation.SwapTicks, g.ease)
}

// stepTween advances the swap animation and resolves it when a leg ends.
func (g *Game) stepTween() {
	if !g.tween.advance() {
		return
	}

	if g.tween.back {
		g.tween = nil
		g.sel.Reset()
		return
	}

	res := g.tween.result
	if !res.HasMatch() {
		g.sel.Resolve(false)
		g.tween.reverse()
		g.say("No match")
		return
	}

	g.sel.Resolve(true)
	g.tween = nil
	g.commit(res)
}

// commit applies a matching swap and starts the flash on matched cells.
func (g *Game) commit(res match3.SwapResult) {
	g.grid = res.Grid
	g.score += res.Matched.Len()
	g.moves++
	if g.limited() {
		g.movesLeft--
	}
	g.flash = &flash{cells: res.Matched.Sorted(), ticks: flashDuration}
}

// stepFlash counts the flash down, then clears matched cells.
func (g *Game) stepFlash() {
	g.flash.ticks--
	if g.flash.ticks > 0 {
		return
	}

	for _, c := range g.flash.cells {
		if err := g.grid.Set(c, match3.Empty); err == nil {
			g.cleared++
		}
	}
	g.flash = nil
	g.sel.Reset()
	g.afterMove()
}

// afterMove ends the game or deals a new board when play cannot continue.
func (g *Game) afterMove() {
	if g.limited() && g.movesLeft <= 0 {
		g.gameOver = true
		return
	}

	g.resolveStuck()
}

// resolveStuck handles a board without productive swaps: endless games end,
// classic games get a new board.
func (g *Game) resolveStuck() {
	if len(match3.FindValidSwaps(g.grid)) > 0 {
		return
	}

	if g.mode == ModeEndless {
		g.gameOver = true
		return
	}

	g.deal()
	g.cursor = match3.C(g.grid.Width()/2, g.grid.Height()/2)
	g.checkScreenSize()
	g.say("New board!")
}

// showHint marks the first productive swap, if any.
func (g *Game) showHint() {
	swaps := match3.FindValidSwaps(g.grid)
	if len(swaps) == 0 {
		g.say("No moves left")
		return
	}
	hint := swaps[0]
	g.hint = &hint
	g.hintTicks = hintDuration
}

func (g *Game) say(msg string) {
	g.message = msg
	g.msgTicks = messageDuration
}

// limited reports whether moves are being counted down.
func (g *Game) limited() bool {
	return g.mode == ModeClassic && g.cfg.Rules.MoveLimit > 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// RoundStats returns statistics for the round history.
func (g *Game) RoundStats() core.RoundStats {
	return core.RoundStats{
		Moves:   g.moves,
		Boards:  g.boards,
		Cleared: g.cleared,
		Ticks:   g.tick,
	}
}

// Grid returns a copy of the current board.
func (g *Game) Grid() *match3.Grid {
	return g.grid.Clone()
}
