// Package registry provides a global registry for game factories.
// Game packages register their variants in init(), so the platform can list
// and start them without importing every game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DeXoteric/MatchThreeGame/internal/config"
	"github.com/DeXoteric/MatchThreeGame/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "matchthree").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset deals a fresh game. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Resizable is implemented by games that can adapt to a new screen size
// without losing progress. Other games are reset on resize.
type Resizable interface {
	Resize(w, h int)
}

// RoundReporter is implemented by games that expose per-run statistics
// for the round history.
type RoundReporter interface {
	RoundStats() core.RoundStats
}

// Configurable is implemented by games that take a match three config.
// Configure is called before the first Reset.
type Configurable interface {
	Configure(cfg config.MatchThreeConfig)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// CreateConfigured instantiates a game and, if it is Configurable, hands it
// cfg with preset applied. An empty preset leaves cfg as loaded.
func CreateConfigured(id string, cfg config.MatchThreeConfig, preset config.DifficultyPreset) (Game, error) {
	game, err := Create(id)
	if err != nil {
		return nil, err
	}

	c, ok := game.(Configurable)
	if !ok {
		return game, nil
	}
	if preset != "" {
		config.ApplyMatchThreePreset(&cfg, preset)
	}
	c.Configure(cfg)
	return game, nil
}
