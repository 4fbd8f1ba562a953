package config

import (
	"math"

	"github.com/DeXoteric/MatchThreeGame/internal/core"
)

// DifficultyManager scales the number of piece kinds dealt on fresh
// boards as score or moves accumulate.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Kinds returns how many piece kinds a freshly dealt board should use.
// The result never drops below base and never exceeds limit.
func (d *DifficultyManager) Kinds(base, limit, score, moves int) int {
	level := d.Level(score, moves)
	n := base + int(math.Round(level*float64(d.cfg.Scaling.ExtraKinds)))
	if n > limit {
		n = limit
	}
	if n < base {
		n = base
	}
	return n
}
