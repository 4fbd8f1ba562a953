// Package config provides YAML-based game configuration loading and
// difficulty management for match three.
package config

// MatchThreeConfig contains all configuration for the match three game.
type MatchThreeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Rules      RulesConfig      `yaml:"rules"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines board dimensions and the number of piece kinds dealt.
type BoardConfig struct {
	Width  int `yaml:"width"`  // Clamped to 3..16
	Height int `yaml:"height"` // Clamped to 3..16
	Kinds  int `yaml:"kinds"`  // How many playable kinds are spawned, clamped to 3..8
}

// RulesConfig defines move accounting.
type RulesConfig struct {
	MoveLimit int  `yaml:"move_limit"` // 0 means unlimited
	AllowWild bool `yaml:"allow_wild"` // Spawn wild pieces; wild still only matches wild
}

// AnimationConfig defines the swap tween.
type AnimationConfig struct {
	SwapTicks int    `yaml:"swap_ticks"`
	Easing    string `yaml:"easing"` // linear, ease-in, ease-out, smoothstep, smootherstep
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraKinds int `yaml:"extra_kinds"` // Kinds added to freshly dealt boards at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
