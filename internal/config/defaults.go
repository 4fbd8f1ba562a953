package config

import (
	_ "embed"
)

//go:embed defaults/matchthree.yaml
var defaultMatchThreeYAML []byte

// DefaultMatchThreeConfig returns the hardcoded match three configuration.
// It mirrors defaults/matchthree.yaml and is used when the embed cannot be parsed.
func DefaultMatchThreeConfig() MatchThreeConfig {
	return MatchThreeConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Kinds:  5,
		},
		Rules: RulesConfig{
			MoveLimit: 25,
		},
		Animation: AnimationConfig{
			SwapTicks: 30,
			Easing:    "smoothstep",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				ExtraKinds: 2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "matchthree", "matchthree_endless":
		return defaultMatchThreeYAML
	default:
		return nil
	}
}
