package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "matchthree.yaml"

// LoadMatchThree loads match three configuration.
// Search order: customPath -> ~/.matchthree/configs/matchthree.yaml ->
// ./configs/matchthree.yaml -> embedded default -> hardcoded default.
func LoadMatchThree(customPath string) (MatchThreeConfig, error) {
	cfg := DefaultMatchThreeConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultMatchThreeConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	embedded := DefaultMatchThreeConfig()
	if err := yaml.Unmarshal(defaultMatchThreeYAML, &embedded); err != nil {
		return DefaultMatchThreeConfig(), nil
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".matchthree", "configs", filename)
}

// ApplyMatchThreePreset modifies the config based on a difficulty preset.
func ApplyMatchThreePreset(cfg *MatchThreeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Board.Kinds = 4
		cfg.Rules.MoveLimit = 30
	case DifficultyHard:
		cfg.Board.Kinds = 6
		cfg.Rules.MoveLimit = 20
	}
}
