package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlockstack loads Block Stack configuration.
// Search order: customPath -> ~/.nostalgikit/configs/blockstack.yaml ->
// ./configs/blockstack.yaml -> embedded default
func LoadBlockstack(customPath string) (BlockstackConfig, error) {
	var cfg BlockstackConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("blockstack.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/blockstack.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultBlockstackYAML, &cfg); err != nil {
		return DefaultBlockstackConfig(), nil
	}
	return cfg, nil
}

// LoadWargame loads War Game configuration with the same search order.
func LoadWargame(customPath string) (WargameConfig, error) {
	var cfg WargameConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("wargame.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/wargame.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultWargameYAML, &cfg); err != nil {
		return DefaultWargameConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nostalgikit", "configs", filename)
}

// ApplyBlockstackPreset adjusts the speed curve for a difficulty preset.
// "fixed" freezes gravity at the level-1 delay regardless of level.
func ApplyBlockstackPreset(cfg *BlockstackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseDelayMs = 800
		cfg.Speed.MinDelayMs = 200
	case DifficultyHard:
		cfg.Speed.BaseDelayMs = 500
		cfg.Speed.MinDelayMs = 110
	case DifficultyFixed:
		cfg.Speed.DelayStepMs = 0
	}
}

// ApplyWargamePreset scales the roster's damage ranges for a difficulty
// preset. HP and healing stay untouched.
func ApplyWargamePreset(cfg *WargameConfig, preset DifficultyPreset) {
	scale := func(pct int) {
		for i := range cfg.Classes {
			c := &cfg.Classes[i]
			c.Attack.Min = c.Attack.Min * pct / 100
			c.Attack.Max = c.Attack.Max * pct / 100
			c.Special.Damage.Min = c.Special.Damage.Min * pct / 100
			c.Special.Damage.Max = c.Special.Damage.Max * pct / 100
		}
	}
	switch preset {
	case DifficultyEasy:
		scale(80)
	case DifficultyHard:
		scale(120)
	}
}
