package config

import (
	_ "embed"
)

//go:embed defaults/blockstack.yaml
var defaultBlockstackYAML []byte

//go:embed defaults/wargame.yaml
var defaultWargameYAML []byte

// DefaultBlockstackConfig returns the default Block Stack configuration.
func DefaultBlockstackConfig() BlockstackConfig {
	return BlockstackConfig{
		Board: BlockstackBoard{
			Rows: 16,
			Cols: 10,
		},
		Speed: BlockstackSpeed{
			BaseDelayMs: 700,
			DelayStepMs: 45,
			MinDelayMs:  140,
		},
		Scoring: BlockstackScoring{
			LineBonus: []int{0, 40, 100, 300, 800},
		},
	}
}

// DefaultWargameConfig returns the default War Game configuration.
func DefaultWargameConfig() WargameConfig {
	return WargameConfig{
		Classes: []WargameClass{
			{
				ID: "warrior", Name: "WARRIOR", Sprite: "♠", HP: 120,
				Attack: WargameRange{Min: 18, Max: 28},
				Heal:   WargameRange{Min: 15, Max: 25},
				Special: WargameSpecial{
					Name:      "RAGE",
					Damage:    WargameRange{Min: 30, Max: 40},
					HitChance: 0.75,
				},
			},
			{
				ID: "mage", Name: "MAGE", Sprite: "♦", HP: 80,
				Attack: WargameRange{Min: 12, Max: 20},
				Heal:   WargameRange{Min: 25, Max: 35},
				Special: WargameSpecial{
					Name:      "FIREBALL",
					Damage:    WargameRange{Min: 35, Max: 45},
					HitChance: 0.75,
				},
			},
			{
				ID: "rogue", Name: "ROGUE", Sprite: "♣", HP: 100,
				Attack: WargameRange{Min: 15, Max: 25},
				Heal:   WargameRange{Min: 20, Max: 30},
				Special: WargameSpecial{
					Name:      "BACKSTAB",
					Damage:    WargameRange{Min: 40, Max: 50},
					HitChance: 0.8,
				},
			},
			{
				ID: "paladin", Name: "PALADIN", Sprite: "♥", HP: 110,
				Attack: WargameRange{Min: 16, Max: 24},
				Heal:   WargameRange{Min: 30, Max: 40},
				Special: WargameSpecial{
					Name:      "HOLY LIGHT",
					Damage:    WargameRange{Min: 25, Max: 35},
					HitChance: 1.0,
					HealsSelf: true,
					Heal:      WargameRange{Min: 15, Max: 25},
				},
			},
		},
		Combat: WargameCombat{
			SpecialCooldown: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockstack":
		return defaultBlockstackYAML
	case "wargame":
		return defaultWargameYAML
	default:
		return nil
	}
}
