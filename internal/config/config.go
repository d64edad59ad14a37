// Package config provides YAML-based game configuration loading and
// difficulty presets for the console's games.
package config

// BlockstackConfig contains all tunables for the Block Stack game.
type BlockstackConfig struct {
	Board   BlockstackBoard   `yaml:"board"`
	Speed   BlockstackSpeed   `yaml:"speed"`
	Scoring BlockstackScoring `yaml:"scoring"`
}

// BlockstackBoard defines the playfield dimensions.
type BlockstackBoard struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// BlockstackSpeed defines the gravity curve: delay at level 1, reduction per
// level, and the floor the delay never drops below.
type BlockstackSpeed struct {
	BaseDelayMs int `yaml:"base_delay_ms"`
	DelayStepMs int `yaml:"delay_step_ms"`
	MinDelayMs  int `yaml:"min_delay_ms"`
}

// BlockstackScoring defines the per-sweep bonus table, indexed by rows
// cleared in one sweep (0 through 4).
type BlockstackScoring struct {
	LineBonus []int `yaml:"line_bonus"`
}

// WargameConfig contains all tunables for the War Game.
type WargameConfig struct {
	Classes []WargameClass `yaml:"classes"`
	Combat  WargameCombat  `yaml:"combat"`
}

// WargameClass defines one playable character class.
type WargameClass struct {
	ID      string         `yaml:"id"`
	Name    string         `yaml:"name"`
	Sprite  string         `yaml:"sprite"`
	HP      int            `yaml:"hp"`
	Attack  WargameRange   `yaml:"attack"`
	Heal    WargameRange   `yaml:"heal"`
	Special WargameSpecial `yaml:"special"`
}

// WargameRange is an inclusive random roll range.
type WargameRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// WargameSpecial defines a class's special move. HitChance is the player's
// success probability; HealsSelf marks specials that also restore HP.
type WargameSpecial struct {
	Name      string       `yaml:"name"`
	Damage    WargameRange `yaml:"damage"`
	HitChance float64      `yaml:"hit_chance"`
	HealsSelf bool         `yaml:"heals_self"`
	Heal      WargameRange `yaml:"heal"`
}

// WargameCombat defines combat rules shared by all classes.
type WargameCombat struct {
	SpecialCooldown int `yaml:"special_cooldown"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
