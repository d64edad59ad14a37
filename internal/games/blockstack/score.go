package blockstack

import "time"

// Reference tuning, matching the original handheld release.
const (
	DefaultRows = 16
	DefaultCols = 10

	defaultBaseDelay = 700 * time.Millisecond
	defaultDelayStep = 45 * time.Millisecond
	defaultMinDelay  = 140 * time.Millisecond
)

// Tuning holds the speed curve and scoring table. All values have classic
// defaults; the config layer may override them.
type Tuning struct {
	BaseDelay time.Duration // Drop delay at level 1
	DelayStep time.Duration // Delay reduction per level gained
	MinDelay  time.Duration // Floor the delay never drops below
	LineBonus [5]int        // Bonus per rows-cleared-in-one-sweep, index 0..4
}

// DefaultTuning returns the classic speed curve and scoring table.
func DefaultTuning() Tuning {
	return Tuning{
		BaseDelay: defaultBaseDelay,
		DelayStep: defaultDelayStep,
		MinDelay:  defaultMinDelay,
		LineBonus: [5]int{0, 40, 100, 300, 800},
	}
}

// LevelForLines derives the level from the cumulative lines cleared:
// one level per ten lines, starting at level 1.
func LevelForLines(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return 1 + lines/10
}

// DelayForLevel derives the drop delay for a level, clamped to the floor.
func (t Tuning) DelayForLevel(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	delay := t.BaseDelay - time.Duration(level-1)*t.DelayStep
	if delay < t.MinDelay {
		delay = t.MinDelay
	}
	return delay
}

// ClearBonus returns the score awarded for clearing the given number of
// rows in a single sweep, multiplied by the level in effect before the
// clear is applied.
func (t Tuning) ClearBonus(cleared, level int) int {
	if cleared <= 0 {
		return 0
	}
	if cleared >= len(t.LineBonus) {
		cleared = len(t.LineBonus) - 1
	}
	if level < 1 {
		level = 1
	}
	return t.LineBonus[cleared] * level
}
