package blockstack

import (
	"testing"
	"time"
)

func TestLevelForLines(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{25, 3},
		{100, 11},
		{-5, 1},
	}

	for _, tt := range tests {
		if got := LevelForLines(tt.lines); got != tt.want {
			t.Errorf("LevelForLines(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestDelayForLevel(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 700 * time.Millisecond},
		{2, 655 * time.Millisecond},
		{3, 610 * time.Millisecond}, // after 25 lines: max(MIN, BASE - 2*STEP)
		{13, 160 * time.Millisecond},
		{14, 140 * time.Millisecond}, // clamped to the floor
		{50, 140 * time.Millisecond},
		{0, 700 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := tuning.DelayForLevel(tt.level); got != tt.want {
			t.Errorf("DelayForLevel(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestClearBonus(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		cleared int
		level   int
		want    int
	}{
		{0, 1, 0},
		{1, 1, 40},
		{2, 1, 100},
		{3, 1, 300},
		{4, 1, 800},
		{4, 2, 1600},
		{1, 3, 120},
		{7, 1, 800}, // impossible sweep counts clamp to the table's top entry
		{1, 0, 40},
	}

	for _, tt := range tests {
		if got := tuning.ClearBonus(tt.cleared, tt.level); got != tt.want {
			t.Errorf("ClearBonus(%d, %d) = %d, want %d", tt.cleared, tt.level, got, tt.want)
		}
	}
}
