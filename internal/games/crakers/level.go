// Package crakers implements a gem-hunt on a walled grid: collect every gem
// while dodging a patrolling enemy, with a short dash to slip past it.
package crakers

import "math/rand"

const (
	gridWidth  = 18
	gridHeight = 12

	playerLives  = 3
	dashDistance = 2
	gemCount     = 15
	gemScore     = 10
)

type point struct {
	X, Y int
}

func manhattan(a, b point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Level is the arena: border walls, generated interior pillars, and the
// gems still on the floor.
type Level struct {
	walls [gridHeight][gridWidth]bool
	gems  map[point]bool
}

// generateLevel builds a fresh arena. Pillars land on a fixed lattice with
// random gaps; gems go on random floor tiles away from the spawn corner.
func generateLevel(rng *rand.Rand) *Level {
	l := &Level{gems: make(map[point]bool)}

	for x := 0; x < gridWidth; x++ {
		l.walls[0][x] = true
		l.walls[gridHeight-1][x] = true
	}
	for y := 0; y < gridHeight; y++ {
		l.walls[y][0] = true
		l.walls[y][gridWidth-1] = true
	}

	for y := 3; y < gridHeight-3; y += 4 {
		for x := 2; x < gridWidth-2; x += 3 {
			if rng.Float64() < 0.7 {
				l.walls[y][x] = true
			}
		}
	}

	spawn := point{2, 2}
	placed := 0
	for attempts := 0; placed < gemCount && attempts < 100; attempts++ {
		p := point{
			X: 2 + rng.Intn(gridWidth-4),
			Y: 2 + rng.Intn(gridHeight-4),
		}
		if l.walls[p.Y][p.X] || l.gems[p] || manhattan(p, spawn) <= 3 {
			continue
		}
		l.gems[p] = true
		placed++
	}
	return l
}

// emptyLevel is a border-only arena with no pillars and no gems.
func emptyLevel() *Level {
	l := &Level{gems: make(map[point]bool)}
	for x := 0; x < gridWidth; x++ {
		l.walls[0][x] = true
		l.walls[gridHeight-1][x] = true
	}
	for y := 0; y < gridHeight; y++ {
		l.walls[y][0] = true
		l.walls[y][gridWidth-1] = true
	}
	return l
}

// Walkable reports whether (x, y) is an in-bounds floor tile.
func (l *Level) Walkable(x, y int) bool {
	if x < 0 || x >= gridWidth || y < 0 || y >= gridHeight {
		return false
	}
	return !l.walls[y][x]
}

// CollectGem removes the gem at (x, y) if there is one.
func (l *Level) CollectGem(x, y int) bool {
	p := point{x, y}
	if !l.gems[p] {
		return false
	}
	delete(l.gems, p)
	return true
}

// GemsLeft returns the number of uncollected gems.
func (l *Level) GemsLeft() int {
	return len(l.gems)
}

// Enemy patrols a fixed loop of waypoints, stepping one tile at a time on a
// fixed cadence. It moves horizontally first, then vertically.
type Enemy struct {
	X, Y   int
	patrol []point
	target int
	ticks  int
}

func newEnemy(x, y int, patrol []point) Enemy {
	return Enemy{X: x, Y: y, patrol: patrol}
}

// update advances the enemy by at most one tile once every interval ticks.
func (e *Enemy) update(l *Level, interval int) {
	e.ticks++
	if e.ticks < interval {
		return
	}
	e.ticks = 0

	if len(e.patrol) == 0 {
		return
	}
	t := e.patrol[e.target]

	dx, dy := 0, 0
	if e.X != t.X {
		if t.X > e.X {
			dx = 1
		} else {
			dx = -1
		}
	}
	if e.Y != t.Y {
		if t.Y > e.Y {
			dy = 1
		} else {
			dy = -1
		}
	}

	if dx != 0 && l.Walkable(e.X+dx, e.Y) {
		e.X += dx
	} else if dy != 0 && l.Walkable(e.X, e.Y+dy) {
		e.Y += dy
	}

	if e.X == t.X && e.Y == t.Y {
		e.target = (e.target + 1) % len(e.patrol)
	}
}
