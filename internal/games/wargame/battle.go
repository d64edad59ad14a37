// Package wargame implements turn-based class combat: pick one of four
// fighter classes and battle a computer opponent drawn from the rest of the
// roster.
package wargame

import (
	"fmt"
	"math/rand"

	"github.com/nostalgik/nostalgikit/internal/config"
)

// BattleAction is one of the four commands available each round.
type BattleAction int

const (
	ActionAttack BattleAction = iota
	ActionDefend
	ActionHeal
	ActionSpecial

	actionCount = 4
)

// String returns the menu label for the action.
func (a BattleAction) String() string {
	switch a {
	case ActionAttack:
		return "ATTACK"
	case ActionDefend:
		return "DEFEND"
	case ActionHeal:
		return "HEAL"
	case ActionSpecial:
		return "SPECIAL"
	default:
		return "?"
	}
}

// Fighter is one combatant's mutable battle state.
type Fighter struct {
	Class     config.WargameClass
	HP        int
	MaxHP     int
	Defending bool
}

func newFighter(class config.WargameClass) Fighter {
	return Fighter{Class: class, HP: class.HP, MaxHP: class.HP}
}

// damage applies a hit, halved once if the target was defending.
func (f *Fighter) damage(amount int) int {
	if f.Defending {
		amount /= 2
		f.Defending = false
	}
	f.HP -= amount
	if f.HP < 0 {
		f.HP = 0
	}
	return amount
}

func (f *Fighter) restore(amount int) int {
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
	return amount
}

// Battle runs one fight between the player and an AI enemy. All rolls come
// from the battle's own rng, so equal seeds replay identically.
type Battle struct {
	Player Fighter
	Enemy  Fighter

	round    int
	cooldown int // rounds until the player's special is ready
	log      []string
	over     bool
	won      bool

	specialCooldown int
	rng             *rand.Rand
}

// NewBattle starts a fight between the two classes.
func NewBattle(player, enemy config.WargameClass, cooldown int, rng *rand.Rand) *Battle {
	return &Battle{
		Player:          newFighter(player),
		Enemy:           newFighter(enemy),
		round:           1,
		specialCooldown: cooldown,
		rng:             rng,
	}
}

// Round returns the current round number, starting at 1.
func (b *Battle) Round() int {
	return b.round
}

// Cooldown returns the rounds left until the player's special is usable.
func (b *Battle) Cooldown() int {
	return b.cooldown
}

// Over reports whether the battle has ended.
func (b *Battle) Over() bool {
	return b.over
}

// Won reports whether the player survived; meaningless until Over.
func (b *Battle) Won() bool {
	return b.won
}

// Log returns the battle log, newest entry last.
func (b *Battle) Log() []string {
	return b.log
}

// CanUse reports whether the action is currently available.
func (b *Battle) CanUse(a BattleAction) bool {
	if b.over {
		return false
	}
	if a == ActionSpecial && b.cooldown > 0 {
		return false
	}
	return true
}

func (b *Battle) roll(r config.WargameRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + b.rng.Intn(r.Max-r.Min+1)
}

func (b *Battle) logf(format string, args ...any) {
	b.log = append(b.log, fmt.Sprintf(format, args...))
}

// PlayTurn executes the player's action and, if the enemy survives it, the
// enemy's response. Returns false when the action was rejected (battle over
// or special on cooldown); a rejected turn changes nothing.
func (b *Battle) PlayTurn(action BattleAction) bool {
	if !b.CanUse(action) {
		return false
	}

	b.playerAct(action)
	if b.Enemy.HP <= 0 {
		b.over = true
		b.won = true
		return true
	}

	b.enemyAct()
	b.round++
	if b.cooldown > 0 {
		b.cooldown--
	}
	if b.Player.HP <= 0 {
		b.over = true
	}
	return true
}

func (b *Battle) playerAct(action BattleAction) {
	class := b.Player.Class

	switch action {
	case ActionAttack:
		dealt := b.Enemy.damage(b.roll(class.Attack))
		b.logf("You attack for %d damage!", dealt)

	case ActionDefend:
		b.Player.Defending = true
		b.logf("You prepare to defend!")

	case ActionHeal:
		healed := b.Player.restore(b.roll(class.Heal))
		b.logf("You heal for %d HP!", healed)

	case ActionSpecial:
		b.castSpecial(&b.Player, &b.Enemy, class.Special, class.Special.HitChance)
		b.cooldown = b.specialCooldown
	}
}

// castSpecial rolls the special's hit chance and applies damage (and the
// self-heal for specials that have one).
func (b *Battle) castSpecial(caster, target *Fighter, special config.WargameSpecial, hitChance float64) {
	if b.rng.Float64() >= hitChance {
		b.logf("%s missed!", special.Name)
		return
	}
	dealt := target.damage(b.roll(special.Damage))
	if special.HealsSelf {
		healed := caster.restore(b.roll(special.Heal))
		b.logf("%s deals %d damage and heals %d HP!", special.Name, dealt, healed)
		return
	}
	b.logf("%s hits for %d damage!", special.Name, dealt)
}

// enemyHitPenalty makes the AI's specials slightly less reliable than the
// player's, as in the original balance. Guaranteed specials stay guaranteed.
const enemyHitPenalty = 0.1

// enemyAct runs the enemy AI: heal when badly hurt, defend when wounded,
// otherwise mostly attack with an occasional special.
func (b *Battle) enemyAct() {
	class := b.Enemy.Class
	ratio := float64(b.Enemy.HP) / float64(b.Enemy.MaxHP)

	switch {
	case ratio < 0.3 && b.rng.Float64() < 0.6:
		healed := b.Enemy.restore(b.roll(class.Heal))
		b.logf("%s heals for %d HP!", class.Name, healed)

	case ratio < 0.5 && b.rng.Float64() < 0.3:
		b.Enemy.Defending = true
		b.logf("%s prepares to defend!", class.Name)

	case b.rng.Float64() < 0.2:
		chance := class.Special.HitChance
		if chance < 1.0 {
			chance -= enemyHitPenalty
		}
		b.castSpecial(&b.Enemy, &b.Player, class.Special, chance)

	case b.rng.Float64() < 0.1:
		b.Enemy.Defending = true
		b.logf("%s prepares to defend!", class.Name)

	default:
		dealt := b.Player.damage(b.roll(class.Attack))
		b.logf("%s attacks for %d damage!", class.Name, dealt)
	}
}
