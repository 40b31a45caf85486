package battle

import (
	"math"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EnemyName labels enemy lines in the log
const EnemyName = "Enemy"

// enemyOrder puts the enemy behind every actor on a full tie
const enemyOrder = math.MaxInt32

var (
	_ core.Entity    = (*Enemy)(nil)
	_ scheduler.Unit = (*Enemy)(nil)
)

// Enemy is the proxy for the whole enemy group: one turn order entry,
// shared toughness and break state
type Enemy struct {
	Formula resolver.Enemy

	Toughness    float64
	MaxToughness float64
	Broken       bool

	SPD float64
	AV  float64

	// DamageTaken totals everything dealt to the group
	DamageTaken float64
}

// NewEnemy builds the proxy from encounter parameters
func NewEnemy(p combat.EncounterParams) *Enemy {
	return &Enemy{
		Formula:      resolver.NewEnemy(p),
		Toughness:    p.Toughness,
		MaxToughness: p.Toughness,
		SPD:          p.Speed,
	}
}

// GetID implements core.Entity
func (e *Enemy) GetID() string { return "enemy" }

// GetType implements core.Entity
func (e *Enemy) GetType() string { return TypeEnemy }

// ActionValue implements scheduler.Unit
func (e *Enemy) ActionValue() float64 { return e.AV }

// SetActionValue implements scheduler.Unit
func (e *Enemy) SetActionValue(av float64) { e.AV = av }

// Speed implements scheduler.Unit
func (e *Enemy) Speed() float64 { return e.SPD }

// Order implements scheduler.Unit
func (e *Enemy) Order() int { return enemyOrder }

// Waiting implements scheduler.Unit; the group never falls
func (e *Enemy) Waiting() bool { return true }

// ReduceToughness removes toughness and reports whether this call broke
// the enemy. Toughness never goes below zero and a broken enemy can't
// break again until it recovers.
func (e *Enemy) ReduceToughness(amount float64) bool {
	if e.Broken || e.Toughness <= 0 || amount <= 0 {
		return false
	}
	e.Toughness = max(0, e.Toughness-amount)
	if e.Toughness == 0 {
		e.Broken = true
		return true
	}
	return false
}

// Recover restores full toughness and clears the break
func (e *Enemy) Recover() {
	e.Broken = false
	e.Toughness = e.MaxToughness
}
