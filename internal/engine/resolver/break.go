package resolver

import (
	"fmt"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// ActionValueThreshold mirrors the scheduler threshold; delays are
// fractions of it
const ActionValueThreshold = 10000

// FrozenActionValue is where a frozen enemy's AV is set after it skips
const FrozenActionValue = 5000

// breakBase is the element multiplier of the break damage table
func breakBase(el combat.Element) float64 {
	switch el {
	case combat.ElementPhysical, combat.ElementFire:
		return 2
	case combat.ElementWind:
		return 1.5
	case combat.ElementIce, combat.ElementLightning:
		return 1
	case combat.ElementQuantum, combat.ElementImaginary:
		return 0.5
	default:
		return 0
	}
}

// BreakInput is the breaker's side of a break calculation
type BreakInput struct {
	Element     combat.Element
	BreakEffect float64
	// DamageTaken is the enemy's incoming-damage increase %
	DamageTaken float64
	Enemy       Enemy
}

// BreakDamage is the one-time damage dealt when toughness reaches zero
func BreakDamage(in BreakInput) float64 {
	dmg := breakBase(in.Element) * BreakLevelMultiplier * in.Enemy.ToughnessMultiplier()
	dmg *= (1 + in.BreakEffect/100) * DefMultiplier(in.Enemy.Level, 0) * (1 + in.DamageTaken/100)
	if in.Enemy.Count > 1 {
		dmg *= MultiEnemyBreakFactor
	}
	return dmg
}

// BreakDot is one tick of a break status; stacks apply to wind shear
// and entanglement
func BreakDot(kind combat.DotKind, stacks int, in BreakInput) float64 {
	stacks = max(1, stacks)
	level := BreakLevelMultiplier
	tm := in.Enemy.ToughnessMultiplier()

	var base float64
	switch kind {
	case combat.DotBleed:
		ratio := 0.16
		if in.Enemy.Elite {
			ratio = 0.07
		}
		base = min(in.Enemy.MaxHP*ratio, 2*level*tm)
	case combat.DotEntanglement:
		base = 0.6 * float64(stacks) * level * tm
	case combat.DotBurn, combat.DotFreeze:
		base = level
	case combat.DotShock:
		base = 2 * level
	case combat.DotWindShear:
		base = float64(stacks) * level
	default:
		return 0
	}
	return base * (1 + in.BreakEffect/100) * DefMultiplier(in.Enemy.Level, 0) * (1 + in.DamageTaken/100)
}

// SkillDot is one tick of a skill-applied damage-over-time
func SkillDot(atk, multiplier, damageBoost, damageTaken float64, enemy Enemy) float64 {
	return atk * multiplier / 100 * (1 + damageBoost/100) *
		DefMultiplier(enemy.Level, 0) * (1 + damageTaken/100)
}

// BreakStatus is the debuff a break attaches and its immediate AV delay
type BreakStatus struct {
	Effect combat.Effect
	// Delay is subtracted from the enemy's AV once
	Delay float64
}

// DotKindFor maps the breaker's element to its break status
func DotKindFor(el combat.Element) combat.DotKind {
	switch el {
	case combat.ElementPhysical:
		return combat.DotBleed
	case combat.ElementFire:
		return combat.DotBurn
	case combat.ElementLightning:
		return combat.DotShock
	case combat.ElementWind:
		return combat.DotWindShear
	case combat.ElementIce:
		return combat.DotFreeze
	case combat.ElementQuantum:
		return combat.DotEntanglement
	case combat.ElementImaginary:
		return combat.DotImprisonment
	default:
		return ""
	}
}

// BreakDebuff builds the status a break by owner applies to the enemy
func BreakDebuff(el combat.Element, breakEffect float64, elite bool, owner int) (BreakStatus, bool) {
	kind := DotKindFor(el)
	if kind == "" {
		return BreakStatus{}, false
	}
	out := BreakStatus{Effect: combat.Effect{
		ID:        fmt.Sprintf("break_%s", kind),
		Source:    "Weakness Break",
		Scope:     combat.ScopeEnemies,
		Duration:  2,
		Stacks:    1,
		MaxStacks: 5,
		Owner:     owner,
		Dot:       &combat.Dot{Kind: kind},
	}}
	switch kind {
	case combat.DotWindShear:
		if elite {
			out.Effect.Stacks = 3
		}
	case combat.DotEntanglement:
		out.Effect.Duration = 1
		out.Delay = ActionValueThreshold * 0.2 * (1 + breakEffect/100)
	case combat.DotImprisonment:
		out.Effect.Duration = 1
		out.Delay = ActionValueThreshold * 0.3 * (1 + breakEffect/100)
	}
	return out, true
}
