// Package resolver computes the outcome of one action instance: damage,
// healing, shields, toughness and break.
package resolver

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Fixed combat constants
const (
	AttackerLevel        = 80
	BaseEnemyResistance  = 0.2
	BreakLevelMultiplier = 3767.55
	// MultiEnemyBreakFactor scales break damage when more than one enemy
	// is on the field
	MultiEnemyBreakFactor = 0.9
)

// Enemy is the defending side as the formulas see it
type Enemy struct {
	Level int
	Count int
	// Resistance is a fraction, BaseEnemyResistance for a weak enemy
	Resistance   float64
	MaxHP        float64
	MaxToughness float64
	Elite        bool
}

// NewEnemy builds the defender from encounter parameters
func NewEnemy(p combat.EncounterParams) Enemy {
	return Enemy{
		Level:        p.EnemyLevel,
		Count:        p.EnemyCount,
		Resistance:   BaseEnemyResistance,
		MaxHP:        p.HP,
		MaxToughness: p.Toughness,
		Elite:        p.Elite,
	}
}

// ToughnessMultiplier is the break scaling for the enemy's max toughness
func (e Enemy) ToughnessMultiplier() float64 {
	return 0.5 + e.MaxToughness/120
}

// ScalingSource holds the values scaling terms read
type ScalingSource struct {
	ATK             float64
	HP              float64
	DEF             float64
	LostHP          float64
	AccumulatedHeal float64
	ComradeATK      float64
}

// Value returns the value a scaling stat reads
func (s ScalingSource) Value(stat combat.ScalingStat) float64 {
	switch stat {
	case combat.ScaleATK:
		return s.ATK
	case combat.ScaleHP:
		return s.HP
	case combat.ScaleDEF:
		return s.DEF
	case combat.ScaleLostHP:
		return s.LostHP
	case combat.ScaleAccumulatedHeal:
		return s.AccumulatedHeal
	case combat.ScaleComradeATK:
		return s.ComradeATK
	default:
		return 0
	}
}

// Base sums stat × multiplier% + flat over the scaling terms
func Base(terms []combat.Scaling, src ScalingSource) float64 {
	var total float64
	for _, t := range terms {
		total += src.Value(t.Stat)*t.Multiplier/100 + t.Flat
	}
	return total
}

// DefMultiplier is the defense mitigation against enemyLevel with shred%
func DefMultiplier(enemyLevel int, shred float64) float64 {
	attacker := float64(AttackerLevel + 20)
	return attacker / (float64(enemyLevel+20)*(1-shred/100) + attacker)
}

// ResMultiplier is 1 minus the enemy's resistance after pen%
func ResMultiplier(resistance, pen float64) float64 {
	return 1 - (resistance - pen/100)
}

// CritMultiplier is the expected crit factor; rate is clamped to [0,100]
func CritMultiplier(rate, dmg float64) float64 {
	rate = max(0, min(rate, 100))
	return 1 + rate/100*dmg/100
}

// FanOut spreads per-target values over the enemy group
func FanOut(shape combat.TargetShape, main, adjacent float64, count int) float64 {
	switch shape {
	case combat.ShapeAoE:
		return main * float64(count)
	case combat.ShapeBlast:
		return main + adjacent*float64(min(2, max(0, count-1)))
	default:
		return main
	}
}

// DamageInput is one damage instance
type DamageInput struct {
	Action  combat.Action
	Source  ScalingSource
	Element combat.Element
	Stats   combat.TotalStats
	Mods    Modifiers
	Enemy   Enemy
}

// DamageOutcome keeps the pipeline's intermediate values
type DamageOutcome struct {
	// Mitigated values are per target and before crit
	MitigatedMain     float64
	MitigatedAdjacent float64
	ExpectedMain      float64
	ExpectedAdjacent  float64
	Total             float64
}

// Damage runs the fixed damage pipeline: base scaling, boosts, defense,
// resistance, incoming damage, expected crit, then fan-out
func Damage(in DamageInput) DamageOutcome {
	main := Base(in.Action.Damage, in.Source)
	var adjacent float64
	if in.Action.Shape == combat.ShapeBlast {
		adjacent = Base(in.Action.Adjacent, in.Source)
	}

	boost := 1 + (in.Mods.DamageBoost+in.Stats.ElementalDmg[in.Element])/100
	mitigation := DefMultiplier(in.Enemy.Level, in.Mods.DefShred) *
		ResMultiplier(in.Enemy.Resistance, in.Mods.ResPen) *
		(1 + in.Mods.DamageTaken/100)
	crit := CritMultiplier(in.Stats.CritRate, in.Stats.CritDmg)

	out := DamageOutcome{
		MitigatedMain:     main * boost * mitigation,
		MitigatedAdjacent: adjacent * boost * mitigation,
	}
	out.ExpectedMain = out.MitigatedMain * crit
	out.ExpectedAdjacent = out.MitigatedAdjacent * crit
	out.Total = FanOut(in.Action.Shape, out.ExpectedMain, out.ExpectedAdjacent, in.Enemy.Count)
	return out
}

// Toughness is the toughness removed by an action with efficiency% boost,
// fanned out over the group
func Toughness(a combat.Action, efficiency float64, count int) float64 {
	k := 1 + efficiency/100
	total := a.Toughness * k
	switch a.Shape {
	case combat.ShapeBlast:
		total += a.AdjacentToughness * k * float64(min(2, max(0, count-1)))
	case combat.ShapeAoE:
		total += a.Toughness * k * float64(max(0, count-1))
	}
	return max(0, total)
}
