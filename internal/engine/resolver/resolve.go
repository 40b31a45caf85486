package resolver

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Heal is stat × multiplier% + flat, raised by heal boost% and the
// healer's outgoing healing, rounded to an integer
func Heal(terms []combat.Scaling, src ScalingSource, healBoost, outgoing float64) float64 {
	if len(terms) == 0 {
		return 0
	}
	return combat.RoundHalfUp(Base(terms, src) * (1 + (healBoost+outgoing)/100))
}

// ShieldAmount scales a base shield by the granter's shield strength%
func ShieldAmount(terms []combat.Scaling, src ScalingSource, strength float64) float64 {
	if len(terms) == 0 {
		return 0
	}
	return Base(terms, src) * (1 + strength/100)
}

// CapShield adds amount onto current without passing capacity. It
// returns the new stored value and the part actually added.
func CapShield(current, amount, capacity float64) (stored, added float64) {
	current = max(0, current)
	stored = min(capacity, current+max(0, amount))
	stored = max(stored, current)
	return stored, stored - current
}

// ResolveInput is one action instance
type ResolveInput struct {
	Action  combat.Action
	Source  ScalingSource
	Element combat.Element
	Stats   combat.TotalStats
	Mods    Modifiers
	Enemy   Enemy
	// ShieldStrength is the granter's shield bonus %
	ShieldStrength float64
}

// Outcome is what one action instance produces before it is applied
type Outcome struct {
	Damage DamageOutcome
	// Healing and Shield are per recipient
	Healing   float64
	Shield    float64
	Toughness float64
}

// Resolve computes damage, healing, shield and toughness for an action
func Resolve(in ResolveInput) Outcome {
	var out Outcome
	if in.Action.DealsDamage() {
		out.Damage = Damage(DamageInput{
			Action:  in.Action,
			Source:  in.Source,
			Element: in.Element,
			Stats:   in.Stats,
			Mods:    in.Mods,
			Enemy:   in.Enemy,
		})
		out.Toughness = Toughness(in.Action, in.Mods.BreakEfficiency, in.Enemy.Count)
	}
	out.Healing = Heal(in.Action.Heal, in.Source, in.Mods.HealBoost, in.Stats.OutgoingHeal)
	out.Shield = ShieldAmount(in.Action.Shield, in.Source, in.ShieldStrength)
	return out
}
