package resolver

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Modifiers is the sum of every active effect relevant to one action
type Modifiers struct {
	DamageBoost     float64
	DefShred        float64
	ResPen          float64
	DamageTaken     float64
	BreakEfficiency float64
	HealBoost       float64
}

// AggregateInput carries what bespoke payloads scale with
type AggregateInput struct {
	Category combat.ActionCategory
	// Additional damage only takes ALL boosts
	Additional bool
	MaxEnergy  float64
	// DotCount is the number of damage-over-time statuses on the enemy
	DotCount  int
	EffectRes float64
}

// Aggregate folds active effects into Modifiers. It is the single
// dispatch point over payload variants; stat modifiers are ignored here
// because the stat recompute already applied them.
func Aggregate(active []combat.Effect, in AggregateInput) Modifiers {
	var m Modifiers
	for _, e := range active {
		stacks := float64(e.StackCount())
		switch p := e.Payload.(type) {
		case combat.DamageBoost:
			m.DamageBoost += p.Categories[combat.CategoryAll] * stacks
			if !in.Additional && in.Category != combat.CategoryAll {
				m.DamageBoost += p.Categories[in.Category] * stacks
			}
		case combat.DefShred:
			m.DefShred += p.Percent * stacks
		case combat.ResPen:
			m.ResPen += p.Percent * stacks
		case combat.DamageTaken:
			m.DamageTaken += p.Percent * stacks
		case combat.BreakEfficiency:
			m.BreakEfficiency += p.Percent * stacks
		case combat.HealBoost:
			if p.Only == "" || p.Only == in.Category {
				m.HealBoost += p.Percent * stacks
			}
		case combat.Special:
			applySpecial(&m, p, in)
		}
	}
	return m
}

func applySpecial(m *Modifiers, p combat.Special, in AggregateInput) {
	switch p.Tag {
	case combat.TagMaxEnergyBoost:
		m.DamageBoost += p.Value * in.MaxEnergy
	case combat.TagPerDotDefShred:
		m.DefShred += p.Value * float64(min(3, in.DotCount))
	case combat.TagResToHeal:
		m.HealBoost += min(p.Cap, in.EffectRes*p.Value/100)
	}
}
