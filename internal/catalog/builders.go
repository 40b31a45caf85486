package catalog

import "github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"

func stat(key combat.StatKey, value float64) combat.StatMod {
	return combat.StatMod{Stats: combat.StatMap{key: value}}
}

func stats(m combat.StatMap) combat.StatMod {
	return combat.StatMod{Stats: m}
}

func boost(value float64, categories ...combat.ActionCategory) combat.DamageBoost {
	out := combat.DamageBoost{Categories: make(map[combat.ActionCategory]float64, len(categories))}
	for _, c := range categories {
		out.Categories[c] = value
	}
	return out
}

func special(tag combat.SpecialTag, value float64) combat.Special {
	return combat.Special{Tag: tag, Value: value}
}

// passive is an always-on effect on the wearer
func passive(id, source string, p combat.Payload, conds ...combat.Condition) combat.Effect {
	return combat.Effect{
		ID:         id,
		Source:     source,
		Scope:      combat.ScopeSelf,
		Payload:    p,
		Duration:   combat.Unbounded,
		Conditions: conds,
	}
}

// aura is an always-on effect on the whole party
func aura(id, source string, p combat.Payload, conds ...combat.Condition) combat.Effect {
	e := passive(id, source, p, conds...)
	e.Scope = combat.ScopeAllies
	return e
}

func timed(id, source string, scope combat.Scope, p combat.Payload, duration int) combat.Effect {
	return combat.Effect{
		ID:       id,
		Source:   source,
		Scope:    scope,
		Payload:  p,
		Duration: duration,
	}
}

func stacking(e combat.Effect, max int) combat.Effect {
	e.MaxStacks = max
	return e
}

// lerp spreads lo..hi evenly across the five ranks; r is zero based
func lerp(lo, hi float64, r int) float64 {
	return lo + (hi-lo)*float64(r)/float64(combat.Ranks-1)
}

func byRank(build func(r int) []combat.Effect) [combat.Ranks][]combat.Effect {
	var out [combat.Ranks][]combat.Effect
	for r := 0; r < combat.Ranks; r++ {
		out[r] = build(r)
	}
	return out
}

func single(key combat.ActionKey, name string, toughness, energy float64, dmg ...combat.Scaling) combat.Action {
	return combat.Action{
		Key:       key,
		Name:      name,
		Shape:     combat.ShapeSingle,
		Damage:    dmg,
		Toughness: toughness,
		Energy:    energy,
	}
}

func aoe(key combat.ActionKey, name string, toughness, energy float64, dmg ...combat.Scaling) combat.Action {
	a := single(key, name, toughness, energy, dmg...)
	a.Shape = combat.ShapeAoE
	return a
}

func blast(key combat.ActionKey, name string, toughness, adjToughness, energy float64, main, adj []combat.Scaling) combat.Action {
	return combat.Action{
		Key:               key,
		Name:              name,
		Shape:             combat.ShapeBlast,
		Damage:            main,
		Adjacent:          adj,
		Toughness:         toughness,
		AdjacentToughness: adjToughness,
		Energy:            energy,
	}
}

func kit(actions ...combat.Action) map[combat.ActionKey]combat.Action {
	out := make(map[combat.ActionKey]combat.Action, len(actions))
	for _, a := range actions {
		out[a.Key] = a
	}
	return out
}

func withEffects(a combat.Action, effects ...combat.Effect) combat.Action {
	a.Effects = append(a.Effects, effects...)
	return a
}

func withHeal(a combat.Action, heal ...combat.Scaling) combat.Action {
	a.Heal = heal
	return a
}

func withShield(a combat.Action, shield ...combat.Scaling) combat.Action {
	a.Shield = shield
	return a
}

func scaleFlat(s combat.ScalingStat, multiplier, flat float64) combat.Scaling {
	return combat.Scaling{Stat: s, Multiplier: multiplier, Flat: flat}
}
