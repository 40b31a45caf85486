package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

func eidolon(a *battle.Actor) int {
	return a.Config.EidolonLevel
}

// note logs a line with no amounts
func note(r Runner, a *battle.Actor, action string) {
	r.State().Record(a, action, battle.Amounts{})
}

// memberAt finds the non-spirit actor placed from slot
func memberAt(st *battle.State, slot int) *battle.Actor {
	if slot < 0 {
		return nil
	}
	for _, a := range st.Members() {
		if a.Slot == slot {
			return a
		}
	}
	return nil
}

// spiritOf returns the spirit linked to a, nil when it has none
func spiritOf(st *battle.State, a *battle.Actor) *battle.Actor {
	return st.Actor(a.Spirit)
}

// EnemiesHit is how many enemies an action's shape lands on
func EnemiesHit(shape combat.TargetShape, count int) int {
	switch shape {
	case combat.ShapeAoE:
		return count
	case combat.ShapeBlast:
		return min(3, count)
	default:
		return min(1, count)
	}
}

// LowestHP is the active targetable actor with the lowest HP percentage
func LowestHP(st *battle.State) *battle.Actor {
	var out *battle.Actor
	for _, a := range st.Targets() {
		if out == nil || a.HPPercent() < out.HPPercent() {
			out = a
		}
	}
	return out
}

// lowestShield is the active member with the smallest shield
func lowestShield(st *battle.State) *battle.Actor {
	var out *battle.Actor
	for _, a := range st.Allies() {
		if out == nil || a.Shield.Value < out.Shield.Value {
			out = a
		}
	}
	return out
}

// healTerms returns the heal terms of a's action, nil when it has none
func healTerms(a *battle.Actor, key combat.ActionKey) []combat.Scaling {
	act, ok := a.Character.Action(key)
	if !ok {
		return nil
	}
	return act.Heal
}

func shieldTerms(a *battle.Actor, key combat.ActionKey) []combat.Scaling {
	act, ok := a.Character.Action(key)
	if !ok {
		return nil
	}
	return act.Shield
}
