package battle

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

var _ effects.Environment = (*State)(nil)

// HPPercent implements effects.Environment
func (s *State) HPPercent(actor int) float64 {
	a := s.Actor(actor)
	if a == nil {
		return 0
	}
	return a.HPPercent()
}

// Stat implements effects.Environment
func (s *State) Stat(actor int, key combat.StatKey) float64 {
	a := s.Actor(actor)
	if a == nil {
		return 0
	}
	return a.Stats.Get(key)
}

// InState implements effects.Environment. A state holds when a field of
// that name is open, the actor carries the flag or a buff with that id,
// the slot's combat state toggle is on, or for enemy_broken while the
// enemy is broken.
func (s *State) InState(actor int, state string) bool {
	if state == combat.StateEnemyBroken && s.Enemy.Broken {
		return true
	}
	if s.FieldActive(state) {
		return true
	}
	a := s.Actor(actor)
	if a == nil {
		return false
	}
	return a.Flag(state) || a.Config.CombatState[state] || a.Buffs.Has(state)
}

// ShieldSource implements effects.Environment
func (s *State) ShieldSource(actor int) int {
	a := s.Actor(actor)
	if a == nil || a.Shield.Value <= 0 {
		return effects.NoActor
	}
	return a.Shield.Source
}

// Slot implements effects.Environment
func (s *State) Slot(actor int) int {
	a := s.Actor(actor)
	if a == nil {
		return effects.NoActor
	}
	return a.Slot
}

// HasSummon implements effects.Environment
func (s *State) HasSummon(actor int) bool {
	for _, a := range s.Actors {
		if a.Summoner == actor && a.Active() {
			return true
		}
	}
	return false
}

// Summoner implements effects.Environment
func (s *State) Summoner(actor int) int {
	a := s.Actor(actor)
	if a == nil {
		return effects.NoActor
	}
	return a.Summoner
}
