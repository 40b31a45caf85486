// Package effects holds timed and stacked modifiers and decides which of
// them are active at a given instant.
package effects

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Store is an ordered collection of effects keyed by id. Iteration
// follows first insertion so results are deterministic.
type Store struct {
	entries []combat.Effect
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{}
}

func (s *Store) index(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func maxStacks(e combat.Effect) int {
	if e.MaxStacks < 1 {
		return 1
	}
	return e.MaxStacks
}

// Apply adds e. An existing entry with the same id has its duration
// refreshed and its stacks incremented up to the max; otherwise e is
// inserted with at least one stack.
func (s *Store) Apply(e combat.Effect) {
	e = e.Clone()
	if i := s.index(e.ID); i >= 0 {
		prev := s.entries[i]
		e.Stacks = min(prev.StackCount()+1, maxStacks(e))
		s.entries[i] = e
		return
	}
	e.Stacks = min(e.StackCount(), maxStacks(e))
	s.entries = append(s.entries, e)
}

// Put replaces (or inserts) e as given, keeping its position
func (s *Store) Put(e combat.Effect) {
	e = e.Clone()
	e.Stacks = min(e.StackCount(), maxStacks(e))
	if i := s.index(e.ID); i >= 0 {
		s.entries[i] = e
		return
	}
	s.entries = append(s.entries, e)
}

// Remove deletes the entry with id and reports whether it existed
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// RemoveWhere deletes every entry matching fn and returns how many went
func (s *Store) RemoveWhere(fn func(combat.Effect) bool) int {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if fn(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}

// Get returns a copy of the entry with id
func (s *Store) Get(id string) (combat.Effect, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i].Clone(), true
	}
	return combat.Effect{}, false
}

// Has reports whether an entry with id exists
func (s *Store) Has(id string) bool {
	return s.index(id) >= 0
}

// Tick decrements every bounded effect owned by owner and drops those at
// or below zero. It returns the expired ids.
func (s *Store) Tick(owner int) []string {
	return s.tick(func(e combat.Effect) bool { return e.Owner == owner })
}

// TickAll decrements every bounded effect regardless of owner
func (s *Store) TickAll() []string {
	return s.tick(func(combat.Effect) bool { return true })
}

func (s *Store) tick(match func(combat.Effect) bool) []string {
	var expired []string
	kept := s.entries[:0]
	for _, e := range s.entries {
		if match(e) && !e.Permanent() {
			e.Duration--
			if e.Duration <= 0 {
				expired = append(expired, e.ID)
				continue
			}
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return expired
}

// IDs lists entry ids in store order
func (s *Store) IDs() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.ID
	}
	return out
}

// All returns copies of every entry in store order
func (s *Store) All() []combat.Effect {
	out := make([]combat.Effect, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len is the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// Clear drops every entry
func (s *Store) Clear() {
	s.entries = nil
}
