// Package battle holds the mutable state of one simulation run: the
// actor arena, the enemy proxy, party resources, effect stores, named
// fields and the accumulators the result is built from.
package battle

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/stats"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Skill point rules
const (
	StartingSkillPoints = 3
	BaseMaxSkillPoints  = 5
)

// Field is a named, timed combat state owned by one actor
type Field struct {
	Owner    int
	Duration int
}

// Pair links a source actor to the ally it marked
type Pair struct {
	Source int
	Target int
}

// Unpaired is the zero pairing
var Unpaired = Pair{Source: effects.NoActor, Target: effects.NoActor}

// State is the context object every engine component reads and
// mutates. It is owned by a single run and never shared.
type State struct {
	Params combat.EncounterParams
	Actors []*Actor
	Enemy  *Enemy

	SP    int
	MaxSP int

	// Party holds allies-scoped timed buffs, Debuffs enemy-scoped ones
	Party   *effects.Store
	Debuffs *effects.Store

	Fields  map[string]Field
	Comrade Pair

	Tick int
	// Depth is the current post-action trigger nesting
	Depth int
	Log   []combat.LogEntry

	// OnHeal observes every applied heal
	OnHeal func(healer, target *Actor, amount float64)

	eval *effects.Evaluator
}

// New returns an empty state for an encounter
func New(params combat.EncounterParams) *State {
	params = params.WithDefaults()
	s := &State{
		Params:  params,
		Enemy:   NewEnemy(params),
		SP:      StartingSkillPoints,
		MaxSP:   BaseMaxSkillPoints,
		Party:   effects.NewStore(),
		Debuffs: effects.NewStore(),
		Fields:  make(map[string]Field),
		Comrade: Unpaired,
	}
	s.eval = effects.NewEvaluator(s)
	return s
}

// Evaluator returns the condition evaluator bound to this state
func (s *State) Evaluator() *effects.Evaluator {
	return s.eval
}

// AddActor places a into the arena and returns its index
func (s *State) AddActor(a *Actor) int {
	a.Index = len(s.Actors)
	s.Actors = append(s.Actors, a)
	return a.Index
}

// Actor returns the actor at idx, nil when out of range
func (s *State) Actor(idx int) *Actor {
	if idx < 0 || idx >= len(s.Actors) {
		return nil
	}
	return s.Actors[idx]
}

// ByCharacter returns the first actor with the catalog id
func (s *State) ByCharacter(id string) *Actor {
	for _, a := range s.Actors {
		if a.Character.ID == id {
			return a
		}
	}
	return nil
}

// Units lists every turn-order participant, actors first
func (s *State) Units() []scheduler.Unit {
	out := make([]scheduler.Unit, 0, len(s.Actors)+1)
	for _, a := range s.Actors {
		out = append(out, a)
	}
	return append(out, s.Enemy)
}

// Members are the non-spirit party members in slot order
func (s *State) Members() []*Actor {
	var out []*Actor
	for _, a := range s.Actors {
		if !a.IsSpirit() {
			out = append(out, a)
		}
	}
	return out
}

// Targets are the active actors enemy attacks and party heals can land on
func (s *State) Targets() []*Actor {
	var out []*Actor
	for _, a := range s.Actors {
		if a.Active() && a.Targetable() {
			out = append(out, a)
		}
	}
	return out
}

// Allies are the active non-spirit members
func (s *State) Allies() []*Actor {
	var out []*Actor
	for _, a := range s.Actors {
		if a.Active() && !a.IsSpirit() {
			out = append(out, a)
		}
	}
	return out
}

// GainSP adds skill points up to the cap and returns the new total
func (s *State) GainSP(n int) int {
	s.SP = min(s.MaxSP, s.SP+n)
	return s.SP
}

// SpendSP consumes n skill points when available
func (s *State) SpendSP(n int) bool {
	if s.SP < n {
		return false
	}
	s.SP -= n
	return true
}

// GainEnergy adds amount scaled by energy regen, capped at the ultimate
// cost, and returns the gain
func (s *State) GainEnergy(a *Actor, amount float64) float64 {
	return s.AddEnergy(a, amount*(1+a.Stats.EnergyRegen/100))
}

// AddEnergy adds a flat amount, capped at the ultimate cost
func (s *State) AddEnergy(a *Actor, amount float64) float64 {
	if amount <= 0 || a.MaxEnergy() <= 0 {
		return 0
	}
	before := a.Energy
	a.Energy = min(a.MaxEnergy(), a.Energy+amount)
	return a.Energy - before
}

// Heal restores HP on target up to its max. The full amount counts
// toward the healer's and target's totals.
func (s *State) Heal(healer, target *Actor, amount float64) float64 {
	if target == nil || !target.Active() || amount <= 0 {
		return 0
	}
	target.HP = min(target.MaxHP(), target.HP+amount)
	target.HealingReceived += amount
	if healer != nil {
		healer.HealingDone += amount
	}
	if s.OnHeal != nil {
		s.OnHeal(healer, target, amount)
	}
	return amount
}

// GrantShield adds amount to target's shield without passing capacity
// and returns what was actually added
func (s *State) GrantShield(source, target *Actor, amount, capacity float64) float64 {
	if target == nil || !target.Active() || amount <= 0 {
		return 0
	}
	stored, added := resolver.CapShield(target.Shield.Value, amount, capacity)
	target.Shield.Value = stored
	target.Shield.Capacity = capacity
	if source != nil {
		target.Shield.Source = source.Index
		source.ShieldGranted += added
	}
	return added
}

// TakeHit lands an enemy hit on target: the shield absorbs first, HP
// never goes below zero and an actor at zero is down
func (s *State) TakeHit(target *Actor, amount float64) (absorbed, dealt float64) {
	if target == nil || !target.Active() || amount <= 0 {
		return 0, 0
	}
	absorbed = min(amount, target.Shield.Value)
	target.Shield.Value -= absorbed
	dealt = min(amount-absorbed, target.HP)
	target.HP -= dealt
	target.LostHP += dealt
	if target.HP <= 0 {
		s.KnockDown(target)
	}
	return absorbed, dealt
}

// PayHP consumes HP as an action cost. It never downs the actor.
func (s *State) PayHP(a *Actor, amount float64) float64 {
	if amount <= 0 || a.HP <= 1 {
		return 0
	}
	paid := min(amount, a.HP-1)
	a.HP -= paid
	a.LostHP += paid
	return paid
}

// SetHP clamps hp into 0..max
func (s *State) SetHP(a *Actor, hp float64) {
	a.HP = max(0, min(a.MaxHP(), hp))
}

// KnockDown removes a from the turn order
func (s *State) KnockDown(a *Actor) {
	a.HP = 0
	a.Down = true
	a.AV = 0
	a.Shield.Value = 0
}

// Despawn dismisses a summoned spirit
func (s *State) Despawn(a *Actor) {
	s.KnockDown(a)
	a.Present = false
}

// DealDamage credits damage to a and the enemy group
func (s *State) DealDamage(a *Actor, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if a != nil {
		a.DamageDealt += amount
	}
	s.Enemy.DamageTaken += amount
	return amount
}

// SetField opens (or refreshes) a named field
func (s *State) SetField(name string, owner, duration int) {
	s.Fields[name] = Field{Owner: owner, Duration: duration}
}

// FieldActive reports an open field
func (s *State) FieldActive(name string) bool {
	_, ok := s.Fields[name]
	return ok
}

// FieldOwner is the actor that opened a field, or NoActor
func (s *State) FieldOwner(name string) int {
	f, ok := s.Fields[name]
	if !ok {
		return effects.NoActor
	}
	return f.Owner
}

// ClearField closes a field
func (s *State) ClearField(name string) {
	delete(s.Fields, name)
}

// TickFields counts down fields owned by owner and returns the closed ones
func (s *State) TickFields(owner int) []string {
	var closed []string
	for _, name := range slices.Sorted(maps.Keys(s.Fields)) {
		f := s.Fields[name]
		if f.Owner != owner || f.Duration >= combat.Unbounded {
			continue
		}
		f.Duration--
		if f.Duration <= 0 {
			delete(s.Fields, name)
			closed = append(closed, name)
			continue
		}
		s.Fields[name] = f
	}
	return closed
}

// TickOwner counts down every effect owned by owner across all stores
func (s *State) TickOwner(owner int) []string {
	var expired []string
	for _, a := range s.Actors {
		expired = append(expired, a.Buffs.Tick(owner)...)
	}
	expired = append(expired, s.Party.Tick(owner)...)
	return append(expired, s.Debuffs.Tick(owner)...)
}

// Auras are the allies-scoped passives of every active actor
func (s *State) Auras() []combat.Effect {
	var out []combat.Effect
	for _, a := range s.Actors {
		if !a.Active() {
			continue
		}
		for _, e := range a.Passives {
			if e.Scope == combat.ScopeAllies {
				out = append(out, e)
			}
		}
	}
	return out
}

// dynamicPassives are the self passives the aggregator did not bake in
func dynamicPassives(a *Actor) []combat.Effect {
	var out []combat.Effect
	for _, e := range a.Passives {
		if e.Scope == combat.ScopeSelf && !stats.Static(e) {
			out = append(out, e)
		}
	}
	return out
}

// ActiveEffects lists every effect currently active for a: its own
// buffs, party buffs, dynamic passives, other actors' auras and the
// debuffs on the enemy
func (s *State) ActiveEffects(a *Actor) []combat.Effect {
	return s.ActiveEffectsOn(a, effects.NoActor)
}

// ActiveEffectsOn is ActiveEffects for an action landing on target
func (s *State) ActiveEffectsOn(a *Actor, target int) []combat.Effect {
	return s.eval.CollectActiveOn(a.Index, target,
		a.Buffs.All(), s.Party.All(), dynamicPassives(a), s.Auras(), s.Debuffs.All())
}

// Recompute rebuilds a's totals from its static block and the stat
// modifiers active right now. Current HP is clamped to the new max.
func (s *State) Recompute(a *Actor) {
	active := s.eval.CollectActive(a.Index,
		a.Buffs.All(), s.Party.All(), dynamicPassives(a), s.Auras())
	a.Stats = stats.WithModifiers(a.Static, stats.StatMods(active))
	if a.HP > a.Stats.HP {
		a.HP = a.Stats.HP
	}
}

// DotCount is the number of damage-over-time statuses on the enemy
func (s *State) DotCount() int {
	n := 0
	for _, e := range s.Debuffs.All() {
		if e.Dot != nil && e.Dot.Kind.Ticks() {
			n++
		}
	}
	return n
}
