// Package hooks holds the per-character mechanics the generic engine
// can't express as data: resource counters, fields, summons, follow-up
// attacks and custom turn logic.
package hooks

//go:generate mockgen -destination=mock/mock_runner.go -package=hooksmock github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks Runner

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Options tune a single Execute call
type Options struct {
	// Turn marks the actor's turn action; basics and skills then move
	// skill points
	Turn bool
	// Target receives single-target heals and shields, nil means the actor
	Target *battle.Actor
	// Label replaces the action name in the log
	Label string
	// Scale multiplies damage, zero means 1
	Scale float64
	// Quiet skips post-action triggers
	Quiet bool
	// NoEnergy skips the energy the action normally grants
	NoEnergy bool
}

// Result is what an executed action did
type Result struct {
	// Actor is nil for enemy attacks
	Actor  *battle.Actor
	Key    combat.ActionKey
	Turn   bool
	Attack bool
	// Hits is the number of enemies the action landed on
	Hits      int
	Damage    float64
	Healing   float64
	Shield    float64
	Toughness float64
	Broke     bool
	// Damaged are the actors that lost HP during the action
	Damaged []*battle.Actor
}

// By reports whether a performed the action
func (r Result) By(a *battle.Actor) bool {
	return r.Actor != nil && r.Actor == a
}

// ByAlly reports an action by a party member other than self. Spirits
// don't count.
func (r Result) ByAlly(self *battle.Actor) bool {
	return r.Actor != nil && r.Actor != self && !r.Actor.IsSpirit()
}

// ByMember reports an action by any non-spirit party member, self included
func (r Result) ByMember() bool {
	return r.Actor != nil && !r.Actor.IsSpirit()
}

// Runner is the slice of the simulator hooks drive
type Runner interface {
	State() *battle.State
	// Execute resolves and applies one action of actor
	Execute(actor *battle.Actor, key combat.ActionKey, opts Options) Result
	// Heal applies a heal from healer scaled by terms and returns the amount
	Heal(healer, target *battle.Actor, terms []combat.Scaling, label string) float64
	// Shield grants amount, raised by granter's shield strength, up to capacity
	Shield(granter, target *battle.Actor, amount, capacity float64) float64
	// Source is what a's scaling terms read right now
	Source(a *battle.Actor) resolver.ScalingSource
	// BreakDamage is a's break damage against the enemy right now
	BreakDamage(a *battle.Actor) float64
	// GainSP adds party skill points and notifies every hook
	GainSP(n int)
	// Summon brings summoner's spirit onto the field
	Summon(summoner *battle.Actor) *battle.Actor
	// Despawn dismisses a spirit
	Despawn(spirit *battle.Actor)
}

// Hook is the set of extension points a character can react to. Every
// method is called for every present actor; self is the hook's actor.
type Hook interface {
	// BattleStart runs once after the party is placed
	BattleStart(r Runner, self *battle.Actor)
	// Technique runs after the generic technique when the slot uses it
	Technique(r Runner, self *battle.Actor)
	// BeforeTurn runs before any unit takes its turn
	BeforeTurn(r Runner, self *battle.Actor)
	// TakeTurn plays self's turn. Returning false falls back to the
	// rotation.
	TakeTurn(r Runner, self *battle.Actor) bool
	// AfterAction sees every action, self's own included
	AfterAction(r Runner, self *battle.Actor, res Result)
	// AllyDamaged runs once per actor that lost HP
	AllyDamaged(r Runner, self, target *battle.Actor)
	// EnemyBreak runs after the enemy's toughness hits zero
	EnemyBreak(r Runner, self, breaker *battle.Actor)
	// EnemyRecovery runs when the broken enemy would recover. Returning
	// true keeps it broken and ends its turn.
	EnemyRecovery(r Runner, self *battle.Actor) bool
	// SkillPointsGained runs after the party gains skill points
	SkillPointsGained(r Runner, self *battle.Actor)
	// Healed sees every applied heal
	Healed(r Runner, self, healer, target *battle.Actor, amount float64)
	// RefreshStats adjusts totals after the per-tick recompute
	RefreshStats(st *battle.State, self *battle.Actor)
	// TurnEnd runs at the end of self's turn
	TurnEnd(r Runner, self *battle.Actor)
}

// Base implements every Hook method as a no-op
type Base struct{}

var _ Hook = Base{}

func (Base) BattleStart(Runner, *battle.Actor)                                   {}
func (Base) Technique(Runner, *battle.Actor)                                     {}
func (Base) BeforeTurn(Runner, *battle.Actor)                                    {}
func (Base) TakeTurn(Runner, *battle.Actor) bool                                 { return false }
func (Base) AfterAction(Runner, *battle.Actor, Result)                           {}
func (Base) AllyDamaged(Runner, *battle.Actor, *battle.Actor)                    {}
func (Base) EnemyBreak(Runner, *battle.Actor, *battle.Actor)                     {}
func (Base) EnemyRecovery(Runner, *battle.Actor) bool                            { return false }
func (Base) SkillPointsGained(Runner, *battle.Actor)                             {}
func (Base) Healed(Runner, *battle.Actor, *battle.Actor, *battle.Actor, float64) {}
func (Base) RefreshStats(*battle.State, *battle.Actor)                           {}
func (Base) TurnEnd(Runner, *battle.Actor)                                       {}

// Factory builds a fresh hook for one run
type Factory func() Hook

// Registry maps character ids to hook factories
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry with every catalog character's hook
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(catalog.Blade, func() Hook { return &Blade{} })
	r.Register(catalog.Archer, func() Hook { return &Archer{} })
	r.Register(catalog.Toribii, func() Hook { return &Toribii{} })
	r.Register(catalog.Hanya, func() Hook { return &Hanya{} })
	r.Register(catalog.Luocha, func() Hook { return &Luocha{} })
	r.Register(catalog.Xianci, func() Hook { return &Xianci{} })
	r.Register(catalog.Icarun, func() Hook { return &Icarun{} })
	r.Register(catalog.RuanMei, func() Hook { return &RuanMei{} })
	r.Register(catalog.DanHengTengHuang, func() Hook { return &DanHengTengHuang{} })
	r.Register(catalog.DragonSpirit, func() Hook { return &Dragon{} })
	return r
}

// Register binds a factory to a character id, replacing any earlier one
func (r *Registry) Register(id string, f Factory) {
	r.factories[id] = f
}

// For builds the hook for a character id; unknown ids get Base
func (r *Registry) For(id string) Hook {
	if f, ok := r.factories[id]; ok {
		return f()
	}
	return Base{}
}
