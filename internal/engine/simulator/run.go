package simulator

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/stats"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// run is the state of one simulation. It implements hooks.Runner so
// character hooks can act through it.
type run struct {
	ctx     context.Context
	id      string
	catalog *catalog.Catalog
	bus     events.EventBus
	roller  dice.Roller

	st *battle.State
	// hooks is indexed like st.Actors
	hooks []hooks.Hook
}

var _ hooks.Runner = (*run)(nil)

func (r *run) State() *battle.State {
	return r.st
}

// Execute resolves one action by a and applies everything it produces
func (r *run) Execute(a *battle.Actor, key combat.ActionKey, opts hooks.Options) hooks.Result {
	res := hooks.Result{Actor: a, Key: key, Turn: opts.Turn}
	act, ok := a.Character.Action(key)
	if !ok || !a.Active() {
		return res
	}
	st := r.st
	res.Attack = act.DealsDamage()

	if opts.Turn {
		switch key {
		case combat.ActionBasic:
			r.GainSP(1)
		case combat.ActionSkill:
			st.SpendSP(1)
		}
	}

	before := make([]float64, len(st.Actors))
	for i, other := range st.Actors {
		before[i] = other.HP
	}

	r.refresh()
	mods := r.modifiers(a, key.Category(), key == combat.ActionAdditional)
	out := resolver.Resolve(resolver.ResolveInput{
		Action:         act,
		Source:         r.Source(a),
		Element:        a.Character.Element,
		Stats:          a.Stats,
		Mods:           mods,
		Enemy:          st.Enemy.Formula,
		ShieldStrength: r.specialTotal(a, combat.TagShieldStrength),
	})

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if out.Damage.Total > 0 {
		res.Damage = st.DealDamage(a, out.Damage.Total*scale)
		res.Hits = hooks.EnemiesHit(act.Shape, st.Enemy.Formula.Count)
	}
	if out.Toughness > 0 {
		res.Toughness = out.Toughness
		res.Broke = st.Enemy.ReduceToughness(out.Toughness)
	}

	// supported are the allies this action healed or shielded
	var supported []*battle.Actor
	if out.Healing > 0 {
		for _, t := range r.healTargets(a, act, opts) {
			if got := st.Heal(a, t, out.Healing); got > 0 {
				res.Healing += got
				supported = append(supported, t)
			}
		}
	}
	if out.Shield > 0 {
		capacity := hooks.ShieldCap(r, a)
		for _, t := range r.supportTargets(a, act, opts) {
			if got := st.GrantShield(a, t, out.Shield, capacity); got > 0 {
				res.Shield += got
				supported = append(supported, t)
			}
		}
	}
	r.applyActionEffects(a, act)

	switch {
	case key == combat.ActionUltimate:
		a.Energy = min(a.MaxEnergy(), act.Energy)
	case !opts.NoEnergy:
		st.GainEnergy(a, act.Energy)
	}
	a.LastAction = key

	label := opts.Label
	if label == "" {
		label = act.Name
	}
	st.Record(a, label, battle.Amounts{Damage: res.Damage, Healing: res.Healing, Shield: res.Shield})
	r.publish(EventAction, a, st.Enemy, map[string]any{
		"action": string(key),
		"damage": res.Damage,
	})

	if res.Broke {
		r.breakEnemy(a)
	}
	for i, other := range st.Actors {
		if i < len(before) && other.HP < before[i] {
			res.Damaged = append(res.Damaged, other)
		}
	}

	r.actionTriggers(a, res, supported)
	if !opts.Quiet {
		r.afterAction(res)
	}
	return res
}

// afterAction runs the reactions to res: ally-damaged hooks, then every
// present actor's after-action hook, then ready ultimates. Reactions
// nest at most MaxChainDepth deep.
func (r *run) afterAction(res hooks.Result) {
	st := r.st
	if st.Depth >= MaxChainDepth {
		st.Record(res.Actor, "chain limit", battle.Amounts{})
		return
	}
	st.Depth++
	defer func() { st.Depth-- }()

	for _, target := range res.Damaged {
		r.allyDamaged(target)
	}
	for i, h := range r.hooks {
		if a := st.Actors[i]; a.Present {
			h.AfterAction(r, a, res)
		}
	}
	r.ultimates()
}

func (r *run) allyDamaged(target *battle.Actor) {
	for i, h := range r.hooks {
		if a := r.st.Actors[i]; a.Present {
			h.AllyDamaged(r, a, target)
		}
	}
}

// Heal resolves terms for healer and applies them to target
func (r *run) Heal(healer, target *battle.Actor, terms []combat.Scaling, label string) float64 {
	if healer == nil || target == nil || !target.Active() {
		return 0
	}
	mods := r.modifiers(healer, combat.CategoryAll, false)
	amount := resolver.Heal(terms, r.Source(healer), mods.HealBoost, healer.Stats.OutgoingHeal)
	got := r.st.Heal(healer, target, amount)
	if got > 0 {
		r.st.Record(healer, label, battle.Amounts{Healing: got})
	}
	return got
}

// Shield grants amount, raised by the granter's shield strength
func (r *run) Shield(granter, target *battle.Actor, amount, capacity float64) float64 {
	if granter == nil {
		return 0
	}
	amount *= 1 + r.specialTotal(granter, combat.TagShieldStrength)/100
	return r.st.GrantShield(granter, target, amount, capacity)
}

// Source is what a's scaling terms read. Spirits with summoner scaling
// read their summoner's ATK, HP and DEF.
func (r *run) Source(a *battle.Actor) resolver.ScalingSource {
	base := a
	if a.Character.SummonerScaling {
		if s := r.st.Actor(a.Summoner); s != nil {
			base = s
		}
	}
	src := resolver.ScalingSource{
		ATK:             base.Stats.ATK,
		HP:              base.Stats.HP,
		DEF:             base.Stats.DEF,
		LostHP:          a.LostHP,
		AccumulatedHeal: a.AccumulatedHeal,
	}
	if comrade := r.st.Actor(r.st.Comrade.Target); comrade != nil {
		src.ComradeATK = comrade.Stats.ATK
	}
	return src
}

// BreakDamage is a's weakness break damage against the enemy as it is now
func (r *run) BreakDamage(a *battle.Actor) float64 {
	return resolver.BreakDamage(r.breakInput(a))
}

func (r *run) breakInput(a *battle.Actor) resolver.BreakInput {
	return resolver.BreakInput{
		Element:     a.Character.Element,
		BreakEffect: a.Stats.BreakEffect,
		DamageTaken: r.modifiers(a, combat.CategoryAll, false).DamageTaken,
		Enemy:       r.st.Enemy.Formula,
	}
}

// GainSP adds skill points and lets hooks react
func (r *run) GainSP(n int) {
	r.st.GainSP(n)
	for i, h := range r.hooks {
		if a := r.st.Actors[i]; a.Active() {
			h.SkillPointsGained(r, a)
		}
	}
}

// Summon brings summoner's spirit onto the field at full HP. Its stats
// are aggregated against the summoner's current totals.
func (r *run) Summon(summoner *battle.Actor) *battle.Actor {
	sp := r.st.Actor(summoner.Spirit)
	if sp == nil {
		return nil
	}
	block := combat.StatBlock{Base: summoner.Static.Base, Total: summoner.Stats.Clone()}
	sp.Static = stats.Compute(stats.Input{
		Character: sp.Character,
		Passives:  sp.Passives,
		Summoner:  &block,
	})
	sp.Stats = sp.Static.Total.Clone()
	sp.Present = true
	sp.Down = false
	sp.HP = sp.MaxHP()
	sp.LostHP = 0
	sp.AV = 0
	sp.AccumulatedHeal = 0
	sp.Shield = battle.Shield{Source: sp.Shield.Source}
	r.refreshActor(sp)
	sp.HP = sp.MaxHP()

	r.st.Record(sp, "Summoned", battle.Amounts{})
	r.publish(EventSummon, summoner, sp, nil)
	return sp
}

// Despawn dismisses a spirit
func (r *run) Despawn(spirit *battle.Actor) {
	if spirit == nil || !spirit.Present {
		return
	}
	r.st.Despawn(spirit)
	r.st.Record(spirit, "Dismissed", battle.Amounts{})
}

// modifiers folds the effects active for an action by a. Damage
// taken increases only count when they sit on the enemy; the ally side
// ones reduce incoming hits instead.
func (r *run) modifiers(a *battle.Actor, category combat.ActionCategory, additional bool) resolver.Modifiers {
	var active []combat.Effect
	for _, e := range r.st.ActiveEffects(a) {
		if _, ok := e.Payload.(combat.DamageTaken); ok && e.Scope != combat.ScopeEnemies {
			continue
		}
		active = append(active, e)
	}
	return resolver.Aggregate(active, resolver.AggregateInput{
		Category:   category,
		Additional: additional,
		MaxEnergy:  a.MaxEnergy(),
		DotCount:   r.st.DotCount(),
		EffectRes:  a.Stats.EffectRes,
	})
}

// healTargets: AoE heals land on every target, single ones on the chosen
// target or the lowest ally
func (r *run) healTargets(a *battle.Actor, act combat.Action, opts hooks.Options) []*battle.Actor {
	if act.Shape == combat.ShapeAoE {
		return r.st.Targets()
	}
	if opts.Target != nil {
		return []*battle.Actor{opts.Target}
	}
	if low := hooks.LowestHP(r.st); low != nil {
		return []*battle.Actor{low}
	}
	return []*battle.Actor{a}
}

// supportTargets: AoE shields land on every target, single ones on the
// chosen target or the actor itself
func (r *run) supportTargets(a *battle.Actor, act combat.Action, opts hooks.Options) []*battle.Actor {
	if act.Shape == combat.ShapeAoE {
		return r.st.Targets()
	}
	if opts.Target != nil {
		return []*battle.Actor{opts.Target}
	}
	return []*battle.Actor{a}
}

// applyActionEffects places the effects an action carries in the store
// matching their scope
func (r *run) applyActionEffects(a *battle.Actor, act combat.Action) {
	for _, e := range act.Effects {
		e = e.WithOwner(a.Index)
		switch e.Scope {
		case combat.ScopeAllies:
			r.st.Party.Apply(e)
		case combat.ScopeEnemies:
			r.st.Debuffs.Apply(e)
		default:
			a.Buffs.Apply(e)
		}
	}
}

// dismissOrphans despawns every present spirit whose summoner is down
func (r *run) dismissOrphans() {
	for _, a := range r.st.Actors {
		if !a.Present || !a.IsSpirit() {
			continue
		}
		if summoner := r.st.Actor(a.Summoner); summoner != nil && summoner.Down {
			r.Despawn(a)
		}
	}
}

// refresh recomputes every present actor, then lets hooks layer their
// dynamic bonuses. HP is clamped only after the hooks ran.
func (r *run) refresh() {
	r.dismissOrphans()
	hp := make([]float64, len(r.st.Actors))
	for i, a := range r.st.Actors {
		hp[i] = a.HP
		if a.Present {
			r.st.Recompute(a)
			a.HP = hp[i]
		}
	}
	for i, h := range r.hooks {
		if a := r.st.Actors[i]; a.Present {
			h.RefreshStats(r.st, a)
		}
	}
	for _, a := range r.st.Actors {
		a.HP = min(a.HP, a.MaxHP())
	}
}

func (r *run) refreshActor(a *battle.Actor) {
	hp := a.HP
	r.st.Recompute(a)
	a.HP = hp
	r.hooks[a.Index].RefreshStats(r.st, a)
	a.HP = min(a.HP, a.MaxHP())
}
