package simulator

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	wildfireShelterTurns = 5

	aeonMaxStacks        = 4
	aeonBreakTurns       = 2
	computationMaxStacks = 5
	computationSpeedHits = 3
	whenHitTurns         = 2
	longevousMaxStacks   = 2
	grandDukeMaxStacks   = 8
	grandDukeTurns       = 3
	messengerTurns       = 1
	priestTurns          = 2
	priestMaxStacks      = 2
	endlessTurns         = 3
	solitaryTurns        = 2

	scholarBoostID = "scholar_next_skill"
)

// special returns the payload of a's first active passive tagged tag
func (r *run) special(a *battle.Actor, tag combat.SpecialTag) (combat.Special, bool) {
	ev := r.st.Evaluator()
	for _, e := range a.Passives {
		if e.SpecialTag() != tag || !ev.IsActive(e, a.Index) {
			continue
		}
		if sp, ok := e.Payload.(combat.Special); ok {
			return sp, true
		}
	}
	return combat.Special{}, false
}

// specialTotal sums the values of every active passive tagged tag
func (r *run) specialTotal(a *battle.Actor, tag combat.SpecialTag) float64 {
	ev := r.st.Evaluator()
	var total float64
	for _, e := range a.Passives {
		if e.SpecialTag() != tag || !ev.IsActive(e, a.Index) {
			continue
		}
		if sp, ok := e.Payload.(combat.Special); ok {
			total += sp.Value
		}
	}
	return total
}

func boostAll(v float64) combat.DamageBoost {
	return combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategoryAll: v}}
}

func statMod(key combat.StatKey, v float64) combat.StatMod {
	return combat.StatMod{Stats: combat.StatMap{key: v}}
}

// actionTriggers runs the equipment that reacts to a's own action
func (r *run) actionTriggers(a *battle.Actor, res hooks.Result, supported []*battle.Actor) {
	st := r.st
	key := res.Key

	if res.Attack {
		if sp, ok := r.special(a, combat.TagAeonStack); ok {
			a.Buffs.Apply(combat.Effect{
				ID: "aeon_atk_stack", Source: "On the Fall of an Aeon", Scope: combat.ScopeSelf,
				Payload: statMod(combat.StatATKPct, sp.Value), Duration: combat.Unbounded,
				MaxStacks: aeonMaxStacks, Owner: a.Index,
			})
		}
		if sp, ok := r.special(a, combat.TagComputationStack); ok {
			for range max(1, res.Hits) {
				a.Buffs.Apply(combat.Effect{
					ID: "computation_atk_stack", Source: "Sagacity", Scope: combat.ScopeSelf,
					Payload: statMod(combat.StatATKPct, sp.Value), Duration: 1,
					MaxStacks: computationMaxStacks, Owner: a.Index,
				})
			}
		}
		if sp, ok := r.special(a, combat.TagComputationSpeed); ok && res.Hits >= computationSpeedHits {
			a.Buffs.Apply(combat.Effect{
				ID: "computation_spd", Source: "Sagacity", Scope: combat.ScopeSelf,
				Payload: statMod(combat.StatSPDPct, sp.Value), Duration: 1, Owner: a.Index,
			})
		}
		if res.Turn {
			if sp, ok := r.special(a, combat.TagEnergyOnAttack); ok {
				st.AddEnergy(a, sp.Value)
			}
			if sp, ok := r.special(a, combat.TagEnergyOnHit); ok {
				st.AddEnergy(a, sp.Value)
			}
		}
	}

	switch key {
	case combat.ActionBasic:
		if sp, ok := r.special(a, combat.TagBasicSelfHeal); ok {
			r.Heal(a, a, []combat.Scaling{{Stat: combat.ScaleHP, Multiplier: sp.Value, Flat: sp.Flat}}, "What Is Real?")
		}
	case combat.ActionSkill:
		a.Buffs.Remove(scholarBoostID)
		r.priest(a, supported)
	case combat.ActionFollowUp:
		if sp, ok := r.special(a, combat.TagFollowUpAtkStack); ok {
			for range max(1, res.Hits) {
				a.Buffs.Apply(combat.Effect{
					ID: "grand_duke_atk", Source: "The Grand Duke", Scope: combat.ScopeSelf,
					Payload: statMod(combat.StatATKPct, sp.Value), Duration: grandDukeTurns,
					MaxStacks: grandDukeMaxStacks, Owner: a.Index,
				})
			}
		}
	case combat.ActionUltimate:
		r.ultimateTriggers(a)
		r.priest(a, supported)
	}
}

// ultimateTriggers runs the equipment that reacts to a's ultimate
func (r *run) ultimateTriggers(a *battle.Actor) {
	st := r.st
	if sp, ok := r.special(a, combat.TagAdvanceOnUltimate); ok {
		scheduler.AdvanceForward(a, sp.Value/100)
	}
	if sp, ok := r.special(a, combat.TagPartyAdvanceOnUlt); ok {
		for _, ally := range st.Allies() {
			scheduler.AdvanceForward(ally, sp.Value/100)
		}
	}
	if sp, ok := r.special(a, combat.TagPartySpeedOnUlt); ok {
		st.Party.Apply(combat.Effect{
			ID: "messenger_spd", Source: "Messenger Traversing Hackerspace", Scope: combat.ScopeAllies,
			Payload: statMod(combat.StatSPDPct, sp.Value), Duration: messengerTurns, Owner: a.Index,
		})
	}
	if sp, ok := r.special(a, combat.TagNextSkillBoost); ok {
		a.Buffs.Put(combat.Effect{
			ID: scholarBoostID, Source: "Pioneer Diver of Dead Waters", Scope: combat.ScopeSelf,
			Payload:  combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategorySkill: sp.Value}},
			Duration: combat.Unbounded, Owner: a.Index,
		})
	}
	if sp, ok := r.special(a, combat.TagPartyBoostOnUlt); ok {
		st.Party.Put(combat.Effect{
			ID: "endless_memories_dmg", Source: "Endless Memories", Scope: combat.ScopeAllies,
			Payload: boostAll(sp.Value), Duration: endlessTurns, Owner: a.Index,
		})
	}
	if sp, ok := r.special(a, combat.TagDotBoostOnUlt); ok {
		a.Buffs.Put(combat.Effect{
			ID: "solitary_dot_dmg", Source: "Solitary Healing", Scope: combat.ScopeSelf,
			Payload:  combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategoryDot: sp.Value}},
			Duration: solitaryTurns, Owner: a.Index,
		})
	}
}

// priest raises CRIT DMG on the allies a's skill or ultimate supported
func (r *run) priest(a *battle.Actor, supported []*battle.Actor) {
	sp, ok := r.special(a, combat.TagCritDmgOnShield)
	if !ok {
		return
	}
	seen := make(map[int]bool)
	for _, ally := range supported {
		if ally == a || seen[ally.Index] {
			continue
		}
		seen[ally.Index] = true
		ally.Buffs.Apply(combat.Effect{
			ID: "priest_crit_dmg", Source: "Sacerdos' Relived Ordeal", Scope: combat.ScopeSelf,
			Payload: statMod(combat.StatCritDmg, sp.Value), Duration: priestTurns,
			MaxStacks: priestMaxStacks, Owner: a.Index,
		})
	}
}

// hitTriggers runs the equipment that reacts to target taking an enemy hit
func (r *run) hitTriggers(target *battle.Actor) {
	if !target.Active() {
		return
	}
	if sp, ok := r.special(target, combat.TagCritDmgWhenHit); ok {
		target.Buffs.Put(combat.Effect{
			ID: "ninjitsu_crit_dmg", Source: "Ninjutsu Inscription", Scope: combat.ScopeSelf,
			Payload: statMod(combat.StatCritDmg, sp.Value), Duration: whenHitTurns, Owner: target.Index,
		})
	}
	if sp, ok := r.special(target, combat.TagCritRateWhenHit); ok {
		target.Buffs.Apply(combat.Effect{
			ID: "longevous_crit_rate", Source: "Longevous Disciple", Scope: combat.ScopeSelf,
			Payload: statMod(combat.StatCritRate, sp.Value), Duration: whenHitTurns,
			MaxStacks: longevousMaxStacks, Owner: target.Index,
		})
	}
	if sp, ok := r.special(target, combat.TagEnergyOnHit); ok {
		r.st.AddEnergy(target, sp.Value)
	}
}

// breakEnemy deals a's weakness break, attaches its status and lets
// break reactions run
func (r *run) breakEnemy(a *battle.Actor) {
	st := r.st
	dmg := st.DealDamage(a, r.BreakDamage(a))
	st.Record(a, "Weakness Break", battle.Amounts{Damage: dmg})

	if status, ok := resolver.BreakDebuff(a.Character.Element, a.Stats.BreakEffect, st.Params.Elite, a.Index); ok {
		st.Debuffs.Apply(status.Effect)
		if status.Delay > 0 {
			scheduler.Delay(st.Enemy, status.Delay)
		}
	}
	if sp, ok := r.special(a, combat.TagEnergyOnBreak); ok {
		st.AddEnergy(a, sp.Value)
	}
	if sp, ok := r.special(a, combat.TagAeonBreak); ok {
		a.Buffs.Put(combat.Effect{
			ID: "aeon_break_dmg", Source: "On the Fall of an Aeon", Scope: combat.ScopeSelf,
			Payload: boostAll(sp.Value), Duration: aeonBreakTurns, Owner: a.Index,
		})
	}
	r.publish(EventBreak, a, st.Enemy, map[string]any{"damage": dmg})

	for i, h := range r.hooks {
		if other := st.Actors[i]; other.Present {
			h.EnemyBreak(r, other, a)
		}
	}
}

// openingHeals restores a share of every ally's missing HP once the
// techniques have run
func (r *run) openingHeals() {
	for _, a := range r.st.Members() {
		sp, ok := r.special(a, combat.TagOpeningHeal)
		if !ok {
			continue
		}
		var total float64
		for _, t := range r.st.Targets() {
			total += r.st.Heal(a, t, (t.MaxHP()-t.HP)*sp.Value/100)
		}
		if total > 0 {
			r.st.Record(a, "Teary-Eyed", battle.Amounts{Healing: total})
		}
	}
}

// onHeal observes every heal: hooks see it and the war god set marks a
// healer who healed someone else
func (r *run) onHeal(healer, target *battle.Actor, amount float64) {
	for i, h := range r.hooks {
		if a := r.st.Actors[i]; a.Present {
			h.Healed(r, a, healer, target, amount)
		}
	}
	if healer == nil || healer == target {
		return
	}
	if sp, ok := r.special(healer, combat.TagHealTriggerBuff); ok {
		healer.Buffs.Put(combat.Effect{
			ID: combat.StateHeartOfCiyu, Source: "Heart of Ciyu", Scope: combat.ScopeSelf,
			Duration: int(sp.Value), Owner: healer.Index,
		})
	}
}
