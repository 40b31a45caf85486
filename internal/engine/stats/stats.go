// Package stats implements the stat aggregator: it turns a character's
// catalog entry and equipment into base and total stats.
package stats

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Starting crit values every actor has before bonuses
const (
	BaseCritRate = 5
	BaseCritDmg  = 50
)

// Input is everything Compute reads. It is never mutated.
type Input struct {
	Character *combat.Character
	LightCone *combat.LightCone
	// Relics are the summed relic main and sub stats
	Relics combat.StatMap
	// Passives are the slot's equipment, talent and eidolon effects.
	// Only static ones are applied.
	Passives []combat.Effect
	// Summoner is the already-aggregated block of a linked actor's
	// summoner, nil for everyone else
	Summoner *combat.StatBlock
}

// Static reports whether the aggregator bakes e into total stats: a
// self-scoped, unconditional, permanent stat modifier
func Static(e combat.Effect) bool {
	if e.Scope != combat.ScopeSelf || e.Conditional() || !e.Permanent() {
		return false
	}
	_, ok := e.Payload.(combat.StatMod)
	return ok
}

// Compute aggregates stats in a fixed order: base values, relic stats,
// static passives, traces, then self-stat-conditional bonuses
func Compute(in Input) combat.StatBlock {
	if in.Character == nil {
		return combat.StatBlock{}
	}

	base := in.Character.Base
	if in.LightCone != nil {
		base.HP += in.LightCone.Base.HP
		base.ATK += in.LightCone.Base.ATK
		base.DEF += in.LightCone.Base.DEF
	}
	if in.Summoner != nil && in.Character.SummonerHPRatio > 0 {
		base.HP = in.Summoner.Total.HP * in.Character.SummonerHPRatio
	}

	acc := combat.StatMap{
		combat.StatCritRate: BaseCritRate,
		combat.StatCritDmg:  BaseCritDmg,
	}
	acc.Add(in.Relics)
	for _, e := range in.Passives {
		if Static(e) {
			addStatMod(acc, e)
		}
	}
	acc.Add(in.Character.Traces)

	preliminary := combat.StatBlock{Base: base, Total: build(base, acc)}
	for _, e := range in.Character.SelfBonuses {
		if selfBonusActive(e, preliminary, in.Summoner) {
			addStatMod(acc, e)
		}
	}

	return combat.StatBlock{Base: base, Total: build(base, acc)}
}

// WithModifiers layers extra stat contributions on an aggregated block.
// Percent keys scale from base stats; HP/ATK/DEF are rounded again.
func WithModifiers(block combat.StatBlock, mods combat.StatMap) combat.TotalStats {
	out := block.Total.Clone()
	if len(mods) == 0 {
		return out
	}
	b := block.Base
	out.HP = combat.RoundHalfUp(out.HP + b.HP*mods[combat.StatHPPct]/100 + mods[combat.StatHP])
	out.ATK = combat.RoundHalfUp(out.ATK + b.ATK*mods[combat.StatATKPct]/100 + mods[combat.StatATK])
	out.DEF = combat.RoundHalfUp(out.DEF + b.DEF*mods[combat.StatDEFPct]/100 + mods[combat.StatDEF])
	out.SPD += b.SPD*mods[combat.StatSPDPct]/100 + mods[combat.StatSPD]
	out.CritRate += mods[combat.StatCritRate]
	out.CritDmg += mods[combat.StatCritDmg]
	out.EffectRes += mods[combat.StatEffectRes]
	out.EffectHitRate += mods[combat.StatEffectHitRate]
	out.BreakEffect += mods[combat.StatBreakEffect]
	out.EnergyRegen += mods[combat.StatEnergyRegen]
	out.OutgoingHeal += mods[combat.StatOutgoingHeal]
	for _, el := range combat.Elements() {
		if v := mods[el.DamageStat()]; v != 0 {
			if out.ElementalDmg == nil {
				out.ElementalDmg = make(map[combat.Element]float64)
			}
			out.ElementalDmg[el] += v
		}
	}
	return out
}

// StatMods sums the StatMod payloads of effects, scaled by stacks
func StatMods(effects []combat.Effect) combat.StatMap {
	out := combat.StatMap{}
	for _, e := range effects {
		addStatMod(out, e)
	}
	return out
}

func addStatMod(acc combat.StatMap, e combat.Effect) {
	mod, ok := e.Payload.(combat.StatMod)
	if !ok {
		return
	}
	stacks := float64(e.StackCount())
	for k, v := range mod.Stats {
		acc[k] += v * stacks
	}
}

// selfBonusActive checks the stat conditions of a self bonus against
// the preliminary totals, or the summoner's when the condition says so
func selfBonusActive(e combat.Effect, self combat.StatBlock, summoner *combat.StatBlock) bool {
	for _, c := range e.Conditions {
		if c.Kind != combat.CondStatGTE {
			return false
		}
		totals := self.Total
		if c.Subject == combat.SubjectSummoner {
			if summoner == nil {
				return false
			}
			totals = summoner.Total
		}
		v := totals.Get(c.Stat)
		if c.Strict && v <= c.Threshold {
			return false
		}
		if !c.Strict && v < c.Threshold {
			return false
		}
	}
	return true
}

func build(base combat.BaseStats, acc combat.StatMap) combat.TotalStats {
	out := combat.TotalStats{
		HP:            combat.RoundHalfUp(base.HP*(1+acc[combat.StatHPPct]/100) + acc[combat.StatHP]),
		ATK:           combat.RoundHalfUp(base.ATK*(1+acc[combat.StatATKPct]/100) + acc[combat.StatATK]),
		DEF:           combat.RoundHalfUp(base.DEF*(1+acc[combat.StatDEFPct]/100) + acc[combat.StatDEF]),
		SPD:           base.SPD*(1+acc[combat.StatSPDPct]/100) + acc[combat.StatSPD],
		CritRate:      acc[combat.StatCritRate],
		CritDmg:       acc[combat.StatCritDmg],
		EffectRes:     acc[combat.StatEffectRes],
		EffectHitRate: acc[combat.StatEffectHitRate],
		BreakEffect:   acc[combat.StatBreakEffect],
		EnergyRegen:   acc[combat.StatEnergyRegen],
		OutgoingHeal:  acc[combat.StatOutgoingHeal],
		ElementalDmg:  make(map[combat.Element]float64),
	}
	for _, el := range combat.Elements() {
		if v := acc[el.DamageStat()]; v != 0 {
			out.ElementalDmg[el] = v
		}
	}
	return out
}
