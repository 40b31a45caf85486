package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	// burdenHits is how many ally hits recover one skill point
	burdenHits = 2
	// burdenRecoveries ends Burden after this many skill points
	burdenRecoveries = 2
	burdenEnergy     = 2
	hanyaUltTurns    = 2
	// hanyaUltSpeed is the share of Hanya's SPD her ultimate grants
	hanyaUltSpeed = 0.2
	hanyaUltID    = "hanya_ult_atk"
)

var (
	hanyaBurdenATK = combat.Effect{
		ID:       "hanya_burden_atk",
		Source:   "Burden",
		Scope:    combat.ScopeSelf,
		Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatATKPct: 10}},
		Duration: 1,
	}
	hanyaBurdenDMG = combat.Effect{
		ID:       "hanya_burden_dmg",
		Source:   "Sanction",
		Scope:    combat.ScopeSelf,
		Payload:  combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategoryAll: 30}},
		Duration: 2,
	}
	hanyaE2Speed = combat.Effect{
		ID:       "hanya_e2_spd",
		Source:   "Eidolon 2",
		Scope:    combat.ScopeSelf,
		Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatSPD: 20}},
		Duration: 1,
	}
	hanyaUlt = combat.Effect{
		ID:       hanyaUltID,
		Source:   "Ten-Lords' Decree",
		Scope:    combat.ScopeSelf,
		Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatATKPct: 60}},
		Duration: hanyaUltTurns,
	}
)

// Hanya marks the enemy with Burden: every second ally hit on it
// recovers a skill point, twice per Burden. Her ultimate lends one
// ally a share of her speed and an attack buff.
type Hanya struct {
	Base
	burden     bool
	hits       int
	recoveries int
}

var _ Hook = (*Hanya)(nil)

func (h *Hanya) Technique(_ Runner, _ *battle.Actor) {
	h.mark()
}

func (h *Hanya) AfterAction(r Runner, self *battle.Actor, res Result) {
	if !self.Active() || !res.ByMember() {
		return
	}
	if res.By(self) {
		switch res.Key {
		case combat.ActionSkill:
			h.mark()
			if eidolon(self) >= 2 {
				self.Buffs.Apply(hanyaE2Speed.WithOwner(self.Index))
			}
		case combat.ActionUltimate:
			h.ultimate(r, self)
			return
		}
	}
	if !h.burden || !res.Attack {
		return
	}
	dmg := hanyaBurdenDMG
	if eidolon(self) >= 6 {
		dmg.Payload = combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategoryAll: 40}}
	}
	res.Actor.Buffs.Apply(dmg.WithOwner(res.Actor.Index))

	h.hits++
	if h.hits%burdenHits != 0 {
		return
	}
	h.recoveries++
	r.GainSP(1)
	r.State().GainEnergy(self, burdenEnergy)
	res.Actor.Buffs.Apply(hanyaBurdenATK.WithOwner(res.Actor.Index))
	note(r, self, "Burden (SP)")
	if h.recoveries >= burdenRecoveries {
		h.burden = false
	}
}

// RefreshStats grants the ultimate's target 20% of Hanya's current SPD
func (h *Hanya) RefreshStats(st *battle.State, self *battle.Actor) {
	for _, a := range st.Actors {
		e, ok := a.Buffs.Get(hanyaUltID)
		if !ok || e.Owner != self.Index {
			continue
		}
		a.Stats.SPD += self.Stats.SPD * hanyaUltSpeed
	}
}

func (h *Hanya) mark() {
	h.burden = true
	h.hits = 0
	h.recoveries = 0
}

func (h *Hanya) ultimate(r Runner, self *battle.Actor) {
	target := memberAt(r.State(), self.Config.UltimateTarget)
	if target == nil || !target.Active() {
		target = self
	}
	buff := hanyaUlt
	if eidolon(self) >= 4 {
		buff.Duration++
	}
	target.Buffs.Apply(buff.WithOwner(self.Index))
}
