package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	// dragonEnhanced counts the dragon's remaining enhanced actions on
	// Dan Heng's actor
	dragonEnhanced = "dragon_enhanced"
	dragonUltActs  = 2
	// dhthOpeningAdvance is the action advance Dan Heng starts with
	dhthOpeningAdvance = 0.4
	comradeEnergy      = 6
	comradeAdvance     = 0.15
	// comradeATKShare is the share of Dan Heng's ATK his comrade gains
	comradeATKShare = 0.15
	// ShieldCapMultiple caps a stacked shield at this many skill shields
	ShieldCapMultiple = 3
)

// DanHengTengHuang pairs with one ally as Comrade, shields the party
// and summons the Dragon Spirit, which is dismissed as soon as either
// of the pair falls
type DanHengTengHuang struct {
	Base
}

var _ Hook = (*DanHengTengHuang)(nil)

func (d *DanHengTengHuang) BattleStart(_ Runner, self *battle.Actor) {
	scheduler.AdvanceForward(self, dhthOpeningAdvance)
}

func (d *DanHengTengHuang) Technique(r Runner, self *battle.Actor) {
	d.pair(r, self)
}

func (d *DanHengTengHuang) AfterAction(r Runner, self *battle.Actor, res Result) {
	st := r.State()
	if res.By(self) {
		switch res.Key {
		case combat.ActionSkill:
			d.pair(r, self)
		case combat.ActionUltimate:
			acts := dragonUltActs
			if eidolon(self) >= 2 {
				acts += dragonUltActs
			}
			self.Counters[dragonEnhanced] = acts
			if eidolon(self) >= 1 {
				r.GainSP(1)
			}
		}
	}
	if res.Attack && res.Actor != nil && res.Actor.Index == st.Comrade.Target && st.Comrade.Source == self.Index &&
		self.Active() {
		st.GainEnergy(self, comradeEnergy)
		if dragon := spiritOf(st, self); dragon != nil && dragon.Active() {
			scheduler.AdvanceForward(dragon, comradeAdvance)
		}
	}
	d.checkDragon(r, self)
}

func (d *DanHengTengHuang) AllyDamaged(r Runner, self, _ *battle.Actor) {
	d.checkDragon(r, self)
}

// RefreshStats lends the comrade 15% of Dan Heng's ATK
func (d *DanHengTengHuang) RefreshStats(st *battle.State, self *battle.Actor) {
	if st.Comrade.Source != self.Index || !self.Active() {
		return
	}
	if comrade := st.Actor(st.Comrade.Target); comrade != nil && comrade != self {
		comrade.Stats.ATK += combat.RoundHalfUp(self.Stats.ATK * comradeATKShare)
	}
}

func (d *DanHengTengHuang) pair(r Runner, self *battle.Actor) {
	st := r.State()
	target := memberAt(st, self.Config.ComradeTarget)
	if target == nil || !target.Active() {
		target = self
	}
	if prev := st.Actor(st.Comrade.Target); prev != nil {
		prev.SetFlag(combat.StateComrade, false)
	}
	st.Comrade = battle.Pair{Source: self.Index, Target: target.Index}
	target.SetFlag(combat.StateComrade, true)
	if dragon := spiritOf(st, self); dragon == nil || !dragon.Active() {
		r.Summon(self)
	}
	note(r, self, "Comrade: "+target.Name)
}

// checkDragon dismisses the dragon once Dan Heng or his comrade is down
func (d *DanHengTengHuang) checkDragon(r Runner, self *battle.Actor) {
	st := r.State()
	if st.Comrade.Source != self.Index {
		return
	}
	comrade := st.Actor(st.Comrade.Target)
	if self.Active() && comrade != nil && comrade.Active() {
		return
	}
	// the simulator may already have dismissed it when Dan Heng fell
	if dragon := spiritOf(st, self); dragon != nil && dragon.Present {
		r.Despawn(dragon)
	}
	if comrade != nil {
		comrade.SetFlag(combat.StateComrade, false)
	}
	st.Comrade = battle.Unpaired
}

// ShieldCap is the most shield one ally can hold from granter: three of
// its skill shields
func ShieldCap(r Runner, granter *battle.Actor) float64 {
	return ShieldCapMultiple * resolver.Base(shieldTerms(granter, combat.ActionSkill), r.Source(granter))
}

// Dragon is Dan Heng's spirit. It shields the party each turn, tops up
// the weakest shield, and strikes while his ultimate's charges last.
type Dragon struct {
	Base
}

var _ Hook = (*Dragon)(nil)

func (g *Dragon) TakeTurn(r Runner, self *battle.Actor) bool {
	st := r.State()
	dhth := st.Actor(self.Summoner)
	if dhth == nil {
		return false
	}
	if dhth.Counters[dragonEnhanced] > 0 {
		dhth.Counters[dragonEnhanced]--
		r.Execute(self, combat.ActionEnhancedSpiritSkill, Options{Turn: true})
		return true
	}

	capacity := ShieldCap(r, dhth)
	src := r.Source(self)
	amount := resolver.Base(shieldTerms(self, combat.ActionSpiritSkill), src)
	var total float64
	for _, a := range st.Targets() {
		total += r.Shield(dhth, a, amount, capacity)
	}
	if low := lowestShield(st); low != nil {
		extra := resolver.Base(shieldTerms(self, combat.ActionStandingTall), src)
		total += r.Shield(dhth, low, extra, capacity)
	}
	st.Record(self, "Dragon Spirit", battle.Amounts{Shield: total})
	return true
}

// RefreshStats copies the comrade's totals, keeping the dragon's own SPD
func (g *Dragon) RefreshStats(st *battle.State, self *battle.Actor) {
	comrade := st.Actor(st.Comrade.Target)
	if comrade == nil || !self.Present {
		return
	}
	spd := self.Stats.SPD
	self.Stats = comrade.Stats.Clone()
	self.Stats.SPD = spd
}
