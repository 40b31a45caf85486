package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	rainfallTurns = 3
	// IcarunBoostID is the damage boost Icarun gains from Xianci's heals
	IcarunBoostID     = "icarun_dmg_boost"
	icarunBoost       = 80
	icarunBoostTurns  = 2
	icarunBoostStacks = 3
	// icarunHPCost is the share of Icarun's max HP each talent heal costs
	icarunHPCost = 0.04
	// xianciSpeedFloor and xianciSpeedCap bound the outgoing healing trace
	xianciSpeedFloor = 200
	xianciSpeedCap   = 200
)

// Xianci summons Icarun with her skill and ultimate. During Rainfall
// Icarun follows up her basics and skills, and whenever an ally loses
// HP Icarun pays some of its own to heal the party.
type Xianci struct {
	Base
}

var _ Hook = (*Xianci)(nil)

func (x *Xianci) AfterAction(r Runner, self *battle.Actor, res Result) {
	if !res.By(self) {
		return
	}
	st := r.State()
	switch res.Key {
	case combat.ActionSkill, combat.ActionUltimate:
		x.summon(r, self)
	}
	if res.Key == combat.ActionUltimate {
		st.SetField(combat.StateRainfall, self.Index, rainfallTurns)
		note(r, self, "Rainfall")
		return
	}
	if !st.FieldActive(combat.StateRainfall) {
		return
	}
	if res.Key != combat.ActionSkill && res.Key != combat.ActionBasic {
		return
	}
	if icarun := spiritOf(st, self); icarun != nil && icarun.Active() {
		r.Execute(icarun, combat.ActionSpiritSkill, Options{})
	}
}

func (x *Xianci) AllyDamaged(r Runner, self, target *battle.Actor) {
	st := r.State()
	icarun := spiritOf(st, self)
	if icarun == nil || !icarun.Active() || target == icarun || !target.Active() {
		if icarun != nil && icarun.Present && icarun.Down {
			x.dismiss(r, icarun)
		}
		return
	}
	st.PayHP(icarun, icarun.MaxHP()*icarunHPCost)
	terms := healTerms(self, combat.ActionSpiritTalent)
	r.Heal(self, target, terms, "Gentle Thunderstorm")
	for _, a := range st.Targets() {
		r.Heal(self, a, terms, "Gentle Thunderstorm (party)")
	}
}

// RefreshStats adds outgoing healing for every point of SPD past 200
// and closes Icarun's field once it has been dismissed
func (x *Xianci) RefreshStats(st *battle.State, self *battle.Actor) {
	if icarun := spiritOf(st, self); icarun == nil || !icarun.Present {
		st.ClearField(combat.StateIcarunPresent)
	}
	if self.Stats.SPD > xianciSpeedFloor {
		self.Stats.OutgoingHeal += min(xianciSpeedCap, self.Stats.SPD-xianciSpeedFloor)
	}
}

func (x *Xianci) summon(r Runner, self *battle.Actor) {
	st := r.State()
	if icarun := spiritOf(st, self); icarun != nil && icarun.Active() {
		return
	}
	if r.Summon(self) == nil {
		return
	}
	st.SetField(combat.StateIcarunPresent, self.Index, combat.Unbounded)
}

func (x *Xianci) dismiss(r Runner, icarun *battle.Actor) {
	r.Despawn(icarun)
	r.State().ClearField(combat.StateIcarunPresent)
}

// Icarun keeps the healing Xianci and itself do while it is on the
// field; its Rain Cleanse scales with that total and spends it. Each of
// those heals also stacks a damage boost on Icarun.
type Icarun struct {
	Base
}

var _ Hook = (*Icarun)(nil)

func (i *Icarun) Healed(_ Runner, self, healer, _ *battle.Actor, amount float64) {
	if !self.Active() || healer == nil {
		return
	}
	if healer != self && healer.Index != self.Summoner {
		return
	}
	self.AccumulatedHeal += amount
	// Icarun never takes a turn, so the boost counts down on Xianci's
	self.Buffs.Apply(combat.Effect{
		ID:        IcarunBoostID,
		Source:    "Icarun",
		Scope:     combat.ScopeSelf,
		Payload:   combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategoryAll: icarunBoost}},
		Duration:  icarunBoostTurns,
		MaxStacks: icarunBoostStacks,
		Owner:     self.Summoner,
	})
}

func (i *Icarun) AfterAction(_ Runner, self *battle.Actor, res Result) {
	if res.By(self) && res.Key == combat.ActionSpiritSkill {
		self.AccumulatedHeal = 0
	}
}

// RefreshStats keeps Icarun out of the turn order
func (i *Icarun) RefreshStats(_ *battle.State, self *battle.Actor) {
	self.Stats.SPD = 0
}
