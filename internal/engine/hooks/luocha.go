package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	luochaMaxCharge  = 2
	luochaFieldTurns = 2
	luochaCooldown   = 2
	// luochaAutoHP is the HP% below which the auto-skill fires
	luochaAutoHP = 50
)

var (
	luochaFieldHeal   = []combat.Scaling{{Stat: combat.ScaleATK, Multiplier: 18, Flat: 240}}
	luochaFieldSplash = []combat.Scaling{{Stat: combat.ScaleATK, Multiplier: 7, Flat: 93}}
)

// Luocha gains Abyss Flower from his skill and ultimate; two open the
// Cycle of Life field, which heals every ally that attacks. His skill
// also fires on its own when an ally drops low.
type Luocha struct {
	Base
	cooldown int
}

var _ Hook = (*Luocha)(nil)

func (l *Luocha) BattleStart(_ Runner, _ *battle.Actor) {
	l.cooldown = luochaCooldown
}

func (l *Luocha) Technique(r Runner, self *battle.Actor) {
	l.openField(r, self)
}

// BeforeTurn casts the auto-skill on the lowest ally when it's off
// cooldown and someone is under half HP
func (l *Luocha) BeforeTurn(r Runner, self *battle.Actor) {
	if !self.Active() || l.cooldown > 0 {
		return
	}
	target := LowestHP(r.State())
	if target == nil || target.HPPercent() >= luochaAutoHP {
		return
	}
	l.cooldown = luochaCooldown
	r.Execute(self, combat.ActionSkill, Options{Target: target, Label: "Prayer of Abyss Flower (auto)"})
}

func (l *Luocha) AfterAction(r Runner, self *battle.Actor, res Result) {
	if !self.Active() {
		return
	}
	st := r.State()
	if res.By(self) && (res.Key == combat.ActionSkill || res.Key == combat.ActionUltimate) &&
		!st.FieldActive(combat.StateLuochaField) {
		self.Charge = min(luochaMaxCharge, self.Charge+1)
		if self.Charge >= luochaMaxCharge {
			l.openField(r, self)
		}
	}
	if !res.Attack || !res.ByMember() || st.FieldOwner(combat.StateLuochaField) != self.Index {
		return
	}
	r.Heal(self, res.Actor, luochaFieldHeal, "Cycle of Life")
	for _, a := range st.Targets() {
		if a != res.Actor {
			r.Heal(self, a, luochaFieldSplash, "Cycle of Life (trace)")
		}
	}
}

func (l *Luocha) TurnEnd(_ Runner, _ *battle.Actor) {
	if l.cooldown > 0 {
		l.cooldown--
	}
}

func (l *Luocha) openField(r Runner, self *battle.Actor) {
	self.Charge = 0
	r.State().SetField(combat.StateLuochaField, self.Index, luochaFieldTurns)
	note(r, self, "Cycle of Life")
}
