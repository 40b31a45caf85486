package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	bladeMaxCharge      = 5
	bladeHellscapeTurns = 3
	// HP costs as a fraction of max HP
	bladeSkillCost     = 0.3
	bladeEnhancedCost  = 0.1
	bladeTechniqueCost = 0.2
)

var bladeFollowUpHeal = []combat.Scaling{{Stat: combat.ScaleHP, Multiplier: 25}}

// Blade pays HP for his skill and enhanced basic, fights in Hellscape
// and turns every fifth HP loss into a follow-up attack
type Blade struct {
	Base
	hellscape int
}

var _ Hook = (*Blade)(nil)

func (b *Blade) Technique(r Runner, self *battle.Actor) {
	b.pay(r, self, bladeTechniqueCost)
}

func (b *Blade) TakeTurn(r Runner, self *battle.Actor) bool {
	st := r.State()
	switch {
	case b.hellscape > 0:
		b.pay(r, self, bladeEnhancedCost)
		r.Execute(self, combat.ActionEnhancedBasic, Options{Turn: true})
	case self.NextToken() != "B" && st.SP > 0:
		b.pay(r, self, bladeSkillCost)
		b.hellscape = bladeHellscapeTurns
		self.SetFlag(combat.StateHellscape, true)
		r.Execute(self, combat.ActionSkill, Options{Turn: true})
		b.pay(r, self, bladeEnhancedCost)
		r.Execute(self, combat.ActionEnhancedBasic, Options{})
	default:
		r.Execute(self, combat.ActionBasic, Options{Turn: true})
	}
	return true
}

func (b *Blade) AfterAction(r Runner, self *battle.Actor, res Result) {
	if res.By(self) && res.Key == combat.ActionUltimate {
		before := self.HP
		r.State().SetHP(self, self.MaxHP()*0.5)
		self.LostHP = 0
		if self.HP < before {
			b.charge(self)
		}
	}
	if !self.Active() || self.Charge < bladeMaxCharge {
		return
	}
	self.Charge = 0
	r.Execute(self, combat.ActionFollowUp, Options{})
	r.Heal(self, self, bladeFollowUpHeal, "Shuhu's Gift (heal)")
}

func (b *Blade) AllyDamaged(_ Runner, self, target *battle.Actor) {
	if target == self {
		b.charge(self)
	}
}

func (b *Blade) TurnEnd(_ Runner, self *battle.Actor) {
	if b.hellscape == 0 {
		return
	}
	b.hellscape--
	if b.hellscape == 0 {
		self.SetFlag(combat.StateHellscape, false)
	}
}

func (b *Blade) pay(r Runner, self *battle.Actor, fraction float64) {
	if r.State().PayHP(self, self.MaxHP()*fraction) > 0 {
		b.charge(self)
	}
}

func (b *Blade) charge(self *battle.Actor) {
	self.Charge = min(bladeMaxCharge, self.Charge+1)
}
