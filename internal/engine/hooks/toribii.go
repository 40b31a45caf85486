package hooks

import (
	"fmt"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	toribiiFieldTurns = 2
	// toribiiFieldHP is the share of the party's max HP the field adds
	toribiiFieldHP = 0.09
	// toribiiAllyEnergy is energy per enemy hit when an ally acts
	toribiiAllyEnergy = 1.5
	toribiiTalentID   = "toribii_lamb_outside_the_wall"
)

var toribiiTalentBoost = combat.Effect{
	ID:        toribiiTalentID,
	Source:    "Lamb Outside the Wall",
	Scope:     combat.ScopeSelf,
	Payload:   combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategoryAll: 72}},
	Duration:  3,
	MaxStacks: 3,
}

// Toribii opens a field that adds damage to every ally attack, raises
// her HP with the party's and answers each ally's ultimate with a
// follow-up once per field
type Toribii struct {
	Base
	// answered tracks allies whose ultimate already drew a follow-up
	answered map[int]bool
}

var _ Hook = (*Toribii)(nil)

func (t *Toribii) AfterAction(r Runner, self *battle.Actor, res Result) {
	st := r.State()
	if !self.Active() {
		return
	}
	if res.By(self) && res.Key == combat.ActionUltimate {
		st.SetField(combat.StateToribiiField, self.Index, toribiiFieldTurns)
		clear(t.answered)
		note(r, self, "Field")
	}
	if res.ByAlly(self) && res.Turn && res.Hits > 0 {
		st.GainEnergy(self, toribiiAllyEnergy*float64(res.Hits))
	}
	if st.FieldOwner(combat.StateToribiiField) == self.Index && res.Attack && res.ByMember() &&
		res.Key != combat.ActionAdditional {
		r.Execute(self, combat.ActionAdditional, Options{
			Label:    fmt.Sprintf("Field Additional Damage (%s)", res.Actor.Name),
			Scale:    float64(st.Enemy.Formula.Count),
			Quiet:    true,
			NoEnergy: true,
		})
	}
	if res.ByAlly(self) && res.Key == combat.ActionUltimate && !t.answered[res.Actor.Index] {
		if t.answered == nil {
			t.answered = make(map[int]bool)
		}
		t.answered[res.Actor.Index] = true
		r.Execute(self, combat.ActionFollowUp, Options{})
		self.Buffs.Apply(toribiiTalentBoost.WithOwner(self.Index))
	}
}

// RefreshStats adds 9% of the party's max HP while her field is open.
// Her own term reads her HP before the bonus.
func (t *Toribii) RefreshStats(st *battle.State, self *battle.Actor) {
	if st.FieldOwner(combat.StateToribiiField) != self.Index {
		return
	}
	var total float64
	for _, a := range st.Members() {
		if a.Down {
			continue
		}
		total += a.Stats.HP
	}
	self.Stats.HP += combat.RoundHalfUp(total * toribiiFieldHP)
}
