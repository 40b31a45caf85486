package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	archerMaxCharge   = 4
	archerStartCharge = 1
	archerUltCharge   = 2
	archerSkillChain  = 5
	archerSkillCost   = 2
	archerGuardianSP  = 4
	archerCircuitID   = "archer_circuit_connection"
	archerGuardianID  = "archer_guardian_crit_dmg"
)

var archerGuardian = combat.Effect{
	ID:       archerGuardianID,
	Source:   "Guardian",
	Scope:    combat.ScopeSelf,
	Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatCritDmg: 120}},
	Duration: 1,
}

// Archer chains skills while the party has skill points to burn and
// spends charges on follow-ups after his allies act
type Archer struct {
	Base
}

var _ Hook = (*Archer)(nil)

func (a *Archer) BattleStart(_ Runner, self *battle.Actor) {
	self.Charge = archerStartCharge
}

func (a *Archer) Technique(_ Runner, self *battle.Actor) {
	self.Charge = min(archerMaxCharge, self.Charge+1)
}

// TakeTurn casts the skill up to five times in a row, two skill points
// each, while the party sits at or above the threshold
func (a *Archer) TakeTurn(r Runner, self *battle.Actor) bool {
	st := r.State()
	if st.SP < st.Params.ArcherSPThreshold {
		r.Execute(self, combat.ActionBasic, Options{Turn: true})
		return true
	}
	uses := 0
	for uses < archerSkillChain && st.SpendSP(archerSkillCost) {
		uses++
		r.Execute(self, combat.ActionSkill, Options{})
	}
	self.Buffs.Remove(archerCircuitID)
	if uses == 0 {
		r.Execute(self, combat.ActionBasic, Options{Turn: true})
	}
	return true
}

func (a *Archer) AfterAction(r Runner, self *battle.Actor, res Result) {
	if res.By(self) && res.Key == combat.ActionUltimate {
		self.Charge = min(archerMaxCharge, self.Charge+archerUltCharge)
		return
	}
	if !res.Turn || !res.ByAlly(self) || !self.Active() || self.Charge == 0 {
		return
	}
	self.Charge--
	r.GainSP(1)
	r.Execute(self, combat.ActionFollowUp, Options{})
}

func (a *Archer) SkillPointsGained(r Runner, self *battle.Actor) {
	if self.Active() && r.State().SP >= archerGuardianSP {
		self.Buffs.Apply(archerGuardian.WithOwner(self.Index))
	}
}
