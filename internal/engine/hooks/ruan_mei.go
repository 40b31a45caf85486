package hooks

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

const (
	ruanMeiFieldTurns = 2
	ruanMeiTurnEnergy = 5
	// ruanMeiBreakShare is her extra break damage when anyone breaks the enemy
	ruanMeiBreakShare = 1.2
	// plumBlossomShare is the break damage dealt when Thanatoplum Rebloom
	// holds off recovery
	plumBlossomShare = 0.5
	plumBlossomBase  = 0.1
	plumBlossomBE    = 0.2
)

var ruanMeiSpeed = combat.Effect{
	ID:       "ruan_mei_somatotypical_spd",
	Source:   "Somatotypical Helix",
	Scope:    combat.ScopeSelf,
	Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatSPDPct: 10}},
	Duration: combat.Unbounded,
}

// RuanMei speeds up her allies, adds her own break damage to every
// break and, while her field is open, keeps a broken enemy down once
// more with Thanatoplum Rebloom
type RuanMei struct {
	Base
	bloom bool
}

var _ Hook = (*RuanMei)(nil)

func (m *RuanMei) BattleStart(r Runner, self *battle.Actor) {
	for _, a := range r.State().Members() {
		if a != self {
			a.Buffs.Put(ruanMeiSpeed.WithOwner(self.Index))
		}
	}
}

func (m *RuanMei) AfterAction(r Runner, self *battle.Actor, res Result) {
	st := r.State()
	if !self.Active() {
		return
	}
	if res.By(self) && res.Key == combat.ActionUltimate {
		turns := ruanMeiFieldTurns
		if eidolon(self) >= 6 {
			turns++
		}
		st.SetField(combat.StateRuanMeiField, self.Index, turns)
		note(r, self, "Petals to Stream")
	}
	if res.Attack && res.ByMember() && st.FieldOwner(combat.StateRuanMeiField) == self.Index &&
		!st.Enemy.Broken {
		m.bloom = true
	}
}

func (m *RuanMei) EnemyBreak(r Runner, self, _ *battle.Actor) {
	if !self.Active() {
		return
	}
	m.deal(r, self, ruanMeiBreakShare, "Inhale (break)")
}

// EnemyRecovery delays the enemy instead of letting it recover when
// Thanatoplum Rebloom is set
func (m *RuanMei) EnemyRecovery(r Runner, self *battle.Actor) bool {
	if !m.bloom || !self.Active() {
		return false
	}
	m.bloom = false
	delay := plumBlossomBase + plumBlossomBE*self.Stats.BreakEffect/100
	enemy := r.State().Enemy
	enemy.AV = min(enemy.AV, scheduler.Threshold)
	scheduler.Delay(enemy, scheduler.Threshold*delay)
	m.deal(r, self, plumBlossomShare, "Thanatoplum Rebloom")
	return true
}

// TurnEnd restores her flat energy once per turn
func (m *RuanMei) TurnEnd(r Runner, self *battle.Actor) {
	r.State().GainEnergy(self, ruanMeiTurnEnergy)
}

func (m *RuanMei) deal(r Runner, self *battle.Actor, share float64, label string) {
	st := r.State()
	dmg := st.DealDamage(self, r.BreakDamage(self)*share)
	st.Record(self, label, battle.Amounts{Damage: dmg})
}
