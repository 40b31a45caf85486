package battle

import (
	"fmt"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// Amounts are the numbers a log line reports
type Amounts struct {
	Damage  float64
	Healing float64
	Shield  float64
}

// Record appends a log line for a. A nil actor logs as the enemy.
func (s *State) Record(a *Actor, action string, amt Amounts) combat.LogEntry {
	entry := combat.LogEntry{
		Tick:         s.Tick,
		Action:       action,
		Damage:       amt.Damage,
		Healing:      amt.Healing,
		Shield:       amt.Shield,
		SkillPoints:  s.SP,
		Toughness:    s.Enemy.Toughness,
		MaxToughness: s.Enemy.MaxToughness,
	}
	if a == nil {
		entry.Actor = EnemyName
		entry.Effects = effectLabels(s.Debuffs.All())
	} else {
		entry.Actor = a.Name
		entry.Energy = a.Energy
		entry.MaxEnergy = a.MaxEnergy()
		entry.Charge = a.Charge
		entry.HP = a.HP
		entry.MaxHP = a.MaxHP()
		entry.ShieldValue = a.Shield.Value
		entry.Effects = effectLabels(append(a.Buffs.All(), s.Party.All()...))
	}
	s.Log = append(s.Log, entry)
	return entry
}

func effectLabels(list []combat.Effect) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		label := e.Source
		if label == "" {
			label = e.ID
		}
		if e.StackCount() > 1 {
			label = fmt.Sprintf("%s (%d stacks)", label, e.StackCount())
		}
		if !e.Permanent() {
			label = fmt.Sprintf("%s (%dT)", label, e.Duration)
		}
		out = append(out, label)
	}
	return out
}

// Result snapshots the accumulators. Totals and per-actor figures are
// rounded; the healing CV is over healing received by non-spirit members.
func (s *State) Result() *combat.Result {
	out := &combat.Result{
		Ticks: s.Tick,
		Log:   append([]combat.LogEntry(nil), s.Log...),
	}
	var received []float64
	for _, a := range s.Actors {
		out.TotalDamage += a.DamageDealt
		out.TotalHealing += a.HealingDone
		out.TotalShield += a.ShieldGranted
		out.Breakdown = append(out.Breakdown, combat.ActorBreakdown{
			Index:           a.Index,
			Name:            a.Name,
			Spirit:          a.IsSpirit(),
			Damage:          combat.RoundHalfUp(a.DamageDealt),
			Healing:         combat.RoundHalfUp(a.HealingDone),
			Shield:          combat.RoundHalfUp(a.ShieldGranted),
			HealingReceived: combat.RoundHalfUp(a.HealingReceived),
		})
		if !a.IsSpirit() {
			received = append(received, a.HealingReceived)
		}
	}
	out.TotalDamage = combat.RoundHalfUp(out.TotalDamage)
	out.TotalHealing = combat.RoundHalfUp(out.TotalHealing)
	out.TotalShield = combat.RoundHalfUp(out.TotalShield)
	out.HealingCV = combat.CoefficientOfVariation(received)
	return out
}
