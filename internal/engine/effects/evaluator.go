package effects

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

//go:generate mockgen -destination=mock/mock_environment.go -package=effectsmock github.com/KirkDiggler/rpg-combat-sim/internal/engine/effects Environment

// NoActor marks "nobody" wherever an actor index is expected
const NoActor = -1

// Environment is the read-only view of combat state conditions are
// evaluated against. Actor arguments are arena indices.
type Environment interface {
	// HPPercent is current HP as a percentage of max HP
	HPPercent(actor int) float64
	// Stat reads a current total stat
	Stat(actor int, key combat.StatKey) float64
	InState(actor int, state string) bool
	// ShieldSource is the actor that granted the current shield, or NoActor
	ShieldSource(actor int) int
	// Slot is the party slot the actor occupies
	Slot(actor int) int
	// HasSummon reports a present, living linked actor
	HasSummon(actor int) bool
	// Summoner is the actor's summoner, or NoActor
	Summoner(actor int) int
}

// Evaluator decides whether effects are active. It holds no state of its
// own, so every call sees the environment as it is right now.
type Evaluator struct {
	env Environment
}

// NewEvaluator returns an evaluator over env
func NewEvaluator(env Environment) *Evaluator {
	return &Evaluator{env: env}
}

// IsActive reports whether every condition on e holds for subject
func (ev *Evaluator) IsActive(e combat.Effect, subject int) bool {
	return ev.isActive(e, subject, NoActor)
}

// IsActiveOn is IsActive for an action landing on target: HP-below
// checks on heal boosts read the target instead of the healer
func (ev *Evaluator) IsActiveOn(e combat.Effect, subject, target int) bool {
	return ev.isActive(e, subject, target)
}

// CollectActive filters every source down to the effects active for
// subject, keeping source order
func (ev *Evaluator) CollectActive(subject int, sources ...[]combat.Effect) []combat.Effect {
	return ev.CollectActiveOn(subject, NoActor, sources...)
}

// CollectActiveOn is CollectActive with a heal target
func (ev *Evaluator) CollectActiveOn(subject, target int, sources ...[]combat.Effect) []combat.Effect {
	var out []combat.Effect
	for _, src := range sources {
		for _, e := range src {
			if ev.isActive(e, subject, target) {
				out = append(out, e)
			}
		}
	}
	return out
}

func (ev *Evaluator) isActive(e combat.Effect, subject, target int) bool {
	for _, c := range e.Conditions {
		if !ev.holds(c, e, subject, target) {
			return false
		}
	}
	return true
}

func (ev *Evaluator) holds(c combat.Condition, e combat.Effect, subject, target int) bool {
	who := subject
	switch c.Subject {
	case combat.SubjectOwner:
		who = e.Owner
	case combat.SubjectSummoner:
		who = ev.env.Summoner(subject)
	}
	if who == NoActor {
		return false
	}

	switch c.Kind {
	case combat.CondHPBelow:
		if target != NoActor && c.Subject == combat.SubjectSelf && e.Kind() == combat.KindHealBoost {
			who = target
		}
		return ev.env.HPPercent(who) < c.Threshold
	case combat.CondInState:
		return ev.env.InState(who, c.State)
	case combat.CondStatGTE:
		v := ev.env.Stat(who, c.Stat)
		if c.Strict {
			return v > c.Threshold
		}
		return v >= c.Threshold
	case combat.CondHasShieldFrom:
		src := ev.env.ShieldSource(who)
		return src != NoActor && src == e.Owner
	case combat.CondIsPartyMember:
		return ev.env.Slot(who) == c.Slot
	case combat.CondHasSummon:
		return ev.env.HasSummon(who)
	default:
		return false
	}
}
