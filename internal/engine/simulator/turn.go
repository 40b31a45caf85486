package simulator

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// lastUltimate is the counter holding the turn of an actor's last ultimate
const lastUltimate = "last_ultimate_turn"

// loop advances the clock until the time budget is spent or the party
// is defeated
func (r *run) loop() error {
	st := r.st
	budget := st.Params.TimeBudget()
	units := st.Units()

	for st.Tick = 1; st.Tick <= budget; st.Tick++ {
		if err := r.ctx.Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeCanceled, "simulation cancelled")
		}
		r.refresh()
		scheduler.Advance(units)
		for {
			idx, ok := scheduler.Next(units)
			if !ok {
				break
			}
			switch u := units[idx].(type) {
			case *battle.Enemy:
				r.enemyTurn()
			case *battle.Actor:
				r.allyTurn(u)
			}
			if r.defeated() {
				st.Record(nil, "Party defeated", battle.Amounts{})
				return nil
			}
		}
	}
	st.Tick = budget
	return nil
}

// defeated reports that no member is left standing
func (r *run) defeated() bool {
	return len(r.st.Allies()) == 0
}

// allyTurn is one turn of a: hooks get the first say, otherwise the
// rotation picks the action
func (r *run) allyTurn(a *battle.Actor) {
	st := r.st
	r.publish(EventTurn, a, nil, map[string]any{"turn": a.TurnCount + 1})
	for i, h := range r.hooks {
		if other := st.Actors[i]; other.Active() {
			h.BeforeTurn(r, other)
		}
	}
	if !a.Active() {
		scheduler.Complete(a)
		return
	}
	r.refresh()

	if !r.hooks[a.Index].TakeTurn(r, a) {
		r.rotationTurn(a)
	}
	r.turnEnd(a)
}

// rotationTurn plays the actor's next rotation token. A skill with no
// skill points left falls back to a basic attack.
func (r *run) rotationTurn(a *battle.Actor) {
	turn := hooks.Options{Turn: true}
	has := func(key combat.ActionKey) bool {
		_, ok := a.Character.Action(key)
		return ok
	}

	switch {
	case a.NextToken() == "S" && has(combat.ActionSkill) && r.st.SP > 0:
		r.Execute(a, combat.ActionSkill, turn)
	case a.NextToken() == "E" && has(combat.ActionEnhancedBasic):
		r.Execute(a, combat.ActionEnhancedBasic, turn)
	case has(combat.ActionBasic):
		r.Execute(a, combat.ActionBasic, turn)
	case has(combat.ActionSpiritSkill):
		r.Execute(a, combat.ActionSpiritSkill, turn)
	}
}

// turnEnd consumes the actor's action value and counts down what it owns
func (r *run) turnEnd(a *battle.Actor) {
	st := r.st
	scheduler.Complete(a)
	a.AdvanceRotation()
	a.TurnCount++

	r.hooks[a.Index].TurnEnd(r, a)
	for _, name := range st.TickFields(a.Index) {
		st.Record(a, name+" ends", battle.Amounts{})
	}
	st.TickOwner(a.Index)
	r.ultimates()
}

// ultimates fires every ultimate its strategy allows right now
func (r *run) ultimates() {
	for _, a := range r.st.Members() {
		if !wantsUltimate(a) {
			continue
		}
		a.Counters[lastUltimate] = a.TurnCount
		r.Execute(a, combat.ActionUltimate, hooks.Options{})
	}
}

func wantsUltimate(a *battle.Actor) bool {
	if !a.UltimateReady() {
		return false
	}
	if a.Config.UltimateStrategy != combat.UltimateEveryNTurns {
		return true
	}
	interval := max(1, a.Config.UltimateInterval)
	last, used := a.Counters[lastUltimate]
	if !used {
		return a.TurnCount >= interval
	}
	return a.TurnCount-last >= interval
}
