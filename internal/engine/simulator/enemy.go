package simulator

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// enemyTurn plays the enemy group's turn: damage over time ticks, a
// frozen enemy skips, a broken one recovers unless a hook holds it down,
// then it attacks
func (r *run) enemyTurn() {
	st := r.st
	enemy := st.Enemy
	r.publish(EventTurn, enemy, nil, nil)

	r.tickDots()

	if freeze, frozen := st.Debuffs.Get(freezeID); frozen {
		st.Debuffs.Remove(freezeID)
		enemy.AV = resolver.FrozenActionValue
		if owner := st.Actor(freeze.Owner); owner != nil {
			dmg := st.DealDamage(owner, resolver.BreakDot(combat.DotFreeze, 1, r.breakInput(owner)))
			st.Record(owner, "Frozen", battle.Amounts{Damage: dmg})
		}
		return
	}

	if enemy.Broken {
		for i, h := range r.hooks {
			if a := st.Actors[i]; a.Present && h.EnemyRecovery(r, a) {
				st.Record(nil, "Recovery held", battle.Amounts{})
				return
			}
		}
		enemy.Recover()
		st.Record(nil, "Recovered", battle.Amounts{})
	}

	for range st.Params.AttacksPerRound {
		targets := st.Targets()
		if len(targets) == 0 {
			break
		}
		r.enemyHit(targets[r.pick(len(targets))])
	}
	scheduler.Complete(enemy)
}

const freezeID = "break_" + string(combat.DotFreeze)

// pick rolls an index in [0, n)
func (r *run) pick(n int) int {
	roll, err := r.roller.Roll(n)
	if err != nil {
		slog.Warn("enemy target roll failed", "run_id", r.id, "error", err)
		return 0
	}
	return roll - 1
}

// enemyHit lands one attack on target. Damage taken effects on the ally
// side scale the hit; the shield absorbs first.
func (r *run) enemyHit(target *battle.Actor) {
	st := r.st
	amount := st.Params.DamagePerHit * max(0, 1+r.incoming(target)/100)
	hp := target.HP
	absorbed, dealt := st.TakeHit(target, amount)
	st.Record(nil, fmt.Sprintf("Attack -> %s", target.Name), battle.Amounts{Damage: absorbed + dealt})

	r.hitTriggers(target)
	res := hooks.Result{Hits: 1, Damage: absorbed + dealt}
	if target.HP < hp {
		res.Damaged = append(res.Damaged, target)
	}
	if target.Down {
		st.Record(target, "Down", battle.Amounts{})
		r.publish(EventDown, st.Enemy, target, nil)
	}
	r.dismissOrphans()
	r.afterAction(res)
}

// incoming sums the damage taken effects on an ally
func (r *run) incoming(a *battle.Actor) float64 {
	var total float64
	for _, e := range r.st.Evaluator().CollectActive(a.Index, a.Buffs.All(), r.st.Party.All(), a.Passives, r.st.Auras()) {
		if p, ok := e.Payload.(combat.DamageTaken); ok && e.Scope != combat.ScopeEnemies {
			total += p.Percent * float64(e.StackCount())
		}
	}
	return total
}

// tickDots deals one tick of every damage-over-time on the enemy,
// credited to the actor that applied it. Entanglement deals its damage
// here too although it doesn't count as a damage-over-time.
func (r *run) tickDots() {
	st := r.st
	for _, e := range st.Debuffs.All() {
		if e.Dot == nil || !(e.Dot.Kind.Ticks() || e.Dot.Kind == combat.DotEntanglement) {
			continue
		}
		owner := st.Actor(e.Owner)
		if owner == nil {
			continue
		}
		var dmg float64
		if e.Dot.Kind == combat.DotSkill {
			mods := r.modifiers(owner, combat.CategoryDot, false)
			dmg = resolver.SkillDot(owner.Stats.ATK, e.Dot.Multiplier, mods.DamageBoost, mods.DamageTaken, st.Enemy.Formula)
		} else {
			dmg = resolver.BreakDot(e.Dot.Kind, e.StackCount(), r.breakInput(owner))
		}
		dmg = st.DealDamage(owner, dmg)
		st.Record(owner, fmt.Sprintf("%s (%s)", e.Source, e.Dot.Kind), battle.Amounts{Damage: dmg})
	}
}
