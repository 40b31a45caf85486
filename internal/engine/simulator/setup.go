package simulator

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/stats"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// setup places the party, resolves equipment and runs every battle
// start effect up to and including techniques
func (r *run) setup(party combat.PartyConfig, registry *hooks.Registry) error {
	st := battle.New(party.Encounter)
	r.st = st

	for slot, cfg := range party.Slots {
		if cfg.Empty() {
			continue
		}
		loadout, err := r.catalog.Resolve(cfg, len(st.Actors))
		if err != nil {
			return errors.Wrapf(err, "slot %d", slot)
		}
		a := battle.NewActor(loadout.Character, cfg, slot)
		st.AddActor(a)
		a.Static = stats.Compute(stats.Input{
			Character: loadout.Character,
			LightCone: loadout.LightCone,
			Relics:    loadout.Relics,
			Passives:  loadout.Passives,
		})
		a.Stats = a.Static.Total.Clone()
		a.Passives = loadout.Passives
		a.HP = a.MaxHP()
		st.MaxSP = max(st.MaxSP, battle.BaseMaxSkillPoints+loadout.Character.SkillPointCapBonus)
	}
	if len(st.Actors) == 0 {
		return errors.NothingToSimulate()
	}

	// spirits follow the members so member indices match their order
	for _, m := range st.Members() {
		if m.Character.Spirit == "" {
			continue
		}
		ch, err := r.catalog.Character(m.Character.Spirit)
		if err != nil {
			return errors.Wrapf(err, "spirit of %s", m.Name)
		}
		sp := battle.NewActor(ch, m.Config, m.Slot)
		st.AddActor(sp)
		sp.Present = false
		sp.Summoner = m.Index
		m.Spirit = sp.Index
		for _, e := range ch.Talents {
			sp.Passives = append(sp.Passives, e.WithOwner(sp.Index))
		}
	}

	r.hooks = make([]hooks.Hook, len(st.Actors))
	for i, a := range st.Actors {
		r.hooks[i] = registry.For(a.Character.ID)
	}
	st.OnHeal = r.onHeal

	r.refresh()
	for _, a := range st.Members() {
		a.HP = a.MaxHP()
		a.Energy = r.openingEnergy(a)
	}

	for i, h := range r.hooks {
		if a := st.Actors[i]; a.Present {
			h.BattleStart(r, a)
		}
	}
	r.openingEffects()
	r.techniques()
	r.openingHeals()
	r.refresh()
	return nil
}

// openingEnergy is half the bar plus the kit's starting energy, scaled
// by energy regen
func (r *run) openingEnergy(a *battle.Actor) float64 {
	if a.MaxEnergy() <= 0 {
		return 0
	}
	e := (a.MaxEnergy()/2 + a.Character.StartingEnergy) * (1 + a.Stats.EnergyRegen/100)
	return min(a.MaxEnergy(), e)
}

// techniques run the technique of every slot that opted in, before the
// first tick
func (r *run) techniques() {
	for _, a := range r.st.Members() {
		if !a.Config.UseTechnique || !a.Active() {
			continue
		}
		if _, ok := a.Character.Action(combat.ActionTechnique); ok {
			r.Execute(a, combat.ActionTechnique, hooks.Options{
				Label:    "Technique",
				Quiet:    true,
				NoEnergy: true,
			})
		}
		r.hooks[a.Index].Technique(r, a)
	}
}

// openingEffects applies equipment that acts once at battle start
func (r *run) openingEffects() {
	st := r.st
	for _, a := range st.Members() {
		if sp, ok := r.special(a, combat.TagInitialAdvance); ok {
			scheduler.AdvanceForward(a, sp.Value/100)
			st.Record(a, "Initial advance", battle.Amounts{})
		}
		if sp, ok := r.special(a, combat.TagOpeningCritBySpeed); ok {
			if rate := poetCritRate(a.Stats.SPD); rate > 0 {
				a.Buffs.Put(combat.Effect{
					ID:       "poet_crit_rate",
					Source:   "Poet of Mourning Collapse",
					Scope:    combat.ScopeSelf,
					Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatCritRate: rate + sp.Value}},
					Duration: combat.Unbounded,
					Owner:    a.Index,
				})
			}
		}
		if sp, ok := r.special(a, combat.TagSameElementBoost); ok {
			for _, ally := range st.Members() {
				if ally.Character.Element != a.Character.Element {
					continue
				}
				ally.Buffs.Put(combat.Effect{
					ID:       "planetary_rendezvous",
					Source:   "Planetary Rendezvous",
					Scope:    combat.ScopeSelf,
					Payload:  combat.DamageBoost{Categories: map[combat.ActionCategory]float64{combat.CategoryAll: sp.Value}},
					Duration: combat.Unbounded,
					Owner:    a.Index,
				})
			}
		}
		if sp, ok := r.special(a, combat.TagOpeningShelter); ok {
			st.Party.Put(combat.Effect{
				ID:       "wildfire_shelter",
				Source:   "We Are the Wildfire",
				Scope:    combat.ScopeAllies,
				Payload:  combat.DamageTaken{Percent: -sp.Value},
				Duration: wildfireShelterTurns,
				Owner:    a.Index,
			})
		}
	}
}

// poetCritRate is the poet set's opening CRIT Rate for a slow wearer
func poetCritRate(spd float64) float64 {
	switch {
	case spd < 95:
		return 32
	case spd < 110:
		return 20
	default:
		return 0
	}
}
