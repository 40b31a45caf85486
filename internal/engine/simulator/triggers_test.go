package simulator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/resolver"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/rng"
)

type TriggersTestSuite struct {
	suite.Suite
	registry *hooks.Registry
}

func TestTriggersTestSuite(t *testing.T) {
	suite.Run(t, new(TriggersTestSuite))
}

func (s *TriggersTestSuite) SetupTest() {
	s.registry = hooks.NewRegistry()
}

// newRun places slots against the default encounter with empty energy
// bars so no ultimate fires on its own
func (s *TriggersTestSuite) newRun(slots ...combat.SlotConfig) *run {
	r := &run{
		ctx:     context.Background(),
		id:      "run_test",
		catalog: catalog.New(),
		roller:  rng.For(1),
	}
	s.Require().NoError(r.setup(combat.PartyConfig{
		Slots:     slots,
		Encounter: combat.DefaultEncounter(),
	}, s.registry))
	for _, a := range r.st.Actors {
		a.Energy = 0
	}
	return r
}

func slotWith(id, lightCone string, sets ...combat.RelicSetPick) combat.SlotConfig {
	slot := combat.NewSlot(id)
	slot.LightConeID = lightCone
	slot.RelicSets = sets
	return slot
}

func fourPiece(id string) combat.RelicSetPick {
	return combat.RelicSetPick{ID: id, Count: 4}
}

func logged(st *battle.State, prefix string) int {
	n := 0
	for _, e := range st.Log {
		if strings.HasPrefix(e.Action, prefix) {
			n++
		}
	}
	return n
}

func (s *TriggersTestSuite) TestActionTriggers() {
	testCases := []struct {
		name    string
		slots   []combat.SlotConfig
		actor   string
		key     combat.ActionKey
		repeat  int
		holder  string
		id      string
		stacks  int
		turns   int
		payload combat.Payload
	}{
		{
			name:    "aeon stacks ATK on every attack up to four",
			slots:   []combat.SlotConfig{slotWith(catalog.Hanya, catalog.FallOfAnAeon)},
			actor:   catalog.Hanya,
			key:     combat.ActionBasic,
			repeat:  5,
			holder:  catalog.Hanya,
			id:      "aeon_atk_stack",
			stacks:  4,
			turns:   combat.Unbounded,
			payload: statMod(combat.StatATKPct, 8),
		},
		{
			name:    "computation stacks once per enemy hit",
			slots:   []combat.SlotConfig{slotWith(catalog.Blade, catalog.EndlessComputation)},
			actor:   catalog.Blade,
			key:     combat.ActionFollowUp,
			repeat:  1,
			holder:  catalog.Blade,
			id:      "computation_atk_stack",
			stacks:  3,
			turns:   1,
			payload: statMod(combat.StatATKPct, 4),
		},
		{
			name:    "computation adds SPD after hitting three enemies",
			slots:   []combat.SlotConfig{slotWith(catalog.Blade, catalog.EndlessComputation)},
			actor:   catalog.Blade,
			key:     combat.ActionFollowUp,
			repeat:  1,
			holder:  catalog.Blade,
			id:      "computation_spd",
			stacks:  1,
			turns:   1,
			payload: statMod(combat.StatSPDPct, 8),
		},
		{
			name:    "grand duke stacks per follow-up hit",
			slots:   []combat.SlotConfig{slotWith(catalog.Blade, "", fourPiece(catalog.SetGrandDuke))},
			actor:   catalog.Blade,
			key:     combat.ActionFollowUp,
			repeat:  3,
			holder:  catalog.Blade,
			id:      "grand_duke_atk",
			stacks:  8,
			turns:   3,
			payload: statMod(combat.StatATKPct, 6),
		},
		{
			name: "priest marks the other shielded allies",
			slots: []combat.SlotConfig{
				slotWith(catalog.DanHengTengHuang, "", fourPiece(catalog.SetPriest)),
				combat.NewSlot(catalog.Hanya),
			},
			actor:   catalog.DanHengTengHuang,
			key:     combat.ActionSkill,
			repeat:  3,
			holder:  catalog.Hanya,
			id:      "priest_crit_dmg",
			stacks:  2,
			turns:   2,
			payload: statMod(combat.StatCritDmg, 18),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r := s.newRun(tc.slots...)
			actor := r.st.ByCharacter(tc.actor)
			s.Require().NotNil(actor)

			for range tc.repeat {
				r.Execute(actor, tc.key, hooks.Options{})
			}

			got, ok := r.st.ByCharacter(tc.holder).Buffs.Get(tc.id)
			s.Require().True(ok, "missing %s", tc.id)
			s.Equal(tc.stacks, got.StackCount())
			s.Equal(tc.turns, got.Duration)
			s.Equal(tc.payload, got.Payload)
			s.Equal(actor.Index, got.Owner)
		})
	}
}

func (s *TriggersTestSuite) TestPriestSkipsTheGranter() {
	r := s.newRun(
		slotWith(catalog.DanHengTengHuang, "", fourPiece(catalog.SetPriest)),
		combat.NewSlot(catalog.Hanya),
	)
	dhth := r.st.ByCharacter(catalog.DanHengTengHuang)

	r.Execute(dhth, combat.ActionSkill, hooks.Options{})

	s.False(dhth.Buffs.Has("priest_crit_dmg"))
}

func (s *TriggersTestSuite) TestMessengerSpeedsUpTheParty() {
	r := s.newRun(slotWith(catalog.Luocha, "", fourPiece(catalog.SetMessenger)), combat.NewSlot(catalog.Hanya))
	luocha := r.st.ByCharacter(catalog.Luocha)

	r.Execute(luocha, combat.ActionUltimate, hooks.Options{})

	got, ok := r.st.Party.Get("messenger_spd")
	s.Require().True(ok)
	s.Equal(combat.ScopeAllies, got.Scope)
	s.Equal(1, got.Duration)
	s.Equal(statMod(combat.StatSPDPct, 12), got.Payload)
}

func (s *TriggersTestSuite) TestHitTriggers() {
	r := s.newRun(slotWith(catalog.Hanya, catalog.NinjitsuMelodyHunt, fourPiece(catalog.SetLongevous)))
	r.st.Params.DamagePerHit = 1
	hanya := r.st.ByCharacter(catalog.Hanya)

	for range 3 {
		r.enemyHit(hanya)
	}

	ninjitsu, ok := hanya.Buffs.Get("ninjitsu_crit_dmg")
	s.Require().True(ok)
	s.Equal(1, ninjitsu.StackCount(), "refreshed, never stacked")
	s.Equal(2, ninjitsu.Duration)
	s.Equal(statMod(combat.StatCritDmg, 18), ninjitsu.Payload)

	longevous, ok := hanya.Buffs.Get("longevous_crit_rate")
	s.Require().True(ok)
	s.Equal(2, longevous.StackCount())
	s.Equal(2, longevous.Duration)
	s.Equal(statMod(combat.StatCritRate, 8), longevous.Payload)
}

func (s *TriggersTestSuite) TestOpeningEffects() {
	s.Run("wildfire shelters the party", func() {
		r := s.newRun(slotWith(catalog.Luocha, catalog.WeAreTheWildfire))

		got, ok := r.st.Party.Get("wildfire_shelter")
		s.Require().True(ok)
		s.Equal(5, got.Duration)
		s.Equal(combat.DamageTaken{Percent: -8}, got.Payload)
	})

	s.Run("planetary boosts same element allies only", func() {
		r := s.newRun(
			slotWith(catalog.Blade, catalog.PlanetaryRendezvous),
			combat.NewSlot(catalog.Xianci),
			combat.NewSlot(catalog.Hanya),
		)

		for _, id := range []string{catalog.Blade, catalog.Xianci} {
			got, ok := r.st.ByCharacter(id).Buffs.Get("planetary_rendezvous")
			s.Require().True(ok, id)
			s.Equal(boostAll(12), got.Payload)
		}
		s.False(r.st.ByCharacter(catalog.Hanya).Buffs.Has("planetary_rendezvous"))
	})

	s.Run("poet raises a slow wearer's CRIT Rate", func() {
		r := s.newRun(slotWith(catalog.Luocha, "", fourPiece(catalog.SetPoet)))
		luocha := r.st.ByCharacter(catalog.Luocha)
		s.Require().Less(luocha.Static.Total.SPD, 95.0)

		got, ok := luocha.Buffs.Get("poet_crit_rate")
		s.Require().True(ok)
		s.Equal(combat.StatMod{Stats: combat.StatMap{combat.StatCritRate: 32}}, got.Payload)
	})
}

// echo answers every basic of its actor with another basic
type echo struct {
	hooks.Base
	calls int
}

func (e *echo) AfterAction(r hooks.Runner, self *battle.Actor, res hooks.Result) {
	if res.By(self) && res.Key == combat.ActionBasic {
		e.calls++
		r.Execute(self, combat.ActionBasic, hooks.Options{NoEnergy: true})
	}
}

func (s *TriggersTestSuite) TestTriggerChainsStopAtMaxDepth() {
	h := &echo{}
	s.registry.Register(catalog.Hanya, func() hooks.Hook { return h })
	r := s.newRun(combat.NewSlot(catalog.Hanya))
	hanya := r.st.ByCharacter(catalog.Hanya)

	r.Execute(hanya, combat.ActionBasic, hooks.Options{NoEnergy: true})

	s.Equal(MaxChainDepth, h.calls)
	s.Equal(MaxChainDepth+1, logged(r.st, "Oracle Brush"))
	s.Equal(1, logged(r.st, "chain limit"))
	s.Zero(r.st.Depth)
}

func (s *TriggersTestSuite) TestFrozenEnemySkipsItsTurn() {
	r := s.newRun(combat.NewSlot(catalog.RuanMei), combat.NewSlot(catalog.Hanya))
	mei := r.st.ByCharacter(catalog.RuanMei)
	freeze, ok := resolver.BreakDebuff(combat.ElementIce, 0, true, mei.Index)
	s.Require().True(ok)
	r.st.Debuffs.Apply(freeze.Effect)
	hp := mei.HP

	r.enemyTurn()

	s.Equal(float64(resolver.FrozenActionValue), r.st.Enemy.AV)
	s.False(r.st.Debuffs.Has(freezeID))
	s.Equal(1, logged(r.st, "Frozen"))
	s.Positive(mei.DamageDealt)
	s.Zero(logged(r.st, "Attack ->"))
	s.Equal(hp, mei.HP)
}

func (s *TriggersTestSuite) TestBreakDelays() {
	testCases := []struct {
		name  string
		actor string
		kind  combat.DotKind
		share float64
	}{
		{name: "entanglement", actor: catalog.Archer, kind: combat.DotEntanglement, share: 0.2},
		{name: "imprisonment", actor: catalog.Luocha, kind: combat.DotImprisonment, share: 0.3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r := s.newRun(combat.NewSlot(tc.actor))
			a := r.st.ByCharacter(tc.actor)
			r.st.Enemy.AV = 8000
			want := 8000 - resolver.ActionValueThreshold*tc.share*(1+a.Stats.BreakEffect/100)

			r.breakEnemy(a)
			s.InDelta(want, r.st.Enemy.AV, 1e-9)
			s.True(r.st.Debuffs.Has("break_" + string(tc.kind)))

			// the delay lands with the break, not again on the enemy's turn
			r.tickDots()
			s.InDelta(want, r.st.Enemy.AV, 1e-9)
		})
	}
}

func (s *TriggersTestSuite) TestEntanglementDealsDamageOnEnemyTurn() {
	r := s.newRun(combat.NewSlot(catalog.Archer))
	archer := r.st.ByCharacter(catalog.Archer)
	r.breakEnemy(archer)
	before := archer.DamageDealt
	want := resolver.BreakDot(combat.DotEntanglement, 1, r.breakInput(archer))

	r.tickDots()

	s.Positive(want)
	s.InDelta(want, archer.DamageDealt-before, 1e-6)
	s.Equal(1, logged(r.st, "Weakness Break (entanglement)"))
	s.Zero(r.st.DotCount(), "entanglement is not a damage-over-time")
}

func (s *TriggersTestSuite) TestSpiritLeavesWithItsSummoner() {
	r := s.newRun(combat.NewSlot(catalog.Xianci), combat.NewSlot(catalog.Blade))
	xianci := r.st.ByCharacter(catalog.Xianci)
	icarun := r.st.Actor(xianci.Spirit)
	s.Require().NotNil(icarun)

	r.Execute(xianci, combat.ActionSkill, hooks.Options{})
	s.Require().True(icarun.Active())
	s.Require().True(r.st.FieldActive(combat.StateIcarunPresent))

	r.st.Params.DamagePerHit = 1e9
	r.enemyHit(xianci)

	s.True(xianci.Down)
	s.False(icarun.Active())
	s.NotContains(r.st.Targets(), icarun)
	s.Len(r.st.Targets(), 1)
	s.Equal(1, logged(r.st, "Dismissed"))

	r.refresh()
	s.False(r.st.FieldActive(combat.StateIcarunPresent))

	// Icarun's talent no longer answers ally damage
	blade := r.st.ByCharacter(catalog.Blade)
	healed := blade.HealingReceived
	r.st.Params.DamagePerHit = 1
	r.enemyHit(blade)
	s.Equal(healed, blade.HealingReceived)
}
