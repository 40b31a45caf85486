package simulator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/simulator"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

type SimulatorTestSuite struct {
	suite.Suite
	ctx context.Context
	sim *simulator.Simulator
}

func TestSimulatorTestSuite(t *testing.T) {
	suite.Run(t, new(SimulatorTestSuite))
}

func (s *SimulatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	sim, err := simulator.New(&simulator.Config{
		Catalog:  catalog.New(),
		Registry: hooks.NewRegistry(),
	})
	s.Require().NoError(err)
	s.sim = sim
}

// party is a full team with a shielder, a healer and a spirit summoner
func party() combat.PartyConfig {
	blade := combat.NewSlot(catalog.Blade)
	blade.LightConeID = catalog.ASecretVow
	blade.RelicSets = []combat.RelicSetPick{{ID: catalog.SetLongevous, Count: 4}}

	luocha := combat.NewSlot(catalog.Luocha)
	luocha.LightConeID = catalog.PerfectTiming
	luocha.UseTechnique = true

	ruanMei := combat.NewSlot(catalog.RuanMei)
	ruanMei.RelicSets = []combat.RelicSetPick{{ID: catalog.SetMessenger, Count: 4}}

	dhth := combat.NewSlot(catalog.DanHengTengHuang)
	dhth.ComradeTarget = 0
	dhth.UseTechnique = true
	dhth.RelicSets = []combat.RelicSetPick{{ID: catalog.SetHermit, Count: 4}}

	return combat.PartyConfig{
		Slots:     []combat.SlotConfig{blade, luocha, ruanMei, dhth},
		Encounter: combat.DefaultEncounter(),
	}
}

func hasAction(res *combat.Result, action string) bool {
	for _, e := range res.Log {
		if strings.HasPrefix(e.Action, action) {
			return true
		}
	}
	return false
}

func (s *SimulatorTestSuite) TestNewRequiresDependencies() {
	_, err := simulator.New(&simulator.Config{Registry: hooks.NewRegistry()})
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid config")

	_, err = simulator.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SimulatorTestSuite) TestRunRejectsNilInput() {
	_, err := s.sim.Run(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SimulatorTestSuite) TestEmptyPartyIsNothingToSimulate() {
	p := combat.PartyConfig{Slots: []combat.SlotConfig{{}, {}, {}, {}}}

	_, err := s.sim.Run(s.ctx, &simulator.Input{Party: p})
	s.True(errors.IsNothingToSimulate(err))
}

func (s *SimulatorTestSuite) TestUnknownIDsAreConfigurationErrors() {
	s.Run("character", func() {
		p := party()
		p.Slots[1] = combat.NewSlot("nobody")

		_, err := s.sim.Run(s.ctx, &simulator.Input{Party: p})
		s.Require().Error(err)
		s.True(errors.IsConfiguration(err))
		s.Equal("nobody", errors.GetMeta(err)[errors.MetaID])
	})

	s.Run("light cone", func() {
		p := party()
		p.Slots[0].LightConeID = "missing"

		_, err := s.sim.Run(s.ctx, &simulator.Input{Party: p})
		s.True(errors.IsConfiguration(err))
	})

	s.Run("spirit in a slot", func() {
		p := party()
		p.Slots[2] = combat.NewSlot(catalog.Icarun)

		_, err := s.sim.Run(s.ctx, &simulator.Input{Party: p})
		s.True(errors.IsConfiguration(err))
	})
}

func (s *SimulatorTestSuite) TestSameSeedSameResult() {
	in := &simulator.Input{Party: party(), Seed: 42}

	first, err := s.sim.Run(s.ctx, in)
	s.Require().NoError(err)
	second, err := s.sim.Run(s.ctx, in)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Greater(first.TotalDamage, 0.0)
	s.Greater(first.TotalHealing, 0.0)
	s.Greater(first.TotalShield, 0.0)
}

func (s *SimulatorTestSuite) TestRunLastsTheTimeBudget() {
	p := party()
	p.Encounter.DamagePerHit = 1
	p.Encounter.Rounds = 3

	res, err := s.sim.Run(s.ctx, &simulator.Input{Party: p, Seed: 7})
	s.Require().NoError(err)

	s.Equal(p.Encounter.TimeBudget(), res.Ticks)
	s.Len(res.Breakdown, 5)
	s.True(res.Breakdown[4].Spirit)
	s.False(hasAction(res, "Party defeated"))
}

func (s *SimulatorTestSuite) TestHPStaysWithinBounds() {
	res, err := s.sim.Run(s.ctx, &simulator.Input{Party: party(), Seed: 3})
	s.Require().NoError(err)

	for _, e := range res.Log {
		if e.Actor == battle.EnemyName {
			continue
		}
		s.GreaterOrEqual(e.HP, 0.0, "%s at tick %d", e.Actor, e.Tick)
		s.LessOrEqual(e.HP, e.MaxHP+1e-6, "%s at tick %d", e.Actor, e.Tick)
		s.LessOrEqual(e.Energy, e.MaxEnergy+1e-6, "%s at tick %d", e.Actor, e.Tick)
	}
}

func (s *SimulatorTestSuite) TestLowToughnessBreaks() {
	p := party()
	p.Encounter.Toughness = 10

	res, err := s.sim.Run(s.ctx, &simulator.Input{Party: p, Seed: 1})
	s.Require().NoError(err)

	s.True(hasAction(res, "Weakness Break"))
	s.True(hasAction(res, "Inhale (break)"))
}

func (s *SimulatorTestSuite) TestOverwhelmingEnemyDefeatsParty() {
	p := party()
	p.Encounter.DamagePerHit = 1e9

	res, err := s.sim.Run(s.ctx, &simulator.Input{Party: p, Seed: 5})
	s.Require().NoError(err)

	s.True(hasAction(res, "Party defeated"))
	s.True(hasAction(res, "Dismissed"))
	s.Less(res.Ticks, p.Encounter.TimeBudget())
}

func (s *SimulatorTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.sim.Run(ctx, &simulator.Input{Party: party(), Seed: 1})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *SimulatorTestSuite) TestPublishesCombatEvents() {
	bus := events.NewBus()
	counts := make(map[string]int)
	for _, t := range simulator.EventTypes() {
		bus.SubscribeFunc(t, 0, func(_ context.Context, e events.Event) error {
			counts[e.Type()]++
			return nil
		})
	}
	sim, err := simulator.New(&simulator.Config{
		Catalog:  catalog.New(),
		Registry: hooks.NewRegistry(),
		EventBus: bus,
	})
	s.Require().NoError(err)

	_, err = sim.Run(s.ctx, &simulator.Input{RunID: "run-1", Party: party(), Seed: 9})
	s.Require().NoError(err)

	s.Positive(counts[simulator.EventTurn])
	s.Positive(counts[simulator.EventAction])
	s.Positive(counts[simulator.EventSummon])
}

func (s *SimulatorTestSuite) TestSingleMemberRuns() {
	p := combat.PartyConfig{
		Slots:     []combat.SlotConfig{{}, combat.NewSlot(catalog.Archer)},
		Encounter: combat.DefaultEncounter(),
	}

	res, err := s.sim.Run(s.ctx, &simulator.Input{Party: p, Seed: 11})
	s.Require().NoError(err)

	s.Require().Len(res.Breakdown, 1)
	s.Equal("Archer", res.Breakdown[0].Name)
	s.Greater(res.TotalDamage, 0.0)
}
