package stats_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/stats"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

type StatsTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (s *StatsTestSuite) SetupTest() {
	s.catalog = catalog.New()
}

func (s *StatsTestSuite) character(id string) *combat.Character {
	ch, err := s.catalog.Character(id)
	s.Require().NoError(err)
	return ch
}

func (s *StatsTestSuite) TestBaseAndTraces() {
	block := stats.Compute(stats.Input{Character: s.character(catalog.Blade)})

	s.Equal(1358.0, block.Base.HP)
	s.Equal(1738.0, block.Total.HP)
	s.Equal(543.0, block.Total.ATK)
	s.Equal(97.0, block.Total.SPD)
	s.InDelta(17.0, block.Total.CritRate, 1e-9)
	s.InDelta(50.0, block.Total.CritDmg, 1e-9)
	s.InDelta(10.0, block.Total.EffectRes, 1e-9)
}

func (s *StatsTestSuite) TestLightConeAndStaticPassives() {
	slot := combat.NewSlot(catalog.Blade)
	slot.LightConeID = catalog.NinjitsuMelodyHunt
	loadout, err := s.catalog.Resolve(slot, 0)
	s.Require().NoError(err)

	block := stats.Compute(stats.Input{
		Character: loadout.Character,
		LightCone: loadout.LightCone,
		Relics:    loadout.Relics,
		Passives:  loadout.Passives,
	})

	s.Equal(2416.0, block.Base.HP)
	s.Equal(1019.0, block.Base.ATK)
	// 28% traces + 12% light cone
	s.Equal(3382.0, block.Total.HP)
	// conditional hellscape boost and the crit trigger stay out
	s.InDelta(50.0, block.Total.CritDmg, 1e-9)
}

func (s *StatsTestSuite) TestConditionalPassivesAreDeferred() {
	conditional := combat.Effect{
		ID:         "cond",
		Scope:      combat.ScopeSelf,
		Payload:    combat.StatMod{Stats: combat.StatMap{combat.StatATK: 1000}},
		Duration:   combat.Unbounded,
		Conditions: []combat.Condition{combat.HPBelow(50)},
	}
	timed := combat.Effect{
		ID:       "timed",
		Scope:    combat.ScopeSelf,
		Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatATK: 1000}},
		Duration: 2,
	}
	party := combat.Effect{
		ID:       "party",
		Scope:    combat.ScopeAllies,
		Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatATK: 1000}},
		Duration: combat.Unbounded,
	}

	block := stats.Compute(stats.Input{
		Character: s.character(catalog.Blade),
		Passives:  []combat.Effect{conditional, timed, party},
	})

	s.Equal(543.0, block.Total.ATK)
	s.False(stats.Static(conditional))
	s.False(stats.Static(timed))
	s.False(stats.Static(party))
}

func (s *StatsTestSuite) TestSelfSpeedBonus() {
	testCases := []struct {
		name   string
		relics combat.StatMap
		wantHP float64
	}{
		{"below threshold", nil, 1195},
		{"above threshold", combat.StatMap{combat.StatSPD: 80}, 1412},
		{"exactly threshold is not enough", combat.StatMap{combat.StatSPD: 76}, 1195},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			block := stats.Compute(stats.Input{
				Character: s.character(catalog.Xianci),
				Relics:    tc.relics,
			})
			s.Equal(tc.wantHP, block.Total.HP)
		})
	}
}

func (s *StatsTestSuite) TestSummonerDerivedStats() {
	summoner := stats.Compute(stats.Input{
		Character: s.character(catalog.Xianci),
		Relics:    combat.StatMap{combat.StatSPD: 80},
	})

	block := stats.Compute(stats.Input{
		Character: s.character(catalog.Icarun),
		Summoner:  &summoner,
	})

	s.Equal(706.0, block.Base.HP)
	s.Equal(847.0, block.Total.HP)

	slow := stats.Compute(stats.Input{Character: s.character(catalog.Xianci)})
	block = stats.Compute(stats.Input{
		Character: s.character(catalog.Icarun),
		Summoner:  &slow,
	})
	s.Equal(597.5, block.Base.HP)
	s.Equal(598.0, block.Total.HP)
}

func (s *StatsTestSuite) TestIdempotent() {
	slot := combat.NewSlot(catalog.Luocha)
	slot.LightConeID = catalog.PerfectTiming
	slot.RelicSets = []combat.RelicSetPick{{ID: catalog.SetMessenger, Count: 4}}
	slot.SubStats = combat.StatMap{combat.StatSPD: 12, combat.StatATKPct: 20}
	loadout, err := s.catalog.Resolve(slot, 1)
	s.Require().NoError(err)

	in := stats.Input{
		Character: loadout.Character,
		LightCone: loadout.LightCone,
		Relics:    loadout.Relics,
		Passives:  loadout.Passives,
	}
	s.Equal(stats.Compute(in), stats.Compute(in))
}

func (s *StatsTestSuite) TestWithModifiers() {
	block := stats.Compute(stats.Input{Character: s.character(catalog.Blade)})

	total := stats.WithModifiers(block, combat.StatMap{
		combat.StatATKPct:  10,
		combat.StatSPDPct:  10,
		combat.StatWindDmg: 20,
	})

	s.Equal(597.0, total.ATK)
	s.InDelta(106.7, total.SPD, 1e-9)
	s.Equal(20.0, total.ElementalDmg[combat.ElementWind])
	// the block itself is untouched
	s.Equal(543.0, block.Total.ATK)
	s.Zero(block.Total.ElementalDmg[combat.ElementWind])
}

func (s *StatsTestSuite) TestStatModsScaleByStacks() {
	mods := stats.StatMods([]combat.Effect{
		{Payload: combat.StatMod{Stats: combat.StatMap{combat.StatATKPct: 8}}, Stacks: 3},
		{Payload: combat.DefShred{Percent: 10}},
	})
	s.Equal(combat.StatMap{combat.StatATKPct: 24}, mods)
}
