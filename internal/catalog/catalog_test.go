package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = catalog.New()
}

func (s *CatalogTestSuite) TestCharacterLookup() {
	ch, err := s.catalog.Character(catalog.Blade)
	s.Require().NoError(err)
	s.Equal(combat.ElementWind, ch.Element)
	s.Equal(1358.0, ch.Base.HP)
	s.Equal(130.0, ch.MaxEnergy)

	_, err = s.catalog.Character("nobody")
	s.Require().Error(err)
	s.True(errors.IsConfiguration(err))
	s.Equal("nobody", errors.GetMeta(err)[errors.MetaID])
}

func (s *CatalogTestSuite) TestCharacterIDsExcludeSpirits() {
	ids := s.catalog.CharacterIDs()
	s.Len(ids, 8)
	s.NotContains(ids, catalog.Icarun)
	s.NotContains(ids, catalog.DragonSpirit)
	s.Contains(ids, catalog.RuanMei)
}

func (s *CatalogTestSuite) TestEverySpiritIsDefined() {
	for _, id := range s.catalog.CharacterIDs() {
		ch, err := s.catalog.Character(id)
		s.Require().NoError(err)
		if ch.Spirit == "" {
			continue
		}
		spirit, err := s.catalog.Character(ch.Spirit)
		s.Require().NoError(err, "spirit of %s", id)
		s.True(spirit.IsSpirit)
	}
}

func (s *CatalogTestSuite) TestLightConeRanksClamp() {
	lc, err := s.catalog.LightCone(catalog.ASecretVow)
	s.Require().NoError(err)

	first := lc.Effects(0)
	last := lc.Effects(9)
	s.Require().Len(first, 1)
	s.Require().Len(last, 1)
	s.Equal(20.0, first[0].Payload.(combat.DamageBoost).Categories[combat.CategoryAll])
	s.Equal(40.0, last[0].Payload.(combat.DamageBoost).Categories[combat.CategoryAll])

	mid := lc.Effects(3)
	s.Equal(30.0, mid[0].Payload.(combat.DamageBoost).Categories[combat.CategoryAll])
}

func (s *CatalogTestSuite) TestResolveCollectsPassives() {
	slot := combat.NewSlot(catalog.Blade)
	slot.LightConeID = catalog.NinjitsuMelodyHunt
	slot.LightConeRank = 5
	slot.EidolonLevel = 6
	slot.RelicSets = []combat.RelicSetPick{{ID: catalog.SetLongevous, Count: 4}}
	slot.OrnamentID = catalog.OrnamentFleet
	slot.MainStats = map[combat.RelicPart]combat.StatKey{
		combat.PartHead:  combat.StatHP,
		combat.PartBody:  combat.StatCritDmg,
		combat.PartFeet:  combat.StatSPD,
		combat.PartHands: combat.StatATK,
	}
	slot.SubStats = combat.StatMap{combat.StatCritRate: 10, combat.StatSPD: 5}

	loadout, err := s.catalog.Resolve(slot, 2)
	s.Require().NoError(err)

	s.Equal(5, loadout.Rank)
	s.Equal(705.0, loadout.Relics[combat.StatHP])
	s.Equal(64.8, loadout.Relics[combat.StatCritDmg])
	s.Equal(30.0, loadout.Relics[combat.StatSPD])
	s.Equal(10.0, loadout.Relics[combat.StatCritRate])

	ids := map[string]bool{}
	for _, e := range loadout.Passives {
		s.Equal(2, e.Owner, e.ID)
		ids[e.ID] = true
	}
	for _, want := range []string{
		"ninjitsu_hp", "ninjitsu_crit_dmg",
		"longevous_2pc_hp", "longevous_4pc_crit",
		"fleet_hp", "fleet_party_atk",
		"blade_hellscape_boost", "blade_e2_crit_rate", "blade_e6_follow_up_boost",
	} {
		s.True(ids[want], want)
	}
}

func (s *CatalogTestSuite) TestResolveTwoPieceOnly() {
	slot := combat.NewSlot(catalog.Archer)
	slot.RelicSets = []combat.RelicSetPick{{ID: catalog.SetMusketeer, Count: 2}, {ID: catalog.SetGenius, Count: 0}}

	loadout, err := s.catalog.Resolve(slot, 0)
	s.Require().NoError(err)

	var ids []string
	for _, e := range loadout.Passives {
		ids = append(ids, e.ID)
	}
	s.Contains(ids, "musketeer_2pc_atk")
	s.NotContains(ids, "musketeer_4pc_basic")
	s.NotContains(ids, "genius_2pc_quantum")
}

func (s *CatalogTestSuite) TestResolveUnknownIDs() {
	testCases := []struct {
		name string
		edit func(*combat.SlotConfig)
		kind string
	}{
		{"light cone", func(sc *combat.SlotConfig) { sc.LightConeID = "missing" }, "light cone"},
		{"relic set", func(sc *combat.SlotConfig) {
			sc.RelicSets = []combat.RelicSetPick{{ID: "missing", Count: 2}}
		}, "relic set"},
		{"ornament", func(sc *combat.SlotConfig) { sc.OrnamentID = "missing" }, "ornament"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			slot := combat.NewSlot(catalog.Hanya)
			tc.edit(&slot)

			_, err := s.catalog.Resolve(slot, 0)
			s.Require().Error(err)
			s.True(errors.IsConfiguration(err))
			s.Equal(tc.kind, errors.GetMeta(err)[errors.MetaKind])
		})
	}
}

func (s *CatalogTestSuite) TestResolveRejectsSpirits() {
	_, err := s.catalog.Resolve(combat.NewSlot(catalog.Icarun), 0)
	s.Require().Error(err)
	s.True(errors.IsConfiguration(err))
}

func (s *CatalogTestSuite) TestMainStatValue() {
	s.Equal(38.8, catalog.MainStatValue(combat.StatWindDmg))
	s.Equal(0.0, catalog.MainStatValue(combat.StatEffectRes))
}
