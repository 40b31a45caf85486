package effects_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/effects"
	effectsmock "github.com/KirkDiggler/rpg-combat-sim/internal/engine/effects/mock"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

type EvaluatorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	env       *effectsmock.MockEnvironment
	evaluator *effects.Evaluator
}

func TestEvaluatorTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func (s *EvaluatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.env = effectsmock.NewMockEnvironment(s.ctrl)
	s.evaluator = effects.NewEvaluator(s.env)
}

func (s *EvaluatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func withConditions(owner int, kind combat.EffectKind, conds ...combat.Condition) combat.Effect {
	e := combat.Effect{ID: "e", Owner: owner, Duration: combat.Unbounded, Conditions: conds}
	switch kind {
	case combat.KindHealBoost:
		e.Payload = combat.HealBoost{Percent: 30}
	default:
		e.Payload = combat.StatMod{Stats: combat.StatMap{combat.StatATKPct: 10}}
	}
	return e
}

func (s *EvaluatorTestSuite) TestUnconditionalAlwaysActive() {
	s.True(s.evaluator.IsActive(withConditions(0, combat.KindStatMod), 3))
}

func (s *EvaluatorTestSuite) TestHPBelow() {
	e := withConditions(0, combat.KindStatMod, combat.HPBelow(50))

	s.env.EXPECT().HPPercent(1).Return(49.9)
	s.True(s.evaluator.IsActive(e, 1))

	s.env.EXPECT().HPPercent(1).Return(50.0)
	s.False(s.evaluator.IsActive(e, 1))
}

func (s *EvaluatorTestSuite) TestHPBelowOnHealBoostReadsTarget() {
	e := withConditions(0, combat.KindHealBoost, combat.HPBelow(50))

	s.env.EXPECT().HPPercent(2).Return(20.0)
	s.True(s.evaluator.IsActiveOn(e, 0, 2))

	s.env.EXPECT().HPPercent(0).Return(100.0)
	s.False(s.evaluator.IsActive(e, 0))
}

func (s *EvaluatorTestSuite) TestInStateOwnerSubject() {
	e := withConditions(2, combat.KindStatMod, combat.InState(combat.StateLuochaField).OfOwner())

	s.env.EXPECT().InState(2, combat.StateLuochaField).Return(true)
	s.True(s.evaluator.IsActive(e, 0))
}

func (s *EvaluatorTestSuite) TestStatThresholds() {
	gte := withConditions(0, combat.KindStatMod, combat.StatAtLeast(combat.StatSPD, 120))
	gt := withConditions(0, combat.KindStatMod, combat.StatAbove(combat.StatSPD, 120))

	s.env.EXPECT().Stat(1, combat.StatSPD).Return(120.0).Times(2)
	s.True(s.evaluator.IsActive(gte, 1))
	s.False(s.evaluator.IsActive(gt, 1))
}

func (s *EvaluatorTestSuite) TestShieldFromOwner() {
	e := withConditions(3, combat.KindStatMod, combat.Condition{Kind: combat.CondHasShieldFrom})

	s.env.EXPECT().ShieldSource(0).Return(3)
	s.True(s.evaluator.IsActive(e, 0))

	s.env.EXPECT().ShieldSource(0).Return(effects.NoActor)
	s.False(s.evaluator.IsActive(e, 0))
}

func (s *EvaluatorTestSuite) TestPartySlotAndSummon() {
	slot := withConditions(0, combat.KindStatMod, combat.Condition{Kind: combat.CondIsPartyMember, Slot: 0})
	summon := withConditions(0, combat.KindStatMod, combat.Condition{Kind: combat.CondHasSummon})

	s.env.EXPECT().Slot(2).Return(2)
	s.False(s.evaluator.IsActive(slot, 2))

	s.env.EXPECT().HasSummon(1).Return(true)
	s.True(s.evaluator.IsActive(summon, 1))
}

func (s *EvaluatorTestSuite) TestSummonerSubject() {
	e := withConditions(4, combat.KindStatMod, combat.StatAbove(combat.StatSPD, 200).OfSummoner())

	s.env.EXPECT().Summoner(4).Return(1)
	s.env.EXPECT().Stat(1, combat.StatSPD).Return(210.0)
	s.True(s.evaluator.IsActive(e, 4))

	s.env.EXPECT().Summoner(0).Return(effects.NoActor)
	s.False(s.evaluator.IsActive(e, 0))
}

func (s *EvaluatorTestSuite) TestAllConditionsMustHold() {
	e := withConditions(0, combat.KindStatMod,
		combat.InState(combat.StateHellscape),
		combat.HPBelow(50),
	)

	s.env.EXPECT().InState(0, combat.StateHellscape).Return(false)
	s.False(s.evaluator.IsActive(e, 0))
}

func (s *EvaluatorTestSuite) TestCollectActiveKeepsOrder() {
	a := withConditions(0, combat.KindStatMod)
	a.ID = "a"
	b := withConditions(0, combat.KindStatMod, combat.InState(combat.StateRainfall))
	b.ID = "b"
	c := withConditions(0, combat.KindStatMod)
	c.ID = "c"

	s.env.EXPECT().InState(1, combat.StateRainfall).Return(false)

	got := s.evaluator.CollectActive(1, []combat.Effect{a, b}, []combat.Effect{c})
	s.Require().Len(got, 2)
	s.Equal("a", got[0].ID)
	s.Equal("c", got[1].ID)
}
