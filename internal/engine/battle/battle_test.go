package battle_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/battle"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/stats"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

type BattleTestSuite struct {
	suite.Suite
	state  *battle.State
	healer *battle.Actor
	tank   *battle.Actor
}

func (s *BattleTestSuite) character(id string, spd float64) *combat.Character {
	return &combat.Character{
		ID:        id,
		Name:      id,
		Element:   combat.ElementWind,
		Base:      combat.BaseStats{HP: 1000, ATK: 500, DEF: 400, SPD: spd},
		MaxEnergy: 100,
	}
}

func (s *BattleTestSuite) place(ch *combat.Character, slot int) *battle.Actor {
	a := battle.NewActor(ch, combat.NewSlot(ch.ID), slot)
	a.Static = stats.Compute(stats.Input{Character: ch})
	a.Stats = a.Static.Total.Clone()
	a.HP = a.Stats.HP
	s.state.AddActor(a)
	return a
}

func (s *BattleTestSuite) SetupTest() {
	s.state = battle.New(combat.DefaultEncounter())
	s.healer = s.place(s.character("healer", 110), 0)
	s.tank = s.place(s.character("tank", 100), 1)
}

func (s *BattleTestSuite) TestNewState() {
	s.Equal(battle.StartingSkillPoints, s.state.SP)
	s.Equal(battle.BaseMaxSkillPoints, s.state.MaxSP)
	s.Equal(float64(combat.DefaultToughness), s.state.Enemy.Toughness)
	s.Equal(battle.Unpaired, s.state.Comrade)
	s.Equal(0, s.healer.Index)
	s.Equal(1, s.tank.Index)
	s.Same(s.tank, s.state.Actor(1))
	s.Nil(s.state.Actor(5))
	s.Same(s.tank, s.state.ByCharacter("tank"))
}

func (s *BattleTestSuite) TestHealClampsButCreditsFullAmount() {
	s.tank.HP = 900

	applied := s.state.Heal(s.healer, s.tank, 300)

	s.Equal(300.0, applied)
	s.Equal(1000.0, s.tank.HP)
	s.Equal(300.0, s.tank.HealingReceived)
	s.Equal(300.0, s.healer.HealingDone)
}

func (s *BattleTestSuite) TestHealSkipsDownedTarget() {
	s.state.KnockDown(s.tank)

	s.Zero(s.state.Heal(s.healer, s.tank, 300))
	s.Zero(s.tank.HP)
	s.Zero(s.healer.HealingDone)
}

func (s *BattleTestSuite) TestHealNotifiesObserver() {
	var seen float64
	s.state.OnHeal = func(_, _ *battle.Actor, amount float64) { seen += amount }

	s.state.Heal(s.healer, s.tank, 120)

	s.Equal(120.0, seen)
}

func (s *BattleTestSuite) TestTakeHit() {
	testCases := []struct {
		name         string
		shield       float64
		hp           float64
		hit          float64
		wantAbsorbed float64
		wantDealt    float64
		wantHP       float64
		wantDown     bool
	}{
		{name: "shield absorbs everything", shield: 150, hp: 1000, hit: 100, wantAbsorbed: 100, wantHP: 1000},
		{name: "shield absorbs first", shield: 40, hp: 1000, hit: 100, wantAbsorbed: 40, wantDealt: 60, wantHP: 940},
		{name: "no shield", hp: 500, hit: 100, wantDealt: 100, wantHP: 400},
		{name: "lethal hit floors at zero", hp: 50, hit: 100, wantDealt: 50, wantHP: 0, wantDown: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.tank.HP = tc.hp
			s.tank.Shield.Value = tc.shield

			absorbed, dealt := s.state.TakeHit(s.tank, tc.hit)

			s.Equal(tc.wantAbsorbed, absorbed)
			s.Equal(tc.wantDealt, dealt)
			s.Equal(tc.wantHP, s.tank.HP)
			s.Equal(tc.wantDown, s.tank.Down)
			s.GreaterOrEqual(s.tank.HP, 0.0)
		})
	}
}

func (s *BattleTestSuite) TestPayHPNeverDowns() {
	s.tank.HP = 100

	paid := s.state.PayHP(s.tank, 300)

	s.Equal(99.0, paid)
	s.Equal(1.0, s.tank.HP)
	s.False(s.tank.Down)
	s.Equal(99.0, s.tank.LostHP)
}

func (s *BattleTestSuite) TestGrantShieldCapped() {
	added := s.state.GrantShield(s.healer, s.tank, 800, 1000)
	s.Equal(800.0, added)

	added = s.state.GrantShield(s.healer, s.tank, 800, 1000)
	s.Equal(200.0, added)
	s.Equal(1000.0, s.tank.Shield.Value)
	s.Equal(1000.0, s.tank.Shield.Capacity)
	s.Equal(s.healer.Index, s.tank.Shield.Source)
	s.Equal(1000.0, s.healer.ShieldGranted)
	s.Equal(s.healer.Index, s.state.ShieldSource(s.tank.Index))
}

func (s *BattleTestSuite) TestSkillPoints() {
	s.Equal(5, s.state.GainSP(4))
	s.True(s.state.SpendSP(2))
	s.Equal(3, s.state.SP)
	s.False(s.state.SpendSP(4))
	s.Equal(3, s.state.SP)
}

func (s *BattleTestSuite) TestGainEnergyScalesAndCaps() {
	s.healer.Stats.EnergyRegen = 50

	s.Equal(45.0, s.state.GainEnergy(s.healer, 30))
	s.Equal(45.0, s.healer.Energy)

	s.healer.Energy = 90
	s.Equal(10.0, s.state.GainEnergy(s.healer, 30))
	s.Equal(100.0, s.healer.Energy)
	s.False(s.healer.UltimateReady(), "kit without an ultimate is never ready")
}

func (s *BattleTestSuite) TestFieldsCountDownOnOwnerTurns() {
	s.state.SetField(combat.StateLuochaField, s.healer.Index, 2)
	s.state.SetField(combat.StateToribiiField, s.tank.Index, 1)

	s.Empty(s.state.TickFields(s.healer.Index))
	s.True(s.state.FieldActive(combat.StateLuochaField))

	s.Equal([]string{combat.StateLuochaField}, s.state.TickFields(s.healer.Index))
	s.False(s.state.FieldActive(combat.StateLuochaField))
	s.True(s.state.FieldActive(combat.StateToribiiField))
	s.Equal(s.tank.Index, s.state.FieldOwner(combat.StateToribiiField))
	s.Equal(effects.NoActor, s.state.FieldOwner(combat.StateLuochaField))
}

func (s *BattleTestSuite) TestInState() {
	s.Run("field applies to everyone", func() {
		s.SetupTest()
		s.state.SetField(combat.StateRuanMeiField, s.healer.Index, 2)
		s.True(s.state.InState(s.tank.Index, combat.StateRuanMeiField))
	})
	s.Run("flag is per actor", func() {
		s.SetupTest()
		s.tank.SetFlag(combat.StateComrade, true)
		s.True(s.state.InState(s.tank.Index, combat.StateComrade))
		s.False(s.state.InState(s.healer.Index, combat.StateComrade))
	})
	s.Run("combat state toggle", func() {
		s.SetupTest()
		s.healer.Config.CombatState = map[string]bool{combat.StateHeartOfCiyu: true}
		s.True(s.state.InState(s.healer.Index, combat.StateHeartOfCiyu))
	})
	s.Run("enemy broken", func() {
		s.SetupTest()
		s.False(s.state.InState(s.healer.Index, combat.StateEnemyBroken))
		s.state.Enemy.Broken = true
		s.True(s.state.InState(s.healer.Index, combat.StateEnemyBroken))
	})
	s.Run("unknown actor", func() {
		s.SetupTest()
		s.False(s.state.InState(9, combat.StateComrade))
	})
}

func (s *BattleTestSuite) TestRecomputeAppliesActiveModifiers() {
	s.state.Party.Apply(combat.Effect{
		ID:       "party_atk",
		Scope:    combat.ScopeAllies,
		Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatATKPct: 20}},
		Duration: 2,
		Owner:    s.healer.Index,
	})
	s.healer.Passives = []combat.Effect{{
		ID:         "broken_spd",
		Scope:      combat.ScopeAllies,
		Payload:    combat.StatMod{Stats: combat.StatMap{combat.StatSPD: 10}},
		Duration:   combat.Unbounded,
		Owner:      s.healer.Index,
		Conditions: []combat.Condition{combat.InState(combat.StateEnemyBroken)},
	}}

	s.state.Recompute(s.tank)
	s.Equal(600.0, s.tank.Stats.ATK)
	s.Equal(100.0, s.tank.Stats.SPD)

	s.state.Enemy.Broken = true
	s.state.Recompute(s.tank)
	s.Equal(110.0, s.tank.Stats.SPD)

	s.state.Party.Clear()
	s.state.Enemy.Broken = false
	s.state.Recompute(s.tank)
	s.Equal(500.0, s.tank.Stats.ATK)
	s.Equal(100.0, s.tank.Stats.SPD)
}

func (s *BattleTestSuite) TestRecomputeClampsHP() {
	s.tank.Buffs.Apply(combat.Effect{
		ID:       "hp_up",
		Scope:    combat.ScopeSelf,
		Payload:  combat.StatMod{Stats: combat.StatMap{combat.StatHP: 500}},
		Duration: 1,
		Owner:    s.tank.Index,
	})
	s.state.Recompute(s.tank)
	s.tank.HP = s.tank.MaxHP()
	s.Equal(1500.0, s.tank.HP)

	s.state.TickOwner(s.tank.Index)
	s.state.Recompute(s.tank)

	s.Equal(1000.0, s.tank.HP)
}

func (s *BattleTestSuite) TestSummonTracking() {
	spirit := s.place(&combat.Character{ID: "spirit", Name: "spirit", IsSpirit: true,
		Base: combat.BaseStats{SPD: 165}}, s.healer.Slot)
	spirit.Summoner = s.healer.Index
	spirit.Present = false

	s.False(s.state.HasSummon(s.healer.Index))
	spirit.Present = true
	s.True(s.state.HasSummon(s.healer.Index))
	s.Equal(s.healer.Index, s.state.Summoner(spirit.Index))
	s.Equal(s.healer.Slot, s.state.Slot(spirit.Index))
	s.Len(s.state.Members(), 2)
	s.Len(s.state.Targets(), 2, "untargetable spirit is not a target")

	s.state.Despawn(spirit)
	s.False(s.state.HasSummon(s.healer.Index))
	s.False(spirit.Waiting())
}

func (s *BattleTestSuite) TestSchedulerTieGoesToActorsBeforeEnemy() {
	s.healer.AV = scheduler.Threshold
	s.healer.Stats.SPD = 120
	s.state.Enemy.AV = scheduler.Threshold

	idx, ok := scheduler.Next(s.state.Units())

	s.Require().True(ok)
	s.Equal(s.healer.Index, idx)
}

func (s *BattleTestSuite) TestEnemyToughness() {
	e := s.state.Enemy

	s.False(e.ReduceToughness(100))
	s.Equal(20.0, e.Toughness)
	s.True(e.ReduceToughness(50))
	s.Zero(e.Toughness)
	s.True(e.Broken)
	s.False(e.ReduceToughness(10), "a broken enemy does not break again")

	e.Recover()
	s.False(e.Broken)
	s.Equal(e.MaxToughness, e.Toughness)
}

func (s *BattleTestSuite) TestEnemyToughnessOverkillBreaksOnce() {
	e := s.state.Enemy
	s.Require().Equal(120.0, e.MaxToughness)

	s.True(e.ReduceToughness(130))
	s.Zero(e.Toughness, "toughness never goes negative")
	s.True(e.Broken)

	s.False(e.ReduceToughness(130))
	s.Zero(e.Toughness)
}

func (s *BattleTestSuite) TestRecordSnapshotsActor() {
	s.healer.Energy = 40
	s.healer.Buffs.Apply(combat.Effect{ID: "x", Source: "Buff", Duration: 2, MaxStacks: 3})
	s.healer.Buffs.Apply(combat.Effect{ID: "x", Source: "Buff", Duration: 2, MaxStacks: 3})
	s.state.Tick = 12

	entry := s.state.Record(s.healer, "Skill", battle.Amounts{Healing: 250})

	s.Equal(12, entry.Tick)
	s.Equal("healer", entry.Actor)
	s.Equal(250.0, entry.Healing)
	s.Equal(40.0, entry.Energy)
	s.Equal(100.0, entry.MaxEnergy)
	s.Equal(3, entry.SkillPoints)
	s.Equal([]string{"Buff (2 stacks) (2T)"}, entry.Effects)
	s.Len(s.state.Log, 1)

	enemy := s.state.Record(nil, "Attack", battle.Amounts{})
	s.Equal(battle.EnemyName, enemy.Actor)
}

func (s *BattleTestSuite) TestResult() {
	s.state.DealDamage(s.healer, 100.4)
	s.state.DealDamage(s.tank, 200.2)
	s.state.Heal(s.healer, s.tank, 100)
	s.tank.HP = 500
	s.state.Heal(s.healer, s.healer, 100)
	s.state.Tick = 250

	res := s.state.Result()

	s.Equal(301.0, res.TotalDamage)
	s.Equal(200.0, res.TotalHealing)
	s.Equal(250, res.Ticks)
	s.Require().Len(res.Breakdown, 2)
	s.Equal(100.0, res.Breakdown[0].Damage)
	s.Equal(200.0, res.Breakdown[1].Damage)
	s.Equal(200.0, res.Breakdown[0].Healing)
	s.Zero(res.HealingCV, "equal healing received has no variation")
}

func TestBattleTestSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}
