package catalog

import "github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"

// Character ids
const (
	Blade            = "blade"
	Toribii          = "toribii"
	Archer           = "archer"
	Hanya            = "hanya"
	Luocha           = "luocha"
	Xianci           = "xianci"
	Icarun           = "icarun"
	RuanMei          = "ruan_mei"
	DanHengTengHuang = "dan_heng_teng_huang"
	DragonSpirit     = "dragon_spirit_dhth"
)

func characters() []*combat.Character {
	return []*combat.Character{
		blade(), toribii(), archer(), hanya(), luocha(),
		xianci(), icarun(), ruanMei(), danHengTengHuang(), dragonSpirit(),
	}
}

func blade() *combat.Character {
	hp := combat.ScaleHP
	return &combat.Character{
		ID:        Blade,
		Name:      "Blade",
		Element:   combat.ElementWind,
		Base:      combat.BaseStats{HP: 1358, ATK: 543, DEF: 485, SPD: 97},
		MaxEnergy: 130,
		Traces: combat.StatMap{
			combat.StatHPPct:     28,
			combat.StatCritRate:  12,
			combat.StatEffectRes: 10,
		},
		Actions: kit(
			single(combat.ActionBasic, "Shard Sword", 10, 20, combat.Scale(hp, 50)),
			single(combat.ActionSkill, "Hellscape", 0, 0),
			blast(combat.ActionEnhancedBasic, "Forest of Swords", 20, 10, 30,
				[]combat.Scaling{combat.Scale(hp, 130)},
				[]combat.Scaling{combat.Scale(hp, 52)}),
			blast(combat.ActionUltimate, "Death Sentence", 20, 20, 5,
				[]combat.Scaling{combat.Scale(hp, 150), combat.Scale(combat.ScaleLostHP, 120)},
				[]combat.Scaling{combat.Scale(hp, 60), combat.Scale(combat.ScaleLostHP, 60)}),
			aoe(combat.ActionFollowUp, "Shuhu's Gift", 10, 10, combat.Scale(hp, 130)),
			aoe(combat.ActionTechnique, "Karma Wind", 0, 0, combat.Scale(hp, 40)),
		),
		Talents: []combat.Effect{
			passive("blade_heal_boost", "Endurance of Lingering Death", combat.HealBoost{Percent: 20}),
			passive("blade_follow_up_boost", "Cyclone of Destruction", boost(20, combat.CategoryFollowUp)),
			passive("blade_hellscape_boost", "Hellscape", boost(40, combat.CategoryAll),
				combat.InState(combat.StateHellscape)),
		},
		Eidolons: map[int][]combat.Effect{
			2: {passive("blade_e2_crit_rate", "Eidolon 2", stat(combat.StatCritRate, 15),
				combat.InState(combat.StateHellscape))},
			6: {passive("blade_e6_follow_up_boost", "Eidolon 6", boost(50, combat.CategoryFollowUp))},
		},
		DefaultRotation: "S,E,E",
	}
}

func toribii() *combat.Character {
	hp := combat.ScaleHP
	revelation := timed("toribii_divine_revelation", "Divine Revelation", combat.ScopeAllies,
		combat.ResPen{Percent: 24}, 3)
	return &combat.Character{
		ID:             Toribii,
		Name:           "Tribbie",
		Element:        combat.ElementQuantum,
		Base:           combat.BaseStats{HP: 1047, ATK: 524, DEF: 728, SPD: 96},
		MaxEnergy:      120,
		StartingEnergy: 30,
		Traces: combat.StatMap{
			combat.StatCritDmg:  37.3,
			combat.StatCritRate: 12,
			combat.StatHPPct:    10,
		},
		Actions: kit(
			blast(combat.ActionBasic, "Hundred Rockets", 10, 10, 20,
				[]combat.Scaling{combat.Scale(hp, 27)},
				[]combat.Scaling{combat.Scale(hp, 13)}),
			withEffects(single(combat.ActionSkill, "Divine Revelation", 0, 30), revelation),
			withEffects(aoe(combat.ActionUltimate, "Guess Who Lives Here", 20, 5, combat.Scale(hp, 30)),
				timed("toribii_field_vulnerability", "Guess Who Lives Here", combat.ScopeEnemies,
					combat.DamageTaken{Percent: 30}, 2)),
			aoe(combat.ActionFollowUp, "Busy as Tribbie", 10, 5, combat.Scale(hp, 18)),
			single(combat.ActionAdditional, "Field Additional Damage", 0, 0, combat.Scale(hp, 12)),
			withEffects(single(combat.ActionTechnique, "If You're Happy and You Know It", 0, 0), revelation),
		),
	}
}

func archer() *combat.Character {
	atk := combat.ScaleATK
	return &combat.Character{
		ID:                 Archer,
		Name:               "Archer",
		Element:            combat.ElementQuantum,
		Base:               combat.BaseStats{HP: 1164, ATK: 620, DEF: 485, SPD: 105},
		MaxEnergy:          220,
		SkillPointCapBonus: 2,
		Traces: combat.StatMap{
			combat.StatQuantumDmg: 22.4,
			combat.StatCritRate:   6.7,
			combat.StatATKPct:     18,
		},
		Actions: kit(
			single(combat.ActionBasic, "Kanshou and Bakuya", 10, 20, combat.Scale(atk, 100)),
			withEffects(single(combat.ActionSkill, "Caladbolg II: Fake Spiral Sword", 20, 30, combat.Scale(atk, 360)),
				stacking(timed("archer_circuit_connection", "Circuit Connection", combat.ScopeSelf,
					boost(100, combat.CategorySkill), combat.Unbounded), 2)),
			single(combat.ActionUltimate, "Unlimited Blade Works", 30, 5, combat.Scale(atk, 1000)),
			single(combat.ActionFollowUp, "Mind's Eye (True)", 10, 5, combat.Scale(atk, 200)),
			aoe(combat.ActionTechnique, "Clairvoyance", 0, 0, combat.Scale(atk, 200)),
		),
	}
}

func hanya() *combat.Character {
	atk := combat.ScaleATK
	return &combat.Character{
		ID:        Hanya,
		Name:      "Hanya",
		Element:   combat.ElementPhysical,
		Base:      combat.BaseStats{HP: 917, ATK: 564, DEF: 352, SPD: 110},
		MaxEnergy: 140,
		Traces: combat.StatMap{
			combat.StatHPPct:  10,
			combat.StatSPD:    9,
			combat.StatATKPct: 28,
		},
		Actions: kit(
			single(combat.ActionBasic, "Oracle Brush", 10, 20, combat.Scale(atk, 100)),
			single(combat.ActionSkill, "Samsara, Locked", 20, 30, combat.Scale(atk, 240)),
			single(combat.ActionUltimate, "Ten-Lords' Decree, All Shall Obey", 0, 5),
			single(combat.ActionTechnique, "Netherworld Judgment", 0, 0),
		),
	}
}

func luocha() *combat.Character {
	atk := combat.ScaleATK
	return &combat.Character{
		ID:        Luocha,
		Name:      "Luocha",
		Element:   combat.ElementImaginary,
		Base:      combat.BaseStats{HP: 1280, ATK: 756, DEF: 363, SPD: 101},
		MaxEnergy: 100,
		Traces: combat.StatMap{
			combat.StatATKPct:    28,
			combat.StatHPPct:     18,
			combat.StatDEFPct:    12.5,
			combat.StatEffectRes: 70,
		},
		Actions: kit(
			single(combat.ActionBasic, "Thorns of the Abyss", 10, 20, combat.Scale(atk, 100)),
			withHeal(single(combat.ActionSkill, "Prayer of Abyss Flower", 0, 30),
				scaleFlat(atk, 60, 800)),
			aoe(combat.ActionUltimate, "Death Wish", 20, 5, combat.Scale(atk, 200)),
			single(combat.ActionTechnique, "Mercy of a Fool", 0, 0),
		),
		Eidolons: map[int][]combat.Effect{
			1: {aura("luocha_e1_atk", "Eidolon 1", stat(combat.StatATKPct, 20),
				combat.InState(combat.StateLuochaField))},
			2: {passive("luocha_e2_heal_boost", "Eidolon 2", combat.HealBoost{Percent: 30},
				combat.HPBelow(50))},
		},
	}
}

func xianci() *combat.Character {
	hp := combat.ScaleHP
	return &combat.Character{
		ID:        Xianci,
		Name:      "Hyacine",
		Element:   combat.ElementWind,
		Base:      combat.BaseStats{HP: 1086, ATK: 388, DEF: 630, SPD: 110},
		MaxEnergy: 140,
		Spirit:    Icarun,
		Traces: combat.StatMap{
			combat.StatHPPct:     10,
			combat.StatEffectRes: 18,
			combat.StatSPD:       14,
		},
		SelfBonuses: []combat.Effect{
			passive("xianci_tempest_hp", "Tempestuous Halt", stat(combat.StatHPPct, 20),
				combat.StatAbove(combat.StatSPD, 200)),
		},
		Actions: kit(
			single(combat.ActionBasic, "When Breeze Kisses Cirrus", 10, 20, combat.Scale(hp, 50)),
			withHeal(aoe(combat.ActionSkill, "Love Over the Rainbow", 0, 30),
				scaleFlat(hp, 8, 160)),
			withEffects(withHeal(aoe(combat.ActionUltimate, "We Who Fly Into Twilight", 0, 5),
				scaleFlat(hp, 10, 200)),
				timed("xianci_after_rain", "After Rain", combat.ScopeAllies,
					stats(combat.StatMap{combat.StatHPPct: 30, combat.StatHP: 600}), 3)),
			withHeal(single(combat.ActionSpiritTalent, "Gentle Thunderstorm", 0, 0),
				scaleFlat(hp, 2, 20)),
			withEffects(single(combat.ActionTechnique, "Day So Right, Life So Bright", 0, 0),
				timed("xianci_technique_hp", "Day So Right, Life So Bright", combat.ScopeAllies,
					stat(combat.StatHPPct, 20), 2)),
		),
		Talents: []combat.Effect{
			passive("xianci_icarun_crit", "Smiling Cloud", stat(combat.StatCritRate, 100),
				combat.InState(combat.StateIcarunPresent)),
			passive("xianci_low_hp_heal", "Smiling Cloud", combat.HealBoost{Percent: 25},
				combat.HPBelow(50)),
		},
		Eidolons: map[int][]combat.Effect{
			6: {aura("xianci_e6_res_pen", "Eidolon 6", combat.ResPen{Percent: 20},
				combat.InState(combat.StateIcarunPresent))},
		},
	}
}

func icarun() *combat.Character {
	return &combat.Character{
		ID:              Icarun,
		Name:            "Icarun",
		Element:         combat.ElementWind,
		IsSpirit:        true,
		Targetable:      true,
		SummonerHPRatio: 0.5,
		SelfBonuses: []combat.Effect{
			passive("icarun_tempest_hp", "Tempestuous Halt", stat(combat.StatHPPct, 20),
				combat.StatAbove(combat.StatSPD, 200).OfSummoner()),
		},
		Talents: []combat.Effect{
			passive("icarun_crit", "Smiling Cloud", stat(combat.StatCritRate, 100)),
		},
		Actions: kit(
			aoe(combat.ActionSpiritSkill, "Rain Cleanse", 10, 0,
				combat.Scale(combat.ScaleAccumulatedHeal, 20)),
		),
	}
}

func ruanMei() *combat.Character {
	atk := combat.ScaleATK
	return &combat.Character{
		ID:        RuanMei,
		Name:      "Ruan Mei",
		Element:   combat.ElementIce,
		Base:      combat.BaseStats{HP: 1086, ATK: 659, DEF: 485, SPD: 104},
		MaxEnergy: 130,
		Traces: combat.StatMap{
			combat.StatBreakEffect: 37.3,
			combat.StatDEFPct:      22.5,
			combat.StatSPD:         5,
		},
		Actions: kit(
			single(combat.ActionBasic, "Threading Fragrance", 10, 20, combat.Scale(atk, 100)),
			withEffects(single(combat.ActionSkill, "String Sings Slow Swirls", 0, 30),
				timed("ruan_mei_overtone_dmg", "Overtone", combat.ScopeAllies, boost(32, combat.CategoryAll), 3),
				timed("ruan_mei_overtone_break", "Overtone", combat.ScopeAllies, combat.BreakEfficiency{Percent: 50}, 3)),
			withEffects(single(combat.ActionUltimate, "Petals to Stream, Repose in Dream", 0, 5),
				timed("ruan_mei_field_res_pen", "Petals to Stream", combat.ScopeAllies, combat.ResPen{Percent: 25}, 2)),
			single(combat.ActionTechnique, "Silken Serenade", 0, 0),
		),
		Talents: []combat.Effect{
			aura("ruan_mei_inhale_break", "Inhale", stat(combat.StatBreakEffect, 20)),
		},
		Eidolons: map[int][]combat.Effect{
			1: {aura("ruan_mei_e1_def_shred", "Eidolon 1", combat.DefShred{Percent: 20},
				combat.InState(combat.StateRuanMeiField))},
			2: {aura("ruan_mei_e2_atk", "Eidolon 2", stat(combat.StatATKPct, 40),
				combat.InState(combat.StateEnemyBroken))},
		},
	}
}

func danHengTengHuang() *combat.Character {
	atk := combat.ScaleATK
	shield := scaleFlat(atk, 20, 400)
	return &combat.Character{
		ID:        DanHengTengHuang,
		Name:      "Dan Heng - Permansor Terrae",
		Element:   combat.ElementPhysical,
		Base:      combat.BaseStats{HP: 1047, ATK: 582, DEF: 776, SPD: 97},
		MaxEnergy: 135,
		Spirit:    DragonSpirit,
		Traces: combat.StatMap{
			combat.StatATKPct: 28,
			combat.StatDEFPct: 22.5,
			combat.StatSPD:    5,
		},
		Actions: kit(
			single(combat.ActionBasic, "Coiled Spirit", 10, 20, combat.Scale(atk, 100)),
			withShield(aoe(combat.ActionSkill, "Sanctified by Stone", 0, 30), shield),
			withShield(aoe(combat.ActionUltimate, "Heaven Shaker", 20, 5, combat.Scale(atk, 300)), shield),
			single(combat.ActionTechnique, "Thousand Peaks Tremble", 0, 0),
		),
		Eidolons: map[int][]combat.Effect{
			1: {aura("dhth_e1_res_pen", "Eidolon 1", combat.ResPen{Percent: 18},
				combat.InState(combat.StateComrade))},
			4: {aura("dhth_e4_damage_reduction", "Eidolon 4", combat.DamageTaken{Percent: -20},
				combat.InState(combat.StateComrade))},
			6: {aura("dhth_e6_def_ignore", "Eidolon 6", combat.DefShred{Percent: 12},
				combat.InState(combat.StateComrade))},
		},
	}
}

func dragonSpirit() *combat.Character {
	atk := combat.ScaleATK
	return &combat.Character{
		ID:              DragonSpirit,
		Name:            "Dragon Spirit",
		Element:         combat.ElementPhysical,
		Base:            combat.BaseStats{SPD: 165},
		IsSpirit:        true,
		SummonerScaling: true,
		Actions: kit(
			withShield(aoe(combat.ActionSpiritSkill, "Dragon Spirit", 0, 0), scaleFlat(atk, 10, 200)),
			withShield(single(combat.ActionStandingTall, "Standing Tall", 0, 0), scaleFlat(atk, 5, 100)),
			aoe(combat.ActionEnhancedSpiritSkill, "Dragon Spirit (Enhanced)", 10, 0,
				combat.Scale(atk, 80), combat.Scale(combat.ScaleComradeATK, 80)),
		),
	}
}
