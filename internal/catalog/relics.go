package catalog

import "github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"

// Relic set and ornament ids the engine reacts to
const (
	SetMusketeer = "musketeer"
	SetMessenger = "messenger"
	SetGenius    = "genius"
	SetEagle     = "eagle"
	SetThief     = "thief"
	SetLongevous = "longevous"
	SetGrandDuke = "grand_duke"
	SetPrisoner  = "prisoner"
	SetPriest    = "priest"
	SetScholar   = "scholar"
	SetPoet      = "poet"
	SetWarGod    = "war_god"
	SetHermit    = "hermit"

	OrnamentSpaceSealing  = "space_sealing_station"
	OrnamentFleet         = "fleet_of_the_ageless"
	OrnamentSalsotto      = "inert_salsotto"
	OrnamentWenge         = "live_giving_wenge"
	OrnamentArena         = "arena_of_the_stars"
	OrnamentBrokenKeel    = "broken_keel"
	OrnamentRusalka       = "rusalka_submerged_in_the_sea"
	OrnamentVanadice      = "vanadice_of_the_bizarre"
	OrnamentGreatTree     = "great_tree_immersed_in_deep_thought"
	OrnamentDrunkenness   = "sea_of_drunkenness"
	OrnamentSereneOssuary = "serene_ossuary"
)

func relicSets() []*combat.RelicSet {
	return []*combat.RelicSet{
		{
			ID: SetMusketeer, Name: "Musketeer of Wild Wheat",
			TwoPiece: []combat.Effect{passive("musketeer_2pc_atk", "Musketeer", stat(combat.StatATKPct, 12))},
			FourPiece: []combat.Effect{
				passive("musketeer_4pc_spd", "Musketeer", stat(combat.StatSPD, 6)),
				passive("musketeer_4pc_basic", "Musketeer", boost(10, combat.CategoryBasic)),
			},
		},
		{
			ID: SetMessenger, Name: "Messenger Traversing Hackerspace",
			TwoPiece:  []combat.Effect{passive("messenger_2pc_spd", "Messenger", stat(combat.StatSPD, 6))},
			FourPiece: []combat.Effect{passive("messenger_4pc_party_spd", "Messenger", special(combat.TagPartySpeedOnUlt, 12))},
		},
		{
			ID: SetGenius, Name: "Genius of Brilliant Stars",
			TwoPiece:  []combat.Effect{passive("genius_2pc_quantum", "Genius", stat(combat.StatQuantumDmg, 10))},
			FourPiece: []combat.Effect{passive("genius_4pc_def_shred", "Genius", combat.DefShred{Percent: 10})},
		},
		{
			ID: SetEagle, Name: "Eagle of Twilight Line",
			TwoPiece:  []combat.Effect{passive("eagle_2pc_wind", "Eagle", stat(combat.StatWindDmg, 10))},
			FourPiece: []combat.Effect{passive("eagle_4pc_advance", "Eagle", special(combat.TagAdvanceOnUltimate, 25))},
		},
		{
			ID: SetThief, Name: "Thief of Shooting Meteor",
			TwoPiece: []combat.Effect{passive("thief_2pc_break", "Thief", stat(combat.StatBreakEffect, 16))},
			FourPiece: []combat.Effect{
				passive("thief_4pc_break", "Thief", stat(combat.StatBreakEffect, 16)),
				passive("thief_4pc_energy", "Thief", special(combat.TagEnergyOnBreak, 3)),
			},
		},
		{
			ID: SetLongevous, Name: "Longevous Disciple",
			TwoPiece:  []combat.Effect{passive("longevous_2pc_hp", "Longevous", stat(combat.StatHPPct, 12))},
			FourPiece: []combat.Effect{passive("longevous_4pc_crit", "Longevous", special(combat.TagCritRateWhenHit, 8))},
		},
		{
			ID: SetGrandDuke, Name: "The Ashblazing Grand Duke",
			TwoPiece:  []combat.Effect{passive("grand_duke_2pc_follow_up", "Grand Duke", boost(20, combat.CategoryFollowUp))},
			FourPiece: []combat.Effect{passive("grand_duke_4pc_atk", "Grand Duke", special(combat.TagFollowUpAtkStack, 6))},
		},
		{
			ID: SetPrisoner, Name: "Prisoner in Deep Confinement",
			TwoPiece:  []combat.Effect{passive("prisoner_2pc_atk", "Prisoner", stat(combat.StatATKPct, 12))},
			FourPiece: []combat.Effect{passive("prisoner_4pc_def_shred", "Prisoner", special(combat.TagPerDotDefShred, 6))},
		},
		{
			ID: SetPriest, Name: "Sacerdos' Relived Ordeal",
			TwoPiece:  []combat.Effect{passive("priest_2pc_spd", "Priest", stat(combat.StatSPD, 6))},
			FourPiece: []combat.Effect{passive("priest_4pc_crit_dmg", "Priest", special(combat.TagCritDmgOnShield, 18))},
		},
		{
			ID: SetScholar, Name: "Scholar Lost in Erudition",
			TwoPiece: []combat.Effect{passive("scholar_2pc_crit", "Scholar", stat(combat.StatCritRate, 8))},
			FourPiece: []combat.Effect{
				passive("scholar_4pc_dmg", "Scholar", boost(20, combat.CategorySkill, combat.CategoryUltimate)),
				passive("scholar_4pc_next_skill", "Scholar", special(combat.TagNextSkillBoost, 25)),
			},
		},
		{
			ID: SetPoet, Name: "Poet of Mourning Collapse",
			TwoPiece: []combat.Effect{passive("poet_2pc_quantum", "Poet", stat(combat.StatQuantumDmg, 10))},
			FourPiece: []combat.Effect{
				passive("poet_4pc_spd", "Poet", stat(combat.StatSPD, -8)),
				passive("poet_4pc_crit", "Poet", special(combat.TagOpeningCritBySpeed, 0)),
			},
		},
		{
			ID: SetWarGod, Name: "Warrior Goddess of Sun and Thunder",
			TwoPiece: []combat.Effect{passive("war_god_2pc_spd", "War God", stat(combat.StatSPD, 6))},
			FourPiece: []combat.Effect{
				passive("war_god_4pc_trigger", "War God", special(combat.TagHealTriggerBuff, 2)),
				passive("war_god_4pc_spd", "Gentle Rain", stat(combat.StatSPD, 6),
					combat.InState(combat.StateHeartOfCiyu)),
				aura("war_god_4pc_crit_dmg", "Gentle Rain", stat(combat.StatCritDmg, 15),
					combat.InState(combat.StateHeartOfCiyu).OfOwner()),
			},
		},
		{
			ID: SetHermit, Name: "Knight of Purity Palace",
			TwoPiece: []combat.Effect{passive("hermit_2pc_shield", "Hermit", special(combat.TagShieldStrength, 10))},
			FourPiece: []combat.Effect{
				passive("hermit_4pc_shield", "Hermit", special(combat.TagShieldStrength, 12)),
				aura("hermit_4pc_crit_dmg", "Hermit", stat(combat.StatCritDmg, 15),
					combat.Condition{Kind: combat.CondHasShieldFrom}),
			},
		},
	}
}

func ornaments() []*combat.Ornament {
	return []*combat.Ornament{
		{
			ID: OrnamentSpaceSealing, Name: "Space Sealing Station",
			Effects: []combat.Effect{
				passive("space_station_atk", "Space Sealing Station", stat(combat.StatATKPct, 12)),
				passive("space_station_atk_spd", "Space Sealing Station", stat(combat.StatATKPct, 12),
					combat.StatAtLeast(combat.StatSPD, 120)),
			},
		},
		{
			ID: OrnamentFleet, Name: "Fleet of the Ageless",
			Effects: []combat.Effect{
				passive("fleet_hp", "Fleet of the Ageless", stat(combat.StatHPPct, 12)),
				aura("fleet_party_atk", "Fleet of the Ageless", stat(combat.StatATKPct, 8),
					combat.StatAtLeast(combat.StatSPD, 120).OfOwner()),
			},
		},
		{
			ID: OrnamentSalsotto, Name: "Inert Salsotto",
			Effects: []combat.Effect{
				passive("salsotto_crit", "Inert Salsotto", stat(combat.StatCritRate, 8)),
				passive("salsotto_dmg", "Inert Salsotto", boost(15, combat.CategoryUltimate, combat.CategoryFollowUp),
					combat.StatAtLeast(combat.StatCritRate, 50)),
			},
		},
		{
			ID: OrnamentWenge, Name: "Sprightly Vonwacq",
			Effects: []combat.Effect{
				passive("wenge_energy", "Sprightly Vonwacq", stat(combat.StatEnergyRegen, 5)),
				passive("wenge_advance", "Sprightly Vonwacq", special(combat.TagInitialAdvance, 40),
					combat.StatAtLeast(combat.StatSPD, 120)),
			},
		},
		{
			ID: OrnamentArena, Name: "Firmament Frontline: Glamoth",
			Effects: []combat.Effect{
				passive("arena_crit", "Arena of the Stars", stat(combat.StatCritRate, 8)),
				passive("arena_dmg", "Arena of the Stars", boost(20, combat.CategoryBasic, combat.CategorySkill),
					combat.StatAtLeast(combat.StatCritRate, 70)),
			},
		},
		{
			ID: OrnamentBrokenKeel, Name: "Broken Keel",
			Effects: []combat.Effect{
				passive("keel_res", "Broken Keel", stat(combat.StatEffectRes, 10)),
				aura("keel_party_crit_dmg", "Broken Keel", stat(combat.StatCritDmg, 10),
					combat.StatAtLeast(combat.StatEffectRes, 30).OfOwner()),
			},
		},
		{
			ID: OrnamentRusalka, Name: "Penacony, Land of the Dreams",
			Effects: []combat.Effect{
				passive("rusalka_energy", "Rusalka", stat(combat.StatEnergyRegen, 5)),
				aura("rusalka_first_slot_atk", "Rusalka", stat(combat.StatATKPct, 12),
					combat.Condition{Kind: combat.CondIsPartyMember, Slot: 0}),
			},
		},
		{
			ID: OrnamentVanadice, Name: "Vanadice of the Bizarre",
			Effects: []combat.Effect{
				passive("vanadice_crit_dmg", "Vanadice", stat(combat.StatCritDmg, 16)),
				passive("vanadice_summon_crit_dmg", "Vanadice", stat(combat.StatCritDmg, 32),
					combat.Condition{Kind: combat.CondHasSummon}),
			},
		},
		{
			ID: OrnamentGreatTree, Name: "Giant Tree of Rapt Brooding",
			Effects: []combat.Effect{
				passive("great_tree_spd", "Great Tree", stat(combat.StatSPD, 6)),
				passive("great_tree_heal_135", "Great Tree", combat.HealBoost{Percent: 12},
					combat.StatAtLeast(combat.StatSPD, 135)),
				passive("great_tree_heal_180", "Great Tree", combat.HealBoost{Percent: 8},
					combat.StatAtLeast(combat.StatSPD, 180)),
			},
		},
		{
			ID: OrnamentDrunkenness, Name: "Sea of Drunkenness",
			Effects: []combat.Effect{
				passive("drunkenness_atk", "Sea of Drunkenness", stat(combat.StatATKPct, 12)),
				passive("drunkenness_dot_2400", "Sea of Drunkenness", boost(12, combat.CategoryDot),
					combat.StatAtLeast(combat.StatATK, 2400)),
				passive("drunkenness_dot_3600", "Sea of Drunkenness", boost(12, combat.CategoryDot),
					combat.StatAtLeast(combat.StatATK, 3600)),
			},
		},
		{
			ID: OrnamentSereneOssuary, Name: "Serene Ossuary",
			Effects: []combat.Effect{
				passive("ossuary_hp", "Serene Ossuary", stat(combat.StatHPPct, 12)),
				passive("ossuary_crit_dmg", "Serene Ossuary", stat(combat.StatCritDmg, 28),
					combat.StatAtLeast(combat.StatHP, 5000)),
			},
		},
	}
}

// mainStatValues are max-level relic main stats
var mainStatValues = map[combat.StatKey]float64{
	combat.StatHP:            705,
	combat.StatATK:           352,
	combat.StatSPD:           25,
	combat.StatHPPct:         43.2,
	combat.StatATKPct:        43.2,
	combat.StatDEFPct:        54,
	combat.StatCritRate:      32.4,
	combat.StatCritDmg:       64.8,
	combat.StatEffectHitRate: 43.2,
	combat.StatBreakEffect:   64.8,
	combat.StatOutgoingHeal:  34.5,
	combat.StatEnergyRegen:   19.4,
	combat.StatPhysicalDmg:   38.8,
	combat.StatFireDmg:       38.8,
	combat.StatIceDmg:        38.8,
	combat.StatLightningDmg:  38.8,
	combat.StatWindDmg:       38.8,
	combat.StatQuantumDmg:    38.8,
	combat.StatImaginaryDmg:  38.8,
}

// MainStatValue is the max-level value of a relic main stat, 0 when the
// stat can't roll as a main stat
func MainStatValue(key combat.StatKey) float64 {
	return mainStatValues[key]
}
