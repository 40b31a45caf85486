package catalog

import "github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"

// Light cone ids the engine reacts to
const (
	ASecretVow          = "a_secret_vow"
	FallOfAnAeon        = "on_the_fall_of_an_aeon"
	NinjitsuMelodyHunt  = "ninjitsu_note_melody_hunt"
	CruisingStellarSea  = "cruising_in_the_stellar_sea"
	PeacefulDay         = "today_is_another_peaceful_day"
	EndlessComputation  = "endless_computation"
	MemoriesOfThePast   = "memories_of_the_past"
	DanceDanceDance     = "dance_dance_dance"
	PlanetaryRendezvous = "planetary_rendezvous"
	MeshingCogs         = "meshing_cogs"
	SolitaryHealing     = "solitary_healing"
	EyesOfThePrey       = "eyes_of_the_prey"
	BeforeFirstQuest    = "before_the_first_quest"
	WeAreTheWildfire    = "we_are_the_wildfire"
	PostOpConversation  = "post_op_conversation"
	PerfectTiming       = "perfect_timing"
	WhatIsReal          = "what_is_real"
	EndlessMemories     = "endless_memories"
)

func lightCones() []*combat.LightCone {
	return []*combat.LightCone{
		{
			ID: ASecretVow, Name: "A Secret Vow",
			Base: combat.BaseStats{HP: 1058, ATK: 476, DEF: 264},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("secret_vow_dmg", "Spare Nothing", boost(lerp(20, 40, r), combat.CategoryAll)),
				}
			}),
		},
		{
			ID: FallOfAnAeon, Name: "On the Fall of an Aeon",
			Base: combat.BaseStats{HP: 1058, ATK: 529, DEF: 396},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("aeon_atk_stack", "Moth to Flames", special(combat.TagAeonStack, lerp(8, 16, r))),
					passive("aeon_break_dmg", "Moth to Flames", special(combat.TagAeonBreak, lerp(12, 24, r))),
				}
			}),
		},
		{
			ID: NinjitsuMelodyHunt, Name: "Ninjutsu Inscription: Dazzling Evilbreaker",
			Base: combat.BaseStats{HP: 1058, ATK: 476, DEF: 264},
			Tiers: byRank(func(r int) []combat.Effect {
				critDmg := [combat.Ranks]float64{18, 22, 27, 31, 36}
				return []combat.Effect{
					passive("ninjitsu_hp", "Curtain Up", stat(combat.StatHPPct, lerp(12, 24, r))),
					passive("ninjitsu_crit_dmg", "Curtain Up", special(combat.TagCritDmgWhenHit, critDmg[r])),
				}
			}),
		},
		{
			ID: CruisingStellarSea, Name: "Cruising in the Stellar Sea",
			Base: combat.BaseStats{HP: 952, ATK: 529, DEF: 463},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("stellar_sea_crit_rate", "Chase", stat(combat.StatCritRate, lerp(8, 16, r))),
				}
			}),
		},
		{
			ID: PeacefulDay, Name: "Today Is Another Peaceful Day",
			Base: combat.BaseStats{HP: 846, ATK: 529, DEF: 330},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("peaceful_day_dmg", "A Storm Is Coming", special(combat.TagMaxEnergyBoost, lerp(0.2, 0.4, r))),
				}
			}),
		},
		{
			ID: EndlessComputation, Name: "Before Dawn Endless Computation",
			Base: combat.BaseStats{HP: 1058, ATK: 529, DEF: 396},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("computation_atk", "Infinite Computation", stat(combat.StatATKPct, lerp(8, 12, r))),
					passive("computation_atk_stack", "Infinite Computation", special(combat.TagComputationStack, lerp(4, 8, r))),
					passive("computation_spd", "Infinite Computation", special(combat.TagComputationSpeed, lerp(8, 16, r))),
				}
			}),
		},
		{
			ID: MemoriesOfThePast, Name: "Memories of the Past",
			Base: combat.BaseStats{HP: 952, ATK: 423, DEF: 396},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("memories_break", "Old Photo", stat(combat.StatBreakEffect, lerp(28, 56, r))),
					passive("memories_energy", "Old Photo", special(combat.TagEnergyOnAttack, lerp(4, 8, r))),
				}
			}),
		},
		{
			ID: DanceDanceDance, Name: "Dance! Dance! Dance!",
			Base: combat.BaseStats{HP: 952, ATK: 423, DEF: 396},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("dance_advance", "Cannot Stop It!", special(combat.TagPartyAdvanceOnUlt, lerp(16, 24, r))),
				}
			}),
		},
		{
			ID: PlanetaryRendezvous, Name: "Planetary Rendezvous",
			Base: combat.BaseStats{HP: 1058, ATK: 423, DEF: 330},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("planetary_same_element", "Departure", special(combat.TagSameElementBoost, lerp(12, 24, r))),
				}
			}),
		},
		{
			ID: MeshingCogs, Name: "Meshing Cogs",
			Base: combat.BaseStats{HP: 846, ATK: 317, DEF: 264},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("cogs_energy", "Fleet Triumph", special(combat.TagEnergyOnHit, lerp(4, 8, r))),
				}
			}),
		},
		{
			ID: SolitaryHealing, Name: "Solitary Healing",
			Base: combat.BaseStats{HP: 1058, ATK: 529, DEF: 396},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("solitary_break", "Chain Reaction", stat(combat.StatBreakEffect, lerp(20, 40, r))),
					passive("solitary_dot", "Chain Reaction", special(combat.TagDotBoostOnUlt, lerp(24, 48, r))),
				}
			}),
		},
		{
			ID: EyesOfThePrey, Name: "Eyes of the Prey",
			Base: combat.BaseStats{HP: 952, ATK: 476, DEF: 330},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("prey_hit_rate", "Self-Confidence", stat(combat.StatEffectHitRate, lerp(20, 40, r))),
					passive("prey_dot", "Self-Confidence", boost(lerp(24, 48, r), combat.CategoryDot)),
				}
			}),
		},
		{
			ID: BeforeFirstQuest, Name: "Before the Tutorial Mission Starts",
			Base: combat.BaseStats{HP: 952, ATK: 476, DEF: 330},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("first_quest_hit_rate", "Quick on the Draw", stat(combat.StatEffectHitRate, lerp(20, 40, r))),
					passive("first_quest_energy", "Quick on the Draw", special(combat.TagEnergyOnAttack, lerp(4, 8, r))),
				}
			}),
		},
		{
			ID: WeAreTheWildfire, Name: "We Are Wildfire",
			Base: combat.BaseStats{HP: 740, ATK: 476, DEF: 463},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("wildfire_shelter", "Teary-Eyed", special(combat.TagOpeningShelter, lerp(8, 16, r))),
					passive("wildfire_heal", "Teary-Eyed", special(combat.TagOpeningHeal, lerp(30, 50, r))),
				}
			}),
		},
		{
			ID: PostOpConversation, Name: "Post-Op Conversation",
			Base: combat.BaseStats{HP: 1058, ATK: 423, DEF: 330},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("post_op_energy", "Mutual Healing", stat(combat.StatEnergyRegen, lerp(8, 16, r))),
					passive("post_op_heal", "Mutual Healing",
						combat.HealBoost{Percent: lerp(12, 24, r), Only: combat.CategoryUltimate}),
				}
			}),
		},
		{
			ID: PerfectTiming, Name: "Perfect Timing",
			Base: combat.BaseStats{HP: 952, ATK: 423, DEF: 396},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("timing_res", "Refraction of Sightline", stat(combat.StatEffectRes, lerp(16, 32, r))),
					passive("timing_heal", "Refraction of Sightline", combat.Special{
						Tag:   combat.TagResToHeal,
						Value: lerp(33, 45, r),
						Cap:   lerp(15, 27, r),
					}),
				}
			}),
		},
		{
			ID: WhatIsReal, Name: "What Is Real?",
			Base: combat.BaseStats{HP: 1058, ATK: 423, DEF: 330},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("what_is_real_break", "Hypothesis", stat(combat.StatBreakEffect, lerp(24, 48, r))),
					passive("what_is_real_heal", "Hypothesis", combat.Special{
						Tag:   combat.TagBasicSelfHeal,
						Value: lerp(2, 4, r),
						Flat:  800,
					}),
				}
			}),
		},
		{
			ID: EndlessMemories, Name: "Memory's Curtain Never Falls",
			Base: combat.BaseStats{HP: 1058, ATK: 529, DEF: 396},
			Tiers: byRank(func(r int) []combat.Effect {
				return []combat.Effect{
					passive("endless_memories_spd", "Forgetting Is Lethe", stat(combat.StatSPDPct, lerp(6, 12, r))),
					passive("endless_memories_party", "Forgetting Is Lethe", special(combat.TagPartyBoostOnUlt, lerp(8, 16, r))),
				}
			}),
		},
	}
}
