package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
)

// TestCreatedAt is a fixed timestamp for stored records
var TestCreatedAt = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

// CreateTestParty returns a four member party with a sustain unit and a
// summoner, fighting the default encounter
func CreateTestParty() combat.PartyConfig {
	blade := combat.NewSlot(catalog.Blade)
	blade.LightConeID = catalog.ASecretVow
	blade.RelicSets = []combat.RelicSetPick{{ID: catalog.SetLongevous, Count: 4}}

	luocha := combat.NewSlot(catalog.Luocha)
	luocha.LightConeID = catalog.PerfectTiming

	dhth := combat.NewSlot(catalog.DanHengTengHuang)
	dhth.ComradeTarget = 0

	return combat.PartyConfig{
		Slots: []combat.SlotConfig{
			blade,
			luocha,
			combat.NewSlot(catalog.RuanMei),
			dhth,
		},
		Encounter: combat.DefaultEncounter(),
	}
}

// CreateTestResult returns a small result snapshot
func CreateTestResult() *combat.Result {
	return &combat.Result{
		TotalDamage:  120000,
		TotalHealing: 8000,
		TotalShield:  3000,
		Breakdown: []combat.ActorBreakdown{
			{Index: 0, Name: "Blade", Damage: 120000, HealingReceived: 5000},
			{Index: 1, Name: "Luocha", Healing: 8000, HealingReceived: 3000},
		},
		HealingCV: 0.25,
		Ticks:     150,
		Log: []combat.LogEntry{
			{Tick: 12, Actor: "Blade", Action: "Shard Sword", Damage: 4000, HP: 1500, MaxHP: 1500},
		},
		EventCounts: map[string]int{"combat.turn": 40},
	}
}
