package battle

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	TypeCharacter = "character"
	TypeSpirit    = "spirit"
	TypeEnemy     = "enemy"
)

var (
	_ core.Entity    = (*Actor)(nil)
	_ scheduler.Unit = (*Actor)(nil)
)

// Shield is the damage absorber on an actor
type Shield struct {
	Value    float64
	Capacity float64
	// Source is the granting actor, effects.NoActor when none
	Source int
}

// Actor is one party member or linked spirit
type Actor struct {
	Index int
	// Slot is the party slot; spirits take their summoner's slot
	Slot      int
	Name      string
	Character *combat.Character
	Config    combat.SlotConfig

	// Static is the aggregator's output; Stats is recomputed every tick
	Static   combat.StatBlock
	Stats    combat.TotalStats
	Passives []combat.Effect
	Buffs    *effects.Store

	HP     float64
	LostHP float64
	Energy float64
	Charge int
	AV     float64
	Down   bool
	// Present is false for spirits that have not been summoned
	Present  bool
	Summoner int
	Spirit   int
	Shield   Shield

	Rotation  []string
	cursor    int
	TurnCount int
	// LastAction is the key of the most recent action this actor took
	LastAction combat.ActionKey

	Flags    map[string]bool
	Counters map[string]int

	// AccumulatedHeal feeds accumulated-healing scaling terms
	AccumulatedHeal float64

	DamageDealt     float64
	HealingDone     float64
	ShieldGranted   float64
	HealingReceived float64
}

// NewActor builds an actor with its stores and maps ready
func NewActor(ch *combat.Character, cfg combat.SlotConfig, slot int) *Actor {
	a := &Actor{
		Slot:      slot,
		Name:      ch.Name,
		Character: ch,
		Config:    cfg,
		Buffs:     effects.NewStore(),
		Present:   true,
		Summoner:  effects.NoActor,
		Spirit:    effects.NoActor,
		Shield:    Shield{Source: effects.NoActor},
		Flags:     make(map[string]bool),
		Counters:  make(map[string]int),
	}
	rotation := cfg.Rotation
	if rotation == "" {
		rotation = ch.DefaultRotation
	}
	a.Rotation = ParseRotation(rotation)
	return a
}

// ParseRotation splits a comma separated rotation into upper-case tokens
func ParseRotation(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok != "" {
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		out = []string{"B"}
	}
	return out
}

// NextToken is the rotation entry for the current turn
func (a *Actor) NextToken() string {
	if len(a.Rotation) == 0 {
		return "B"
	}
	return a.Rotation[a.cursor%len(a.Rotation)]
}

// AdvanceRotation moves the rotation cursor one step
func (a *Actor) AdvanceRotation() {
	a.cursor++
}

// GetID implements core.Entity
func (a *Actor) GetID() string {
	return fmt.Sprintf("%s-%d", a.Character.ID, a.Index)
}

// GetType implements core.Entity
func (a *Actor) GetType() string {
	if a.IsSpirit() {
		return TypeSpirit
	}
	return TypeCharacter
}

// ActionValue implements scheduler.Unit
func (a *Actor) ActionValue() float64 { return a.AV }

// SetActionValue implements scheduler.Unit
func (a *Actor) SetActionValue(av float64) { a.AV = av }

// Speed implements scheduler.Unit
func (a *Actor) Speed() float64 { return a.Stats.SPD }

// Order implements scheduler.Unit
func (a *Actor) Order() int { return a.Index }

// Waiting implements scheduler.Unit
func (a *Actor) Waiting() bool { return a.Active() }

// Active reports a present, standing actor
func (a *Actor) Active() bool {
	return a.Present && !a.Down
}

// IsSpirit reports a linked secondary actor
func (a *Actor) IsSpirit() bool {
	return a.Character.IsSpirit
}

// Targetable reports whether enemy attacks and party heals can land on
// the actor
func (a *Actor) Targetable() bool {
	return !a.IsSpirit() || a.Character.Targetable
}

// MaxHP is the current total HP
func (a *Actor) MaxHP() float64 {
	return a.Stats.HP
}

// HPPercent is current HP as a percentage of max HP
func (a *Actor) HPPercent() float64 {
	if a.Stats.HP <= 0 {
		return 0
	}
	return a.HP / a.Stats.HP * 100
}

// MaxEnergy is the ultimate cost
func (a *Actor) MaxEnergy() float64 {
	return a.Character.MaxEnergy
}

// UltimateReady reports a full energy bar on a kit with an ultimate
func (a *Actor) UltimateReady() bool {
	if a.MaxEnergy() <= 0 || !a.Active() {
		return false
	}
	if _, ok := a.Character.Action(combat.ActionUltimate); !ok {
		return false
	}
	return a.Energy >= a.MaxEnergy()
}

// Flag reads a named flag
func (a *Actor) Flag(name string) bool {
	return a.Flags[name]
}

// SetFlag sets or clears a named flag
func (a *Actor) SetFlag(name string, on bool) {
	if on {
		a.Flags[name] = true
		return
	}
	delete(a.Flags, name)
}
