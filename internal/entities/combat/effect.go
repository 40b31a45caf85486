package combat

import "math"

// Unbounded marks an effect that never expires
const Unbounded = math.MaxInt32

// Scope is who an effect applies to
type Scope string

// Scopes
const (
	ScopeSelf    Scope = "self"
	ScopeAllies  Scope = "allies"
	ScopeEnemies Scope = "enemies"
)

// EffectKind tags the payload variant
type EffectKind string

// Effect kinds
const (
	KindStatMod         EffectKind = "STAT_MOD"
	KindDamageBoost     EffectKind = "DMG_BOOST"
	KindDefShred        EffectKind = "DEF_SHRED"
	KindResPen          EffectKind = "RES_PEN"
	KindHealBoost       EffectKind = "HEAL_BOOST"
	KindDamageTaken     EffectKind = "DMG_TAKEN_INCREASE"
	KindBreakEfficiency EffectKind = "BREAK_EFFICIENCY_BOOST"
	KindSpecial         EffectKind = "SPECIAL_EFFECT"
)

// Payload is the strongly typed body of an effect. Exactly one of the
// types below implements it for each kind.
type Payload interface {
	Kind() EffectKind
}

// StatMod adds to stats. Percent keys scale from base stats.
type StatMod struct {
	Stats StatMap
}

// Kind implements Payload
func (StatMod) Kind() EffectKind { return KindStatMod }

// DamageBoost adds damage-% per action category
type DamageBoost struct {
	Categories map[ActionCategory]float64
}

// Kind implements Payload
func (DamageBoost) Kind() EffectKind { return KindDamageBoost }

// DefShred ignores a percentage of enemy defense
type DefShred struct {
	Percent float64
}

// Kind implements Payload
func (DefShred) Kind() EffectKind { return KindDefShred }

// ResPen reduces enemy resistance in percentage points
type ResPen struct {
	Percent float64
}

// Kind implements Payload
func (ResPen) Kind() EffectKind { return KindResPen }

// HealBoost raises outgoing healing. Only restricts it to one action
// category when set.
type HealBoost struct {
	Percent float64
	Only    ActionCategory
}

// Kind implements Payload
func (HealBoost) Kind() EffectKind { return KindHealBoost }

// DamageTaken raises (or lowers, when negative) incoming damage
type DamageTaken struct {
	Percent float64
}

// Kind implements Payload
func (DamageTaken) Kind() EffectKind { return KindDamageTaken }

// BreakEfficiency multiplies toughness damage
type BreakEfficiency struct {
	Percent float64
}

// Kind implements Payload
func (BreakEfficiency) Kind() EffectKind { return KindBreakEfficiency }

// SpecialTag identifies bespoke handling for a Special payload
type SpecialTag string

// Special tags. Trigger tags mark reactive equipment; the value is the
// tier magnitude.
const (
	// DMG_BOOST ALL of Value × max energy
	TagMaxEnergyBoost SpecialTag = "max_energy_boost"
	// DEF shred of Value per damage-over-time on the enemy, up to 3
	TagPerDotDefShred SpecialTag = "per_dot_def_shred"
	// heal boost of Value% of effect RES, capped at Cap
	TagResToHeal SpecialTag = "res_to_heal"

	TagAeonStack          SpecialTag = "trigger:aeon_stack"
	TagAeonBreak          SpecialTag = "trigger:aeon_break"
	TagComputationStack   SpecialTag = "trigger:computation_stack"
	TagComputationSpeed   SpecialTag = "trigger:computation_speed"
	TagEnergyOnAttack     SpecialTag = "trigger:energy_on_attack"
	TagEnergyOnHit        SpecialTag = "trigger:energy_on_hit"
	TagCritDmgWhenHit     SpecialTag = "trigger:crit_dmg_when_hit"
	TagCritRateWhenHit    SpecialTag = "trigger:crit_rate_when_hit"
	TagFollowUpAtkStack   SpecialTag = "trigger:follow_up_atk_stack"
	TagEnergyOnBreak      SpecialTag = "trigger:energy_on_break"
	TagAdvanceOnUltimate  SpecialTag = "trigger:advance_on_ultimate"
	TagPartyAdvanceOnUlt  SpecialTag = "trigger:party_advance_on_ultimate"
	TagPartySpeedOnUlt    SpecialTag = "trigger:party_speed_on_ultimate"
	TagNextSkillBoost     SpecialTag = "trigger:next_skill_boost"
	TagCritDmgOnShield    SpecialTag = "trigger:crit_dmg_on_shield"
	TagShieldStrength     SpecialTag = "trigger:shield_strength"
	TagOpeningHeal        SpecialTag = "trigger:opening_heal"
	TagOpeningCritBySpeed SpecialTag = "trigger:opening_crit_by_speed"
	TagInitialAdvance     SpecialTag = "trigger:initial_advance"
	TagSameElementBoost   SpecialTag = "trigger:same_element_boost"
	TagBasicSelfHeal      SpecialTag = "trigger:basic_self_heal"
	TagHealTriggerBuff    SpecialTag = "trigger:heal_trigger_buff"
	TagPartyBoostOnUlt    SpecialTag = "trigger:party_boost_on_ultimate"
	TagDotBoostOnUlt      SpecialTag = "trigger:dot_boost_on_ultimate"
	TagOpeningShelter     SpecialTag = "trigger:opening_shelter"
)

// Special is a marker requiring bespoke handling
type Special struct {
	Tag   SpecialTag
	Value float64
	Cap   float64
	Flat  float64
}

// Kind implements Payload
func (Special) Kind() EffectKind { return KindSpecial }

// DotKind identifies a damage-over-time or break status
type DotKind string

// Dot kinds
const (
	DotBleed        DotKind = "bleed"
	DotBurn         DotKind = "burn"
	DotShock        DotKind = "shock"
	DotWindShear    DotKind = "wind_shear"
	DotFreeze       DotKind = "freeze"
	DotEntanglement DotKind = "entanglement"
	DotImprisonment DotKind = "imprisonment"
	DotSkill        DotKind = "skill"
)

// Ticks reports whether the status deals damage at the start of the
// enemy's turn
func (k DotKind) Ticks() bool {
	switch k {
	case DotBleed, DotBurn, DotShock, DotWindShear, DotSkill:
		return true
	default:
		return false
	}
}

// Dot attaches damage-over-time behaviour to an enemy effect
type Dot struct {
	Kind DotKind
	// ATK% per tick for skill-applied DoTs
	Multiplier float64
}

// Effect is one modifier instance
type Effect struct {
	ID         string
	Source     string
	Scope      Scope
	Payload    Payload
	Duration   int
	Stacks     int
	MaxStacks  int
	Owner      int
	Conditions []Condition
	Dot        *Dot
}

// Kind returns the payload kind
func (e Effect) Kind() EffectKind {
	if e.Payload == nil {
		return KindSpecial
	}
	return e.Payload.Kind()
}

// Permanent reports an unbounded duration
func (e Effect) Permanent() bool {
	return e.Duration >= Unbounded
}

// StackCount is the effective stack multiplier, at least one
func (e Effect) StackCount() int {
	if e.Stacks < 1 {
		return 1
	}
	return e.Stacks
}

// Conditional reports whether activation depends on combat state
func (e Effect) Conditional() bool {
	return len(e.Conditions) > 0
}

// SpecialTag returns the tag of a Special payload or ""
func (e Effect) SpecialTag() SpecialTag {
	if sp, ok := e.Payload.(Special); ok {
		return sp.Tag
	}
	return ""
}

// WithOwner returns a copy owned by owner
func (e Effect) WithOwner(owner int) Effect {
	out := e.Clone()
	out.Owner = owner
	return out
}

// WithDuration returns a copy with a new duration
func (e Effect) WithDuration(turns int) Effect {
	out := e.Clone()
	out.Duration = turns
	return out
}

// Clone deep-copies the effect including map payloads
func (e Effect) Clone() Effect {
	out := e
	switch p := e.Payload.(type) {
	case StatMod:
		stats := make(StatMap, len(p.Stats))
		stats.Add(p.Stats)
		out.Payload = StatMod{Stats: stats}
	case DamageBoost:
		cats := make(map[ActionCategory]float64, len(p.Categories))
		for k, v := range p.Categories {
			cats[k] = v
		}
		out.Payload = DamageBoost{Categories: cats}
	}
	if e.Conditions != nil {
		out.Conditions = append([]Condition(nil), e.Conditions...)
	}
	if e.Dot != nil {
		dot := *e.Dot
		out.Dot = &dot
	}
	return out
}
