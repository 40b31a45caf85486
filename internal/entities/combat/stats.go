// Package combat holds the data model shared by the simulation engine:
// stats, effects, actions, catalog definitions, party configuration and
// run results.
package combat

import "math"

// StatKey names an attribute a modifier can touch
type StatKey string

// Stat keys. The *_pct keys are percentages of the matching base stat.
const (
	StatHP            StatKey = "hp"
	StatHPPct         StatKey = "hp_pct"
	StatATK           StatKey = "atk"
	StatATKPct        StatKey = "atk_pct"
	StatDEF           StatKey = "def"
	StatDEFPct        StatKey = "def_pct"
	StatSPD           StatKey = "spd"
	StatSPDPct        StatKey = "spd_pct"
	StatCritRate      StatKey = "crit_rate"
	StatCritDmg       StatKey = "crit_dmg"
	StatEffectRes     StatKey = "effect_res"
	StatEffectHitRate StatKey = "effect_hit_rate"
	StatBreakEffect   StatKey = "break_effect"
	StatEnergyRegen   StatKey = "energy_regen"
	StatOutgoingHeal  StatKey = "outgoing_heal"

	StatPhysicalDmg  StatKey = "physical_dmg"
	StatFireDmg      StatKey = "fire_dmg"
	StatIceDmg       StatKey = "ice_dmg"
	StatLightningDmg StatKey = "lightning_dmg"
	StatWindDmg      StatKey = "wind_dmg"
	StatQuantumDmg   StatKey = "quantum_dmg"
	StatImaginaryDmg StatKey = "imaginary_dmg"
)

// StatMap is a bag of additive stat contributions
type StatMap map[StatKey]float64

// Add accumulates other into m
func (m StatMap) Add(other StatMap) {
	for k, v := range other {
		m[k] += v
	}
}

// Element is an actor's combat type
type Element string

// Elements
const (
	ElementPhysical  Element = "physical"
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
	ElementWind      Element = "wind"
	ElementQuantum   Element = "quantum"
	ElementImaginary Element = "imaginary"
)

// DamageStat returns the elemental damage-% stat for the element
func (e Element) DamageStat() StatKey {
	switch e {
	case ElementPhysical:
		return StatPhysicalDmg
	case ElementFire:
		return StatFireDmg
	case ElementIce:
		return StatIceDmg
	case ElementLightning:
		return StatLightningDmg
	case ElementWind:
		return StatWindDmg
	case ElementQuantum:
		return StatQuantumDmg
	case ElementImaginary:
		return StatImaginaryDmg
	default:
		return ""
	}
}

// IsValid checks the element is one of the seven combat types
func (e Element) IsValid() bool {
	return e.DamageStat() != ""
}

// BaseStats are the four stats percentage bonuses scale from
type BaseStats struct {
	HP  float64 `json:"hp"`
	ATK float64 `json:"atk"`
	DEF float64 `json:"def"`
	SPD float64 `json:"spd"`
}

// TotalStats are an actor's derived attributes
type TotalStats struct {
	HP            float64             `json:"hp"`
	ATK           float64             `json:"atk"`
	DEF           float64             `json:"def"`
	SPD           float64             `json:"spd"`
	CritRate      float64             `json:"crit_rate"`
	CritDmg       float64             `json:"crit_dmg"`
	EffectRes     float64             `json:"effect_res"`
	EffectHitRate float64             `json:"effect_hit_rate"`
	BreakEffect   float64             `json:"break_effect"`
	EnergyRegen   float64             `json:"energy_regen"`
	OutgoingHeal  float64             `json:"outgoing_heal"`
	ElementalDmg  map[Element]float64 `json:"elemental_dmg,omitempty"`
}

// Get reads a stat by key. Percent keys are not stored on totals and
// read as zero.
func (t TotalStats) Get(key StatKey) float64 {
	switch key {
	case StatHP:
		return t.HP
	case StatATK:
		return t.ATK
	case StatDEF:
		return t.DEF
	case StatSPD:
		return t.SPD
	case StatCritRate:
		return t.CritRate
	case StatCritDmg:
		return t.CritDmg
	case StatEffectRes:
		return t.EffectRes
	case StatEffectHitRate:
		return t.EffectHitRate
	case StatBreakEffect:
		return t.BreakEffect
	case StatEnergyRegen:
		return t.EnergyRegen
	case StatOutgoingHeal:
		return t.OutgoingHeal
	}
	for _, el := range Elements() {
		if el.DamageStat() == key {
			return t.ElementalDmg[el]
		}
	}
	return 0
}

// Clone returns a deep copy
func (t TotalStats) Clone() TotalStats {
	out := t
	if t.ElementalDmg != nil {
		out.ElementalDmg = make(map[Element]float64, len(t.ElementalDmg))
		for k, v := range t.ElementalDmg {
			out.ElementalDmg[k] = v
		}
	}
	return out
}

// StatBlock is the Stat Aggregator's output
type StatBlock struct {
	Base  BaseStats  `json:"base"`
	Total TotalStats `json:"total"`
}

// Clone returns a deep copy
func (b StatBlock) Clone() StatBlock {
	return StatBlock{Base: b.Base, Total: b.Total.Clone()}
}

// Elements lists every element in a fixed order
func Elements() []Element {
	return []Element{
		ElementPhysical,
		ElementFire,
		ElementIce,
		ElementLightning,
		ElementWind,
		ElementQuantum,
		ElementImaginary,
	}
}

// RoundHalfUp rounds to the nearest integer, halves away from zero for
// positive values
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
