package combat

// ConditionKind names a dynamic activation check
type ConditionKind string

// Condition kinds
const (
	CondHPBelow       ConditionKind = "HP_BELOW"
	CondInState       ConditionKind = "IN_STATE"
	CondStatGTE       ConditionKind = "STAT_GTE"
	CondHasShieldFrom ConditionKind = "HAS_SHIELD_FROM_SOURCE"
	CondIsPartyMember ConditionKind = "IS_PARTY_MEMBER"
	CondHasSummon     ConditionKind = "HAS_SUMMON"
)

// ConditionSubject selects whose state a condition reads
type ConditionSubject string

// Condition subjects. The zero value reads the actor the effect is
// being evaluated for.
const (
	SubjectSelf     ConditionSubject = ""
	SubjectOwner    ConditionSubject = "owner"
	SubjectSummoner ConditionSubject = "summoner"
)

// Named combat states used by IN_STATE conditions
const (
	StateHellscape     = "hellscape"
	StateLuochaField   = "luocha_field"
	StateRuanMeiField  = "ruan_mei_field"
	StateToribiiField  = "toribii_field"
	StateRainfall      = "rainfall"
	StateComrade       = "comrade"
	StateIcarunPresent = "icarun_summoned"
	StateHeartOfCiyu   = "heart_of_ciyu"
	StateEnemyBroken   = "enemy_broken"
)

// Condition is one activation requirement on an effect
type Condition struct {
	Kind    ConditionKind    `json:"kind"`
	Subject ConditionSubject `json:"subject,omitempty"`

	// HP_BELOW threshold is a percentage of max HP, STAT_GTE compares
	// against Stat.
	Threshold float64 `json:"threshold,omitempty"`
	Stat      StatKey `json:"stat,omitempty"`
	// Strict turns STAT_GTE into a greater-than check
	Strict bool `json:"strict,omitempty"`

	State string `json:"state,omitempty"`
	Slot  int    `json:"slot,omitempty"`
}

// HPBelow builds an HP_BELOW condition
func HPBelow(pct float64) Condition {
	return Condition{Kind: CondHPBelow, Threshold: pct}
}

// InState builds an IN_STATE condition
func InState(state string) Condition {
	return Condition{Kind: CondInState, State: state}
}

// StatAtLeast builds a STAT_GTE condition
func StatAtLeast(stat StatKey, threshold float64) Condition {
	return Condition{Kind: CondStatGTE, Stat: stat, Threshold: threshold}
}

// StatAbove builds a strict STAT_GTE condition
func StatAbove(stat StatKey, threshold float64) Condition {
	return Condition{Kind: CondStatGTE, Stat: stat, Threshold: threshold, Strict: true}
}

// OfOwner re-targets the condition at the effect's owner
func (c Condition) OfOwner() Condition {
	c.Subject = SubjectOwner
	return c
}

// OfSummoner re-targets the condition at the actor's summoner
func (c Condition) OfSummoner() Condition {
	c.Subject = SubjectSummoner
	return c
}
