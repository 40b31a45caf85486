package combat

// Character is a catalog entry for a playable unit or a linked spirit
type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Element   Element   `json:"element"`
	Base      BaseStats `json:"base"`
	MaxEnergy float64   `json:"max_energy"`
	// StartingEnergy is added to the opening half-bar
	StartingEnergy float64 `json:"starting_energy,omitempty"`
	// SkillPointCapBonus raises the party skill point cap while fielded
	SkillPointCapBonus int `json:"skill_point_cap_bonus,omitempty"`

	Actions map[ActionKey]Action `json:"-"`
	// Traces are unconditional stat bonuses applied last by the aggregator
	Traces StatMap `json:"traces,omitempty"`
	// SelfBonuses are static bonuses gated on the actor's own computed
	// stats (or its summoner's)
	SelfBonuses []Effect `json:"-"`
	// Talents are always-on effects, possibly conditional
	Talents []Effect `json:"-"`
	// Eidolons maps a bonus tier to the effects it unlocks
	Eidolons map[int][]Effect `json:"-"`

	// Spirit is the catalog id of the linked secondary actor, if any
	Spirit string `json:"spirit,omitempty"`
	// IsSpirit marks linked secondary actors
	IsSpirit bool `json:"is_spirit,omitempty"`
	// Targetable spirits can be hit by enemy attacks
	Targetable bool `json:"targetable,omitempty"`
	// SummonerHPRatio derives base HP from the summoner's total HP
	SummonerHPRatio float64 `json:"summoner_hp_ratio,omitempty"`
	// SummonerScaling makes ATK/HP/DEF scaling terms read the summoner
	SummonerScaling bool `json:"summoner_scaling,omitempty"`

	DefaultRotation string `json:"default_rotation,omitempty"`
}

// Action returns the kit entry for key
func (c *Character) Action(key ActionKey) (Action, bool) {
	a, ok := c.Actions[key]
	return a, ok
}

// EidolonEffects collects the effects unlocked up to level
func (c *Character) EidolonEffects(level int) []Effect {
	var out []Effect
	for lvl := 1; lvl <= level; lvl++ {
		out = append(out, c.Eidolons[lvl]...)
	}
	return out
}

// Ranks is the number of refinement tiers on a light cone
const Ranks = 5

// LightCone is a catalog equipment entry
type LightCone struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Base  BaseStats       `json:"base"`
	Tiers [Ranks][]Effect `json:"-"`
}

// Effects returns the tier for rank, clamped to 1..5
func (lc *LightCone) Effects(rank int) []Effect {
	return lc.Tiers[ClampRank(rank)-1]
}

// ClampRank clamps a rank into 1..5
func ClampRank(rank int) int {
	if rank < 1 {
		return 1
	}
	if rank > Ranks {
		return Ranks
	}
	return rank
}

// RelicSet is a 2pc/4pc bonus set
type RelicSet struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TwoPiece  []Effect `json:"-"`
	FourPiece []Effect `json:"-"`
}

// Effects returns the bonuses unlocked by count equipped pieces
func (r *RelicSet) Effects(count int) []Effect {
	var out []Effect
	if count >= 2 {
		out = append(out, r.TwoPiece...)
	}
	if count >= 4 {
		out = append(out, r.FourPiece...)
	}
	return out
}

// Ornament is a planar ornament set, always worn as a pair
type Ornament struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Effects []Effect `json:"-"`
}

// RelicPart is an equipment slot for a relic piece
type RelicPart string

// Relic parts
const (
	PartHead   RelicPart = "head"
	PartHands  RelicPart = "hands"
	PartBody   RelicPart = "body"
	PartFeet   RelicPart = "feet"
	PartSphere RelicPart = "sphere"
	PartRope   RelicPart = "rope"
)

// RelicParts lists every part in display order
func RelicParts() []RelicPart {
	return []RelicPart{PartHead, PartHands, PartBody, PartFeet, PartSphere, PartRope}
}
