package combat

// ActionCategory groups actions for damage-% boosts
type ActionCategory string

// Action categories
const (
	CategoryAll      ActionCategory = "ALL"
	CategoryBasic    ActionCategory = "BASIC"
	CategorySkill    ActionCategory = "SKILL"
	CategoryUltimate ActionCategory = "ULTIMATE"
	CategoryFollowUp ActionCategory = "FOLLOW_UP"
	CategoryDot      ActionCategory = "DOT"
)

// ActionKey names an action on a character kit
type ActionKey string

// Action keys
const (
	ActionBasic               ActionKey = "basic"
	ActionEnhancedBasic       ActionKey = "enhanced_basic"
	ActionSkill               ActionKey = "skill"
	ActionUltimate            ActionKey = "ultimate"
	ActionFollowUp            ActionKey = "follow_up"
	ActionTechnique           ActionKey = "technique"
	ActionAdditional          ActionKey = "additional"
	ActionSpiritSkill         ActionKey = "spirit_skill"
	ActionEnhancedSpiritSkill ActionKey = "enhanced_spirit_skill"
	ActionSpiritTalent        ActionKey = "spirit_talent"
	ActionStandingTall        ActionKey = "standing_tall"
)

// Category maps the key onto its boost category. Enhanced basics share
// the basic category; spirit and technique actions only take ALL.
func (k ActionKey) Category() ActionCategory {
	switch k {
	case ActionBasic, ActionEnhancedBasic:
		return CategoryBasic
	case ActionSkill:
		return CategorySkill
	case ActionUltimate:
		return CategoryUltimate
	case ActionFollowUp:
		return CategoryFollowUp
	default:
		return CategoryAll
	}
}

// IsTurnAction reports whether using the key ends the actor's turn
func (k ActionKey) IsTurnAction() bool {
	switch k {
	case ActionBasic, ActionEnhancedBasic, ActionSkill,
		ActionSpiritSkill, ActionEnhancedSpiritSkill:
		return true
	default:
		return false
	}
}

// TargetShape is how an action fans out over the enemy group
type TargetShape string

// Target shapes
const (
	ShapeSingle TargetShape = "single"
	ShapeBlast  TargetShape = "blast"
	ShapeAoE    TargetShape = "aoe"
)

// ScalingStat is what a scaling component reads
type ScalingStat string

// Scaling stats
const (
	ScaleATK             ScalingStat = "atk"
	ScaleHP              ScalingStat = "hp"
	ScaleDEF             ScalingStat = "def"
	ScaleLostHP          ScalingStat = "lost_hp"
	ScaleAccumulatedHeal ScalingStat = "accumulated_healing"
	ScaleComradeATK      ScalingStat = "comrade_atk"
)

// Scaling is one `stat × multiplier% + flat` term
type Scaling struct {
	Stat       ScalingStat `json:"stat"`
	Multiplier float64     `json:"multiplier"`
	Flat       float64     `json:"flat,omitempty"`
}

// Scale is shorthand for a scaling term without a flat addend
func Scale(stat ScalingStat, multiplier float64) Scaling {
	return Scaling{Stat: stat, Multiplier: multiplier}
}

// Action is one capability of a character
type Action struct {
	Key   ActionKey   `json:"key"`
	Name  string      `json:"name"`
	Shape TargetShape `json:"shape"`

	Damage   []Scaling `json:"damage,omitempty"`
	Adjacent []Scaling `json:"adjacent,omitempty"`
	Heal     []Scaling `json:"heal,omitempty"`
	Shield   []Scaling `json:"shield,omitempty"`

	Toughness         float64 `json:"toughness,omitempty"`
	AdjacentToughness float64 `json:"adjacent_toughness,omitempty"`
	Energy            float64 `json:"energy,omitempty"`

	Effects []Effect `json:"-"`
}

// Category is the action key's boost category
func (a Action) Category() ActionCategory {
	return a.Key.Category()
}

// DealsDamage reports whether the action has damage scaling
func (a Action) DealsDamage() bool {
	return len(a.Damage) > 0
}
