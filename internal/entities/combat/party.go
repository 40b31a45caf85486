package combat

import "encoding/json"

// PartySize is the number of character slots
const PartySize = 4

// UltimateStrategy decides when a ready ultimate is used
type UltimateStrategy string

// Ultimate strategies
const (
	UltimateOnReady     UltimateStrategy = "onReady"
	UltimateEveryNTurns UltimateStrategy = "everyNTurns"
)

// NoTarget leaves a targeted buff on its default recipient
const NoTarget = -1

// RelicSetPick is a relic set and how many pieces of it are worn
type RelicSetPick struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// SlotConfig is one party slot's user configuration
type SlotConfig struct {
	CharacterID   string `json:"characterId"`
	LightConeID   string `json:"lightConeId,omitempty"`
	LightConeRank int    `json:"lightConeRank,omitempty"`
	EidolonLevel  int    `json:"eidolonLevel,omitempty"`

	MainStats  map[RelicPart]StatKey `json:"mainStats,omitempty"`
	SubStats   StatMap               `json:"subStats,omitempty"`
	RelicSets  []RelicSetPick        `json:"relicSets,omitempty"`
	OrnamentID string                `json:"planarOrnamentId,omitempty"`

	// CombatState are user toggles read by IN_STATE conditions
	CombatState map[string]bool `json:"combatState,omitempty"`

	Rotation         string           `json:"rotation,omitempty"`
	UltimateStrategy UltimateStrategy `json:"ultimateStrategy,omitempty"`
	UltimateInterval int              `json:"ultimateTurnInterval,omitempty"`
	UltimateTarget   int              `json:"ultimateTargetIndex"`
	ComradeTarget    int              `json:"comradeTargetIndex"`
	UseTechnique     bool             `json:"useTechnique,omitempty"`
}

// Empty reports whether no character is selected
func (s SlotConfig) Empty() bool {
	return s.CharacterID == ""
}

// NewSlot returns a slot with the defaults the UI starts from
func NewSlot(characterID string) SlotConfig {
	return SlotConfig{
		CharacterID:      characterID,
		LightConeRank:    1,
		Rotation:         "S,B,B",
		UltimateStrategy: UltimateOnReady,
		UltimateInterval: 3,
		UltimateTarget:   NoTarget,
		ComradeTarget:    NoTarget,
	}
}

// PartyConfig is everything a run needs besides the catalogs
type PartyConfig struct {
	Slots     []SlotConfig    `json:"slots"`
	Encounter EncounterParams `json:"encounter"`
}

// Members counts non-empty slots
func (p PartyConfig) Members() int {
	n := 0
	for _, s := range p.Slots {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// UnmarshalJSON defaults absent target indices to NoTarget
func (s *SlotConfig) UnmarshalJSON(data []byte) error {
	type alias SlotConfig
	a := alias{UltimateTarget: NoTarget, ComradeTarget: NoTarget}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = SlotConfig(a)
	return nil
}
