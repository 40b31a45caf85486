package encounter

import (
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/presets"
)

// SimulateInput defines the request for running a party
type SimulateInput struct {
	Party combat.PartyConfig
	// Seed overrides the configured default seed when set
	Seed *uint64
}

// SimulateOutput defines the response for a finished run
type SimulateOutput struct {
	Run *encounters.Run
}

// GetRunInput defines the request for fetching a stored run
type GetRunInput struct {
	RunID string
}

// GetRunOutput defines the response for fetching a stored run
type GetRunOutput struct {
	Run *encounters.Run
}

// ListRunsInput defines the request for listing recent runs
type ListRunsInput struct {
	Limit int
}

// ListRunsOutput defines the response for listing recent runs
type ListRunsOutput struct {
	Runs []*encounters.Run
}

// SavePresetInput defines the request for saving a named party
type SavePresetInput struct {
	Name      string
	Party     combat.PartyConfig
	Overwrite bool
}

// SavePresetOutput defines the response for saving a named party
type SavePresetOutput struct {
	Preset *presets.Preset
}

// SimulatePresetInput defines the request for running a saved party
type SimulatePresetInput struct {
	Name string
	Seed *uint64
}
