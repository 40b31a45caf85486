// Package encounters stores finished simulation runs
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountersmock github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// List limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Repository defines the storage interface for simulation runs
type Repository interface {
	// Save stores a run, replacing any run with the same id
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a run by id
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListRecent returns runs newest first
	ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error)

	// Delete removes a run
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// Run is one stored simulation: what was asked and what came out
type Run struct {
	ID         string             `json:"id"`
	CreatedAt  time.Time          `json:"createdAt"`
	Seed       uint64             `json:"seed"`
	PresetName string             `json:"presetName,omitempty"`
	Party      combat.PartyConfig `json:"party"`
	Result     *combat.Result     `json:"result"`
}

// SaveInput defines the request for saving a run
type SaveInput struct {
	Run *Run
}

// SaveOutput defines the response for saving a run
type SaveOutput struct{}

// GetInput defines the request for retrieving a run
type GetInput struct {
	RunID string
}

// GetOutput defines the response for retrieving a run
type GetOutput struct {
	Run *Run
}

// ListRecentInput defines the request for listing runs. A zero limit
// means DefaultListLimit.
type ListRecentInput struct {
	Limit int
}

// ListRecentOutput defines the response for listing runs
type ListRecentOutput struct {
	Runs []*Run
}

// DeleteInput defines the request for deleting a run
type DeleteInput struct {
	RunID string
}

// DeleteOutput defines the response for deleting a run
type DeleteOutput struct{}

func validateRun(run *Run) error {
	if run == nil {
		return errors.InvalidArgument("run is required")
	}
	if run.ID == "" {
		return errors.InvalidArgument("run ID is required")
	}
	if run.Result == nil {
		return errors.InvalidArgument("run result is required")
	}
	return nil
}

func listLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
