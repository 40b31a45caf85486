// Package presets stores named party configurations
package presets

//go:generate mockgen -destination=mock/mock_repository.go -package=presetsmock github.com/KirkDiggler/rpg-combat-sim/internal/repositories/presets Repository

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// MaxNameLength bounds preset names
const MaxNameLength = 64

// Repository defines the storage interface for party presets
type Repository interface {
	// Save stores a preset under its name
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a preset by name
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns every preset ordered by name
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes a preset
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// Preset is a party saved for reuse
type Preset struct {
	Name      string
	Party     combat.PartyConfig
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveInput defines the request for saving a preset
type SaveInput struct {
	Preset *Preset
	// Overwrite replaces an existing preset instead of failing
	Overwrite bool
}

// SaveOutput defines the response for saving a preset
type SaveOutput struct {
	Preset *Preset
}

// GetInput defines the request for retrieving a preset
type GetInput struct {
	Name string
}

// GetOutput defines the response for retrieving a preset
type GetOutput struct {
	Preset *Preset
}

// ListInput defines the request for listing presets
type ListInput struct{}

// ListOutput defines the response for listing presets
type ListOutput struct {
	Presets []*Preset
}

// DeleteInput defines the request for deleting a preset
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the response for deleting a preset
type DeleteOutput struct{}

// NormalizeName trims a preset name and checks it
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.InvalidArgument("preset name is required").WithMeta(errors.MetaField, "name")
	}
	if len(name) > MaxNameLength {
		return "", errors.InvalidArgumentf("preset name must be at most %d bytes", MaxNameLength).
			WithMeta(errors.MetaField, "name")
	}
	return name, nil
}
