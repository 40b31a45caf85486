// Package simulator runs one battle from a party configuration to a
// result. A run is deterministic for a given seed: every random choice
// goes through the run's dice roller.
package simulator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/rng"
)

// MaxChainDepth is how deep post-action triggers may nest
const MaxChainDepth = 3

// Config holds the simulator's dependencies
type Config struct {
	Catalog  *catalog.Catalog
	Registry *hooks.Registry
	// EventBus receives combat events; optional
	EventBus events.EventBus
	// NewRoller builds the roller for a seed, rng.For when nil
	NewRoller func(seed uint64) dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}

	return vb.Build()
}

// Simulator runs battles. It holds no per-run state and is safe for
// concurrent use.
type Simulator struct {
	catalog   *catalog.Catalog
	registry  *hooks.Registry
	bus       events.EventBus
	newRoller func(seed uint64) dice.Roller
}

// New creates a simulator
func New(cfg *Config) (*Simulator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	newRoller := cfg.NewRoller
	if newRoller == nil {
		newRoller = rng.For
	}

	return &Simulator{
		catalog:   cfg.Catalog,
		registry:  cfg.Registry,
		bus:       cfg.EventBus,
		newRoller: newRoller,
	}, nil
}

// Input is one run request
type Input struct {
	// RunID tags every published event
	RunID string
	Party combat.PartyConfig
	// Seed fixes the roller; 0 picks an unseeded roller
	Seed uint64
}

// Run simulates input.Party against its encounter
func (s *Simulator) Run(ctx context.Context, input *Input) (*combat.Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Party.Members() == 0 {
		return nil, errors.NothingToSimulate()
	}

	r := &run{
		ctx:     ctx,
		id:      input.RunID,
		catalog: s.catalog,
		bus:     s.bus,
		roller:  s.newRoller(input.Seed),
	}
	if err := r.setup(input.Party, s.registry); err != nil {
		return nil, err
	}

	slog.Debug("simulation started",
		"run_id", input.RunID,
		"members", input.Party.Members(),
		"seed", input.Seed,
		"budget", r.st.Params.TimeBudget())

	if err := r.loop(); err != nil {
		return nil, err
	}

	res := r.st.Result()
	slog.Debug("simulation finished",
		"run_id", input.RunID,
		"ticks", res.Ticks,
		"total_damage", res.TotalDamage)
	return res, nil
}
