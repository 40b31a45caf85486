// Package encounter runs parties through the simulator and keeps the
// results
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-combat-sim/internal/orchestrators/encounter Service
//go:generate mockgen -destination=mock/mock_simulator.go -package=encountermock github.com/KirkDiggler/rpg-combat-sim/internal/orchestrators/encounter Simulator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/simulator"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/presets"
)

// Service defines the interface for simulation runs
type Service interface {
	// Simulate runs a party and stores the result
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)

	// GetRun returns a stored run
	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)

	// ListRuns returns recent runs newest first
	ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error)

	// SavePreset stores a party under a name
	SavePreset(ctx context.Context, input *SavePresetInput) (*SavePresetOutput, error)

	// SimulatePreset runs a saved party
	SimulatePreset(ctx context.Context, input *SimulatePresetInput) (*SimulateOutput, error)
}

// Simulator runs one encounter
type Simulator interface {
	Run(ctx context.Context, input *simulator.Input) (*combat.Result, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Simulator   Simulator
	Runs        encounters.Repository
	IDGenerator idgen.Generator

	// Presets is optional; without it the preset calls fail
	Presets presets.Repository
	// Clock defaults to the wall clock
	Clock clock.Clock
	// EventBus must be the bus the simulator publishes on. When set, each
	// stored result carries its event counts.
	EventBus events.EventBus

	DefaultSeed uint64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()

	if c.Simulator == nil {
		vb.RequiredField("Simulator")
	}
	if c.Runs == nil {
		vb.RequiredField("Runs")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	sim         Simulator
	runs        encounters.Repository
	presets     presets.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	counter     *eventCounter
	defaultSeed uint64
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		sim:         cfg.Simulator,
		runs:        cfg.Runs,
		presets:     cfg.Presets,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		defaultSeed: cfg.DefaultSeed,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if cfg.EventBus != nil {
		o.counter = newEventCounter(cfg.EventBus)
	}

	return o, nil
}

// Simulate runs a party and stores the result
func (o *orchestrator) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	run, err := o.simulate(ctx, input.Party, input.Seed, "")
	if err != nil {
		return nil, err
	}

	return &SimulateOutput{Run: run}, nil
}

func (o *orchestrator) simulate(
	ctx context.Context,
	party combat.PartyConfig,
	seed *uint64,
	presetName string,
) (*encounters.Run, error) {
	runSeed := o.defaultSeed
	if seed != nil {
		runSeed = *seed
	}
	runID := o.idGen.Generate()

	slog.Info("simulation requested",
		"run_id", runID,
		"seed", runSeed,
		"members", party.Members(),
		"preset", presetName,
	)

	if o.counter != nil {
		o.counter.start(runID)
	}
	result, err := o.sim.Run(ctx, &simulator.Input{
		RunID: runID,
		Party: party,
		Seed:  runSeed,
	})
	var counts map[string]int
	if o.counter != nil {
		counts = o.counter.take(runID)
	}
	if err != nil {
		slog.Warn("simulation failed",
			"run_id", runID,
			"error", err,
		)
		return nil, err
	}
	if len(counts) > 0 {
		result.EventCounts = counts
	}

	run := &encounters.Run{
		ID:         runID,
		CreatedAt:  o.clock.Now().UTC(),
		Seed:       runSeed,
		PresetName: presetName,
		Party:      party,
		Result:     result,
	}
	if _, err := o.runs.Save(ctx, &encounters.SaveInput{Run: run}); err != nil {
		return nil, errors.Wrapf(err, "failed to save run %s", runID)
	}

	slog.Info("simulation finished",
		"run_id", runID,
		"ticks", result.Ticks,
		"total_damage", result.TotalDamage,
		"total_healing", result.TotalHealing,
		"total_shield", result.TotalShield,
	)

	return run, nil
}

// GetRun returns a stored run
func (o *orchestrator) GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	out, err := o.runs.Get(ctx, &encounters.GetInput{RunID: input.RunID})
	if err != nil {
		return nil, err
	}

	return &GetRunOutput{Run: out.Run}, nil
}

// ListRuns returns recent runs newest first
func (o *orchestrator) ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}

	out, err := o.runs.ListRecent(ctx, &encounters.ListRecentInput{Limit: input.Limit})
	if err != nil {
		return nil, err
	}

	return &ListRunsOutput{Runs: out.Runs}, nil
}

// SavePreset stores a party under a name
func (o *orchestrator) SavePreset(ctx context.Context, input *SavePresetInput) (*SavePresetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.presets == nil {
		return nil, errors.FailedPrecondition("presets are not configured")
	}
	if input.Party.Members() == 0 {
		return nil, errors.InvalidArgument("party has no members")
	}

	out, err := o.presets.Save(ctx, &presets.SaveInput{
		Preset:    &presets.Preset{Name: input.Name, Party: input.Party},
		Overwrite: input.Overwrite,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("preset saved", "name", out.Preset.Name)

	return &SavePresetOutput{Preset: out.Preset}, nil
}

// SimulatePreset runs a saved party
func (o *orchestrator) SimulatePreset(ctx context.Context, input *SimulatePresetInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.presets == nil {
		return nil, errors.FailedPrecondition("presets are not configured")
	}

	out, err := o.presets.Get(ctx, &presets.GetInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	run, err := o.simulate(ctx, out.Preset.Party, input.Seed, out.Preset.Name)
	if err != nil {
		return nil, err
	}

	return &SimulateOutput{Run: run}, nil
}
