package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/orchestrators/encounter"
)

// SimulationHandlerConfig holds dependencies for the simulation handler
type SimulationHandlerConfig struct {
	Service encounter.Service
}

// Validate ensures all required dependencies are present
func (c *SimulationHandlerConfig) Validate() error {
	if c == nil || c.Service == nil {
		return errors.InvalidArgument("encounter service is required")
	}
	return nil
}

// SimulationHandler implements SimulationServiceServer
type SimulationHandler struct {
	service encounter.Service
}

var _ SimulationServiceServer = (*SimulationHandler)(nil)

// NewSimulationHandler creates a new simulation handler with the given configuration
func NewSimulationHandler(cfg *SimulationHandlerConfig) (*SimulationHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &SimulationHandler{service: cfg.Service}, nil
}

type simulateRequest struct {
	Party json.RawMessage `json:"party"`
	Seed  json.RawMessage `json:"seed"`
}

// Simulate runs the party in the request and returns the stored run
func (h *SimulationHandler) Simulate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in simulateRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	party, err := parseParty(in.Party)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	seed, err := parseSeed(in.Seed)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.Simulate(ctx, &encounter.SimulateInput{Party: party, Seed: seed})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"run": toRunView(out.Run)})
}

type getRunRequest struct {
	RunID string `json:"runId"`
}

// GetRun returns a stored run with its full log
func (h *SimulationHandler) GetRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in getRunRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.RunID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("runId is required"))
	}

	out, err := h.service.GetRun(ctx, &encounter.GetRunInput{RunID: in.RunID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"run": toRunView(out.Run)})
}

type listRunsRequest struct {
	Limit int `json:"limit"`
}

// ListRuns returns summaries of recent runs
func (h *SimulationHandler) ListRuns(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listRunsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListRuns(ctx, &encounter.ListRunsInput{Limit: in.Limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	runs := make([]runSummary, 0, len(out.Runs))
	for _, run := range out.Runs {
		runs = append(runs, toRunSummary(run))
	}
	return respond(map[string]any{"runs": runs})
}

type savePresetRequest struct {
	Name      string          `json:"name"`
	Party     json.RawMessage `json:"party"`
	Overwrite bool            `json:"overwrite"`
}

// SavePreset stores the party under a name
func (h *SimulationHandler) SavePreset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in savePresetRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	party, err := parseParty(in.Party)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SavePreset(ctx, &encounter.SavePresetInput{
		Name:      in.Name,
		Party:     party,
		Overwrite: in.Overwrite,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"name":      out.Preset.Name,
		"createdAt": out.Preset.CreatedAt,
		"updatedAt": out.Preset.UpdatedAt,
	})
}

type simulatePresetRequest struct {
	Name string          `json:"name"`
	Seed json.RawMessage `json:"seed"`
}

// SimulatePreset runs a saved party
func (h *SimulationHandler) SimulatePreset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in simulatePresetRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	seed, err := parseSeed(in.Seed)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SimulatePreset(ctx, &encounter.SimulatePresetInput{Name: in.Name, Seed: seed})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"run": toRunView(out.Run)})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
