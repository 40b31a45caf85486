package v1alpha1

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/partyconfig"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters"
)

// decode copies a request struct into a Go value through its JSON form
func decode(req *structpb.Struct, into any) error {
	if req == nil {
		req = &structpb.Struct{}
	}
	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "unreadable request")
	}
	if err := json.Unmarshal(data, into); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "unreadable request")
	}
	return nil
}

// encode turns a Go value into a response struct
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// parseParty reads the exported party document carried in a request
func parseParty(raw json.RawMessage) (combat.PartyConfig, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return combat.PartyConfig{}, errors.InvalidArgument("party is required").WithMeta(errors.MetaField, "party")
	}
	return partyconfig.Import(string(raw))
}

// maxExactSeed is the largest integer a Struct number holds exactly
const maxExactSeed = 1 << 53

// parseSeed accepts a seed as a JSON number or, for values past 2^53, a
// decimal string. Absent means the server default.
func parseSeed(raw json.RawMessage) (*uint64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	invalid := func(cause error) error {
		return errors.WrapWithCode(cause, errors.CodeInvalidArgument, "seed must be a non-negative integer").
			WithMeta(errors.MetaField, "seed")
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		seed, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, invalid(err)
		}
		return &seed, nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err != nil {
		return nil, invalid(err)
	}
	if number < 0 || number > maxExactSeed || number != math.Trunc(number) {
		return nil, invalid(fmt.Errorf("%v is not an exact seed", number))
	}
	seed := uint64(number)
	return &seed, nil
}

// runView is a stored run on the wire. The seed is a string so every
// uint64 survives the trip through a Struct.
type runView struct {
	ID         string             `json:"runId"`
	CreatedAt  time.Time          `json:"createdAt"`
	Seed       string             `json:"seed"`
	PresetName string             `json:"presetName,omitempty"`
	Party      combat.PartyConfig `json:"party"`
	Result     *combat.Result     `json:"result"`
}

func toRunView(run *encounters.Run) runView {
	return runView{
		ID:         run.ID,
		CreatedAt:  run.CreatedAt,
		Seed:       strconv.FormatUint(run.Seed, 10),
		PresetName: run.PresetName,
		Party:      run.Party,
		Result:     run.Result,
	}
}

// runSummary is a list entry without the combat log
type runSummary struct {
	ID           string    `json:"runId"`
	CreatedAt    time.Time `json:"createdAt"`
	Seed         string    `json:"seed"`
	PresetName   string    `json:"presetName,omitempty"`
	Members      int       `json:"members"`
	TotalDamage  float64   `json:"totalDamage"`
	TotalHealing float64   `json:"totalHealing"`
	TotalShield  float64   `json:"totalShield"`
	Ticks        int       `json:"ticks"`
}

func toRunSummary(run *encounters.Run) runSummary {
	s := runSummary{
		ID:         run.ID,
		CreatedAt:  run.CreatedAt,
		Seed:       strconv.FormatUint(run.Seed, 10),
		PresetName: run.PresetName,
		Members:    run.Party.Members(),
	}
	if run.Result != nil {
		s.TotalDamage = run.Result.TotalDamage
		s.TotalHealing = run.Result.TotalHealing
		s.TotalShield = run.Result.TotalShield
		s.Ticks = run.Result.Ticks
	}
	return s
}
