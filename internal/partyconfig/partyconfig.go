// Package partyconfig encodes party configurations for copy-and-paste
// sharing. The text form is a versioned JSON envelope.
package partyconfig

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// Version is the envelope version Export writes
const Version = 1

type envelope struct {
	Version int                 `json:"version"`
	Party   *combat.PartyConfig `json:"party"`
}

// Export renders party as indented versioned JSON
func Export(party combat.PartyConfig) (string, error) {
	if len(party.Slots) > combat.PartySize {
		return "", errors.Malformed("slots",
			fmt.Errorf("%d slots, at most %d allowed", len(party.Slots), combat.PartySize))
	}
	data, err := json.MarshalIndent(envelope{Version: Version, Party: &party}, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode party")
	}
	return string(data), nil
}

// Import parses text produced by Export. Anything that does not decode
// into a supported envelope is a configuration error.
func Import(text string) (combat.PartyConfig, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return combat.PartyConfig{}, errors.Malformed("party", nil)
	}

	var env envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return combat.PartyConfig{}, errors.Malformed("party", err)
	}
	switch {
	case env.Version != Version:
		return combat.PartyConfig{}, errors.Malformed("version",
			fmt.Errorf("unsupported version %d", env.Version))
	case env.Party == nil:
		return combat.PartyConfig{}, errors.Malformed("party", fmt.Errorf("missing party"))
	case len(env.Party.Slots) > combat.PartySize:
		return combat.PartyConfig{}, errors.Malformed("slots",
			fmt.Errorf("%d slots, at most %d allowed", len(env.Party.Slots), combat.PartySize))
	}

	for i, slot := range env.Party.Slots {
		for key := range slot.SubStats {
			if key == "" {
				return combat.PartyConfig{}, errors.Malformed(fmt.Sprintf("slots[%d].subStats", i),
					fmt.Errorf("empty stat key"))
			}
		}
	}
	return *env.Party, nil
}
