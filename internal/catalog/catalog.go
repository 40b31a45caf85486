// Package catalog holds the read-only character, light cone, relic set
// and ornament definitions the simulator looks up by id.
package catalog

import (
	"sort"

	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// Catalog is an immutable set of definitions
type Catalog struct {
	characters map[string]*combat.Character
	lightCones map[string]*combat.LightCone
	relicSets  map[string]*combat.RelicSet
	ornaments  map[string]*combat.Ornament
}

// New returns the built-in catalog
func New() *Catalog {
	c := &Catalog{
		characters: make(map[string]*combat.Character),
		lightCones: make(map[string]*combat.LightCone),
		relicSets:  make(map[string]*combat.RelicSet),
		ornaments:  make(map[string]*combat.Ornament),
	}
	for _, ch := range characters() {
		c.characters[ch.ID] = ch
	}
	for _, lc := range lightCones() {
		c.lightCones[lc.ID] = lc
	}
	for _, rs := range relicSets() {
		c.relicSets[rs.ID] = rs
	}
	for _, o := range ornaments() {
		c.ornaments[o.ID] = o
	}
	return c
}

// Character looks up a character or spirit by id
func (c *Catalog) Character(id string) (*combat.Character, error) {
	ch, ok := c.characters[id]
	if !ok {
		return nil, errors.UnknownID("character", id)
	}
	return ch, nil
}

// LightCone looks up a light cone by id
func (c *Catalog) LightCone(id string) (*combat.LightCone, error) {
	lc, ok := c.lightCones[id]
	if !ok {
		return nil, errors.UnknownID("light cone", id)
	}
	return lc, nil
}

// RelicSet looks up a relic set by id
func (c *Catalog) RelicSet(id string) (*combat.RelicSet, error) {
	rs, ok := c.relicSets[id]
	if !ok {
		return nil, errors.UnknownID("relic set", id)
	}
	return rs, nil
}

// Ornament looks up a planar ornament by id
func (c *Catalog) Ornament(id string) (*combat.Ornament, error) {
	o, ok := c.ornaments[id]
	if !ok {
		return nil, errors.UnknownID("ornament", id)
	}
	return o, nil
}

// CharacterIDs lists playable characters, spirits excluded
func (c *Catalog) CharacterIDs() []string {
	var ids []string
	for id, ch := range c.characters {
		if !ch.IsSpirit {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Loadout is a slot's resolved equipment
type Loadout struct {
	Character *combat.Character
	LightCone *combat.LightCone
	Rank      int
	// Passives are every effect the slot carries, owned by the slot's actor
	Passives []combat.Effect
	// Relics is the summed relic main and sub stats
	Relics combat.StatMap
}

// Resolve looks up every id on slot. Unknown ids are configuration
// errors; blank optional ids contribute nothing.
func (c *Catalog) Resolve(slot combat.SlotConfig, owner int) (*Loadout, error) {
	ch, err := c.Character(slot.CharacterID)
	if err != nil {
		return nil, err
	}
	if ch.IsSpirit {
		return nil, errors.InvalidArgumentf("%q is a summoned spirit and can't fill a slot", ch.ID).
			WithMeta(errors.MetaCategory, errors.CategoryConfiguration).
			WithMeta(errors.MetaID, ch.ID)
	}

	out := &Loadout{
		Character: ch,
		Rank:      combat.ClampRank(slot.LightConeRank),
		Relics:    combat.StatMap{},
	}

	var effects []combat.Effect
	if slot.LightConeID != "" {
		lc, err := c.LightCone(slot.LightConeID)
		if err != nil {
			return nil, err
		}
		out.LightCone = lc
		effects = append(effects, lc.Effects(out.Rank)...)
	}
	for _, pick := range slot.RelicSets {
		if pick.ID == "" || pick.Count <= 0 {
			continue
		}
		rs, err := c.RelicSet(pick.ID)
		if err != nil {
			return nil, err
		}
		effects = append(effects, rs.Effects(pick.Count)...)
	}
	if slot.OrnamentID != "" {
		o, err := c.Ornament(slot.OrnamentID)
		if err != nil {
			return nil, err
		}
		effects = append(effects, o.Effects...)
	}
	effects = append(effects, ch.Talents...)
	effects = append(effects, ch.EidolonEffects(slot.EidolonLevel)...)

	out.Passives = make([]combat.Effect, 0, len(effects))
	for _, e := range effects {
		out.Passives = append(out.Passives, e.WithOwner(owner))
	}

	for _, part := range combat.RelicParts() {
		if key, ok := slot.MainStats[part]; ok {
			out.Relics[key] += MainStatValue(key)
		}
	}
	out.Relics.Add(slot.SubStats)

	return out, nil
}
