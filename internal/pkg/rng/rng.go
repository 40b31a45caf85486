// Package rng provides a seedable dice roller so simulation runs can be
// replayed exactly.
package rng

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
)

// Roller is a deterministic dice.Roller backed by a PCG source
type Roller struct {
	r *rand.Rand
}

var _ dice.Roller = (*Roller)(nil)

// New returns a roller whose sequence is fully determined by seed
func New(seed uint64) *Roller {
	return &Roller{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size]
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	return r.r.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// For returns a seeded roller when seed is non-zero and the toolkit's
// default roller otherwise
func For(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return New(seed)
}
