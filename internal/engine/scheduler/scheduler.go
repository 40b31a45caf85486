// Package scheduler implements the action-value clock: every tick each
// living unit gains its speed, and one ready unit acts at a time.
package scheduler

// Threshold is the action value at which a unit becomes ready
const Threshold = 10000

// Unit is anything that competes for turns
type Unit interface {
	ActionValue() float64
	SetActionValue(av float64)
	Speed() float64
	// Order breaks the final tie; lower goes first
	Order() int
	// Waiting is false for downed or absent units
	Waiting() bool
}

// Advance adds each waiting unit's speed to its action value
func Advance(units []Unit) {
	for _, u := range units {
		if u.Waiting() {
			u.SetActionValue(u.ActionValue() + u.Speed())
		}
	}
}

// Ready lists the waiting units at or past the threshold
func Ready(units []Unit) []Unit {
	var out []Unit
	for _, u := range units {
		if u.Waiting() && u.ActionValue() >= Threshold {
			out = append(out, u)
		}
	}
	return out
}

// Next picks the ready unit to act: highest action value, then highest
// speed, then lowest order. It returns the unit's position in units.
func Next(units []Unit) (int, bool) {
	best := -1
	for i, u := range units {
		if !u.Waiting() || u.ActionValue() < Threshold {
			continue
		}
		if best < 0 || before(u, units[best]) {
			best = i
		}
	}
	return best, best >= 0
}

func before(a, b Unit) bool {
	if a.ActionValue() != b.ActionValue() {
		return a.ActionValue() > b.ActionValue()
	}
	if a.Speed() != b.Speed() {
		return a.Speed() > b.Speed()
	}
	return a.Order() < b.Order()
}

// Complete ends the unit's turn by consuming its action value
func Complete(u Unit) {
	u.SetActionValue(0)
}

// Delay pushes a unit back by amount; action value never goes below zero
func Delay(u Unit, amount float64) {
	u.SetActionValue(max(0, u.ActionValue()-amount))
}

// AdvanceForward moves a unit toward its turn by a fraction of the
// threshold
func AdvanceForward(u Unit, fraction float64) {
	u.SetActionValue(u.ActionValue() + Threshold*fraction)
}
