package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/scheduler"
)

type unit struct {
	av, spd float64
	order   int
	down    bool
}

func (u *unit) ActionValue() float64      { return u.av }
func (u *unit) SetActionValue(av float64) { u.av = av }
func (u *unit) Speed() float64            { return u.spd }
func (u *unit) Order() int                { return u.order }
func (u *unit) Waiting() bool             { return !u.down }

type SchedulerTestSuite struct {
	suite.Suite
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func units(us ...*unit) []scheduler.Unit {
	out := make([]scheduler.Unit, len(us))
	for i, u := range us {
		out[i] = u
	}
	return out
}

func (s *SchedulerTestSuite) TestAdvanceSkipsDowned() {
	a := &unit{spd: 100}
	b := &unit{spd: 120, down: true}

	scheduler.Advance(units(a, b))

	s.Equal(100.0, a.av)
	s.Zero(b.av)
}

func (s *SchedulerTestSuite) TestTieBreaks() {
	testCases := []struct {
		name string
		us   []*unit
		want int
	}{
		{"highest action value", []*unit{
			{av: 10050, spd: 100, order: 0},
			{av: 10100, spd: 90, order: 1},
		}, 1},
		{"then highest speed", []*unit{
			{av: 10000, spd: 100, order: 0},
			{av: 10000, spd: 130, order: 1},
		}, 1},
		{"then lowest order", []*unit{
			{av: 10000, spd: 100, order: 2},
			{av: 10000, spd: 100, order: 1},
		}, 1},
		{"below threshold never picked", []*unit{
			{av: 9999, spd: 500, order: 0},
			{av: 10000, spd: 1, order: 1},
		}, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			idx, ok := scheduler.Next(units(tc.us...))
			s.Require().True(ok)
			s.Equal(tc.want, idx)
		})
	}
}

func (s *SchedulerTestSuite) TestNothingReady() {
	_, ok := scheduler.Next(units(&unit{av: 10}, &unit{av: 20000, down: true}))
	s.False(ok)
	s.Empty(scheduler.Ready(units(&unit{av: 10})))
}

func (s *SchedulerTestSuite) TestDrainReadyInOrder() {
	a := &unit{av: 9950, spd: 100, order: 0}
	b := &unit{av: 9900, spd: 150, order: 1}
	c := &unit{av: 0, spd: 100, order: 2}
	all := units(a, b, c)

	scheduler.Advance(all)
	s.Len(scheduler.Ready(all), 2)

	var order []int
	for {
		idx, ok := scheduler.Next(all)
		if !ok {
			break
		}
		order = append(order, idx)
		scheduler.Complete(all[idx])
	}
	s.Equal([]int{1, 0}, order)
	s.Zero(a.av)
	s.Zero(b.av)
	s.Equal(100.0, c.av)
}

func (s *SchedulerTestSuite) TestDelayAndAdvance() {
	u := &unit{av: 3000}

	scheduler.Delay(u, 5000)
	s.Zero(u.av)

	scheduler.AdvanceForward(u, 0.25)
	s.Equal(2500.0, u.av)
}
