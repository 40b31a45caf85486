package encounter

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/simulator"
)

// eventCounter tallies combat events per run. Several runs can share one
// bus, so events are attributed by their run id and only runs that were
// started here are counted.
type eventCounter struct {
	mu     sync.Mutex
	counts map[string]map[string]int
}

func newEventCounter(bus events.EventBus) *eventCounter {
	c := &eventCounter{counts: make(map[string]map[string]int)}
	for _, eventType := range simulator.EventTypes() {
		bus.SubscribeFunc(eventType, 0, c.handle)
	}
	return c
}

func (c *eventCounter) handle(_ context.Context, e events.Event) error {
	value, ok := e.Context().Get(simulator.KeyRunID)
	if !ok {
		return nil
	}
	runID, ok := value.(string)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if counts, tracked := c.counts[runID]; tracked {
		counts[e.Type()]++
	}
	return nil
}

func (c *eventCounter) start(runID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[runID] = make(map[string]int)
}

// take stops tracking a run and returns its tally
func (c *eventCounter) take(runID string) map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := c.counts[runID]
	delete(c.counts, runID)
	return counts
}
