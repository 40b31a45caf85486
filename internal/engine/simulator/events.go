package simulator

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Combat event types published on the bus
const (
	EventTurn   = "combat.turn"
	EventAction = "combat.action"
	EventBreak  = "combat.break"
	EventDown   = "combat.down"
	EventSummon = "combat.summon"
)

// Event context keys
const (
	KeyRunID = "run_id"
)

// EventTypes lists every type a run publishes
func EventTypes() []string {
	return []string{EventTurn, EventAction, EventBreak, EventDown, EventSummon}
}

// publish sends one event tagged with the run id. Publishing failures
// never stop the run.
func (r *run) publish(eventType string, source, target core.Entity, data map[string]any) {
	if r.bus == nil {
		return
	}
	event := events.NewGameEvent(eventType, source, target)
	event.Context().Set(KeyRunID, r.id)
	for k, v := range data {
		event.Context().Set(k, v)
	}
	if err := r.bus.Publish(r.ctx, event); err != nil {
		slog.Warn("failed to publish combat event",
			"run_id", r.id,
			"type", eventType,
			"error", err)
	}
}
