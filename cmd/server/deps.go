package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/config"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/hooks"
	"github.com/KirkDiggler/rpg-combat-sim/internal/engine/simulator"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat-sim/internal/redis"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/presets"
)

// newService wires the run service from config. The returned func
// releases the stores.
func newService(ctx context.Context, cfg *config.Config) (encounter.Service, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	bus := events.NewBus()
	sim, err := simulator.New(&simulator.Config{
		Catalog:  catalog.New(),
		Registry: hooks.NewRegistry(),
		EventBus: bus,
	})
	if err != nil {
		return nil, nil, err
	}

	runs, err := newRunStore(ctx, cfg, &closers)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var presetStore presets.Repository
	if cfg.PresetDBPath != "" {
		store, err := presets.NewSQLite(&presets.SQLiteConfig{Path: cfg.PresetDBPath})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := store.Close(); err != nil {
				slog.Warn("failed to close preset database", "error", err)
			}
		})
		presetStore = store
		slog.Info("presets enabled", "path", cfg.PresetDBPath)
	}

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		Simulator:   sim,
		Runs:        runs,
		Presets:     presetStore,
		IDGenerator: idgen.NewUUID("run"),
		EventBus:    bus,
		DefaultSeed: cfg.DefaultSeed,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return svc, cleanup, nil
}

func newRunStore(ctx context.Context, cfg *config.Config, closers *[]func()) (encounters.Repository, error) {
	if cfg.RedisAddr == "" {
		slog.Info("keeping runs in memory", "ttl", cfg.RunTTL)
		return encounters.NewInMemory(&encounters.InMemoryConfig{TTL: cfg.RunTTL}), nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis address")
	}
	*closers = append(*closers, func() {
		_ = client.Close()
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}

	slog.Info("storing runs in redis", "addr", cfg.RedisAddr, "ttl", cfg.RunTTL)
	return encounters.NewRedis(&encounters.RedisConfig{Client: client, TTL: cfg.RunTTL})
}
