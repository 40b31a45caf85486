package encounters

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/clock"
)

// InMemoryConfig configures the in-memory run store
type InMemoryConfig struct {
	// TTL drops runs older than this on read. Zero keeps them forever.
	TTL   time.Duration
	Clock clock.Clock
}

// InMemoryRepository implements Repository in process memory. Runs are
// stored as JSON so callers never share a result with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	ttl   time.Duration
	clock clock.Clock
	store map[string][]byte
	saved map[string]time.Time
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		ttl:   cfg.TTL,
		clock: c,
		store: make(map[string][]byte),
		saved: make(map[string]time.Time),
	}
}

// Save stores a run
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRun(input.Run); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Run)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal run")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Run.ID] = data
	r.saved[input.Run.ID] = r.clock.Now()

	return &SaveOutput{}, nil
}

// Get retrieves a run by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	run, err := r.load(input.RunID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Run: run}, nil
}

// ListRecent returns live runs newest first
func (r *InMemoryRepository) ListRecent(_ context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	limit := listLimit(input.Limit)

	r.mu.RLock()
	defer r.mu.RUnlock()

	runs := make([]*Run, 0, len(r.store))
	for id := range r.store {
		run, err := r.load(id)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID > runs[j].ID
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}

	return &ListRecentOutput{Runs: runs}, nil
}

// Delete removes a run
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.load(input.RunID); err != nil {
		return nil, err
	}
	delete(r.store, input.RunID)
	delete(r.saved, input.RunID)

	return &DeleteOutput{}, nil
}

// load decodes a stored run; callers hold the lock
func (r *InMemoryRepository) load(id string) (*Run, error) {
	data, exists := r.store[id]
	if !exists || r.expired(id) {
		return nil, errors.NotFoundf("run %s not found", id).WithMeta(errors.MetaID, id)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal run %s", id)
	}
	return &run, nil
}

func (r *InMemoryRepository) expired(id string) bool {
	if r.ttl <= 0 {
		return false
	}
	return r.clock.Now().Sub(r.saved[id]) >= r.ttl
}
