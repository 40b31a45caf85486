package encounters

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-combat-sim/internal/redis"
)

const (
	runKeyPrefix   = "run:"
	recentIndexKey = "runs:recent"

	errRunIDEmpty = "run ID cannot be empty"
)

// RedisConfig contains configuration for the Redis run repository.
type RedisConfig struct {
	Client redisclient.Client
	// TTL expires run snapshots. Zero keeps them forever.
	TTL   time.Duration
	Clock clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
	clock  clock.Clock
}

// NewRedis creates a Redis-backed run repository. Each run is one JSON
// value under run:<id>; runs:recent is a sorted set of ids scored by
// creation time in milliseconds.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
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

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, runKeyPrefix+input.Run.ID, data, r.ttl)
	pipe.ZAdd(ctx, recentIndexKey, redis.Z{
		Score:  float64(input.Run.CreatedAt.UnixMilli()),
		Member: input.Run.ID,
	})
	if r.ttl > 0 {
		cutoff := r.clock.Now().Add(-r.ttl).UnixMilli()
		pipe.ZRemRangeByScore(ctx, recentIndexKey, "-inf", "("+strconv.FormatInt(cutoff, 10))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save run")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	result, err := r.client.Get(ctx, runKeyPrefix+input.RunID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("run %s not found", input.RunID).WithMeta(errors.MetaID, input.RunID)
		}
		return nil, errors.Wrap(err, "failed to get run")
	}

	var run Run
	if err := json.Unmarshal([]byte(result), &run); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal run %s", input.RunID)
	}

	return &GetOutput{Run: &run}, nil
}

func (r *redisRepository) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	limit := listLimit(input.Limit)

	ids, err := r.client.ZRevRange(ctx, recentIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read recent runs index")
	}

	runs := make([]*Run, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, &GetInput{RunID: id})
		if err != nil {
			// The snapshot expired before its index entry was trimmed
			if errors.IsNotFound(err) {
				slog.DebugContext(ctx, "run expired, cleaning up index", "run_id", id)
				r.client.ZRem(ctx, recentIndexKey, id)
				continue
			}
			return nil, err
		}
		runs = append(runs, out.Run)
	}

	return &ListRecentOutput{Runs: runs}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, runKeyPrefix+input.RunID)
	pipe.ZRem(ctx, recentIndexKey, input.RunID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete run")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("run %s not found", input.RunID).WithMeta(errors.MetaID, input.RunID)
	}

	return &DeleteOutput{}, nil
}
