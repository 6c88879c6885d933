package tables

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-lootsheet/internal/redis"
)

const (
	tableKeyPrefix = "loot_table:"
	tableIndexKey  = "loot_table:index"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil || c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for loot tables
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("table ID cannot be empty")
	}

	data, err := r.client.Get(ctx, tableKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("loot table %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get loot table")
	}

	var table entities.LootTable
	if err := json.Unmarshal([]byte(data), &table); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal loot table")
	}
	return &GetOutput{Table: &table}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Table == nil || input.Table.ID == "" {
		return nil, errors.InvalidArgument("table ID cannot be empty")
	}
	if len(input.Table.Entries) == 0 {
		return nil, errors.InvalidArgumentf("loot table %s has no entries", input.Table.ID)
	}

	data, err := json.Marshal(input.Table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal loot table")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tableKeyPrefix+input.Table.ID, data, 0)
	pipe.SAdd(ctx, tableIndexKey, input.Table.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store loot table")
	}
	return &PutOutput{Table: input.Table}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, tableIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list loot tables")
	}
	sort.Strings(ids)

	out := &ListOutput{Tables: make([]*entities.LootTable, 0, len(ids))}
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out.Tables = append(out.Tables, got.Table)
	}
	return out, nil
}
