package settings

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-lootsheet/internal/redis"
)

const (
	rulesKey        = "settings:custom_rules"
	autoPopulateKey = "settings:auto_populate"
	defaultTableKey = "settings:default_table"
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

// NewRedisRepository creates a new Redis repository for settings
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) GetRules(ctx context.Context) (entities.RuleSet, error) {
	data, err := r.client.Get(ctx, rulesKey).Result()
	if err != nil {
		if err == redis.Nil {
			return entities.RuleSet{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get custom rules")
	}

	rules := entities.RuleSet{}
	if err := json.Unmarshal([]byte(data), &rules); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal custom rules")
	}
	return rules, nil
}

func (r *redisRepository) SaveRules(ctx context.Context, rules entities.RuleSet) error {
	if rules == nil {
		rules = entities.RuleSet{}
	}
	data, err := json.Marshal(rules)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal custom rules")
	}
	if err := r.client.Set(ctx, rulesKey, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store custom rules")
	}
	return nil
}

func (r *redisRepository) PopulatorEnabled(ctx context.Context) (bool, error) {
	v, err := r.client.Get(ctx, autoPopulateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to get populator state")
	}
	return v == "1", nil
}

func (r *redisRepository) SetPopulatorEnabled(ctx context.Context, enabled bool) error {
	v := "0"
	if enabled {
		v = "1"
	}
	if err := r.client.Set(ctx, autoPopulateKey, v, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store populator state")
	}
	return nil
}

func (r *redisRepository) DefaultTableID(ctx context.Context) (string, error) {
	v, err := r.client.Get(ctx, defaultTableKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", errors.Wrapf(err, "failed to get default table")
	}
	return v, nil
}

func (r *redisRepository) SetDefaultTableID(ctx context.Context, tableID string) error {
	if err := r.client.Set(ctx, defaultTableKey, tableID, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store default table")
	}
	return nil
}
