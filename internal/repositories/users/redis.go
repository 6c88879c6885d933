package users

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
	userKeyPrefix = "user:"
	userIndexKey  = "user:index"
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

// NewRedisRepository creates a new Redis repository for users
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	data, err := r.client.Get(ctx, userKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("user %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get user")
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user")
	}
	return &user, nil
}

func (r *redisRepository) Put(ctx context.Context, user *entities.User) error {
	if user == nil || user.ID == "" {
		return errors.InvalidArgument("user ID cannot be empty")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal user")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, userKeyPrefix+user.ID, data, 0)
	pipe.SAdd(ctx, userIndexKey, user.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store user")
	}
	return nil
}

func (r *redisRepository) List(ctx context.Context) ([]*entities.User, error) {
	ids, err := r.client.SMembers(ctx, userIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list users")
	}
	sort.Strings(ids)

	out := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		user, err := r.Get(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out = append(out, user)
	}
	return out, nil
}
