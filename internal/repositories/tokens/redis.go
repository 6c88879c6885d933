package tokens

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-lootsheet/internal/redis"
)

const (
	// Key pattern: token:{scene_id}:{token_id}
	tokenKeyPrefix   = "token:"
	sceneIndexPrefix = "token:scene:"

	errTokenNil     = "token cannot be nil"
	errTokenIDEmpty = "token ID cannot be empty"
	errSceneIDEmpty = "scene ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for tokens
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SceneID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTokenIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.SceneID, input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("token %s not found in scene %s", input.ID, input.SceneID)
		}
		return nil, errors.Wrapf(err, "failed to get token")
	}

	var token entities.Token
	if err := json.Unmarshal([]byte(data), &token); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal token")
	}

	return &GetOutput{Token: &token}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateToken(input.Token); err != nil {
		return nil, err
	}
	if err := r.save(ctx, input.Token); err != nil {
		return nil, err
	}
	return &PutOutput{Token: input.Token}, nil
}

func (r *redisRepository) ListByScene(ctx context.Context, input ListBySceneInput) (*ListBySceneOutput, error) {
	if input.SceneID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, sceneIndexPrefix+input.SceneID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list tokens")
	}
	sort.Strings(ids)

	out := &ListBySceneOutput{Tokens: make([]*entities.Token, 0, len(ids))}
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{SceneID: input.SceneID, ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out.Tokens = append(out.Tokens, got.Token)
	}
	return out, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateToken(input.Token); err != nil {
		return nil, err
	}

	token := input.Token
	if input.OverlayEffect != nil {
		token.OverlayEffect = *input.OverlayEffect
	}
	if input.Vision != nil {
		token.Vision = *input.Vision
	}
	if input.Permissions != nil {
		token.Permissions = input.Permissions.Clone()
	}
	if input.Currency != nil {
		token.Currency = *input.Currency
	}

	if err := r.save(ctx, token); err != nil {
		return nil, err
	}
	return &UpdateOutput{Token: token}, nil
}

func (r *redisRepository) save(ctx context.Context, token *entities.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal token")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, buildKey(token.SceneID, token.ID), data, 0)
	pipe.SAdd(ctx, sceneIndexPrefix+token.SceneID, token.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store token %s", token.UUID())
	}
	return nil
}

func buildKey(sceneID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", tokenKeyPrefix, sceneID, tokenID)
}

func validateToken(token *entities.Token) error {
	if token == nil {
		return errors.InvalidArgument(errTokenNil)
	}
	if token.SceneID == "" {
		return errors.InvalidArgument(errSceneIDEmpty)
	}
	if token.ID == "" {
		return errors.InvalidArgument(errTokenIDEmpty)
	}
	return nil
}
