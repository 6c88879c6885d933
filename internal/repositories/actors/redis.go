package actors

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-lootsheet/internal/redis"
)

const (
	actorKeyPrefix = "actor:"
	actorIndexKey  = "actor:index"

	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// IDGenerator names created items; defaults to prefixed UUIDs
	IDGenerator idgen.Generator
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
	idGen  idgen.Generator
}

// NewRedisRepository creates a new Redis repository for actors
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("item")
	}

	return &redisRepository{
		client: cfg.Client,
		idGen:  gen,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	data, err := r.client.Get(ctx, actorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var actor entities.Actor
	if err := json.Unmarshal([]byte(data), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}

	return &GetOutput{Actor: &actor}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if err := r.save(ctx, input.Actor); err != nil {
		return nil, err
	}
	return &PutOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, actorIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list actors")
	}
	sort.Strings(ids)

	out := &ListOutput{Actors: make([]*entities.Actor, 0, len(ids))}
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out.Actors = append(out.Actors, got.Actor)
	}
	return out, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	actor := input.Actor
	if input.Items != nil {
		items, err := r.assignIDs(input.Items, nil)
		if err != nil {
			return nil, err
		}
		actor.Items = items
	}
	if input.Flags != nil {
		actor.Flags = *input.Flags
	}
	if input.Currency != nil {
		actor.Currency = *input.Currency
	}

	if err := r.save(ctx, actor); err != nil {
		return nil, err
	}
	return &UpdateOutput{Actor: actor}, nil
}

func (r *redisRepository) DeleteItems(ctx context.Context, input DeleteItemsInput) (*DeleteItemsOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	remove := make(map[string]bool, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		remove[id] = true
	}

	actor := input.Actor
	kept := make([]*entities.Item, 0, len(actor.Items))
	for _, item := range actor.Items {
		if !remove[item.ID] {
			kept = append(kept, item)
		}
	}
	deleted := len(actor.Items) - len(kept)
	actor.Items = kept

	if err := r.save(ctx, actor); err != nil {
		return nil, err
	}
	return &DeleteItemsOutput{Deleted: deleted}, nil
}

func (r *redisRepository) CreateItems(ctx context.Context, input CreateItemsInput) (*CreateItemsOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	actor := input.Actor
	created, err := r.assignIDs(input.Items, actor.Items)
	if err != nil {
		return nil, err
	}
	actor.Items = append(actor.Items, created...)

	if err := r.save(ctx, actor); err != nil {
		return nil, err
	}
	return &CreateItemsOutput{Items: created}, nil
}

func (r *redisRepository) UpdateItems(ctx context.Context, input UpdateItemsInput) (*UpdateItemsOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	actor := input.Actor
	for _, update := range input.Items {
		existing := actor.FindItem(update.ID)
		if existing == nil {
			return nil, errors.NotFoundf("item %s not found on actor %s", update.ID, actor.ID)
		}
		*existing = *update
	}

	if err := r.save(ctx, actor); err != nil {
		return nil, err
	}
	return &UpdateItemsOutput{Items: input.Items}, nil
}

// assignIDs fills missing item IDs and rejects collisions with existing
func (r *redisRepository) assignIDs(items, existing []*entities.Item) ([]*entities.Item, error) {
	seen := make(map[string]bool, len(existing)+len(items))
	for _, item := range existing {
		seen[item.ID] = true
	}

	out := make([]*entities.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.ID == "" {
			item.ID = r.idGen.Generate()
		}
		if seen[item.ID] {
			return nil, errors.Newf(errors.CodeAlreadyExists, "item %s already exists", item.ID)
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out, nil
}

func (r *redisRepository) save(ctx context.Context, actor *entities.Actor) error {
	data, err := json.Marshal(actor)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+actor.ID, data, 0)
	pipe.SAdd(ctx, actorIndexKey, actor.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store actor %s", actor.ID)
	}
	return nil
}

func validateActor(actor *entities.Actor) error {
	if actor == nil {
		return errors.InvalidArgument(errActorNil)
	}
	if actor.ID == "" {
		return errors.InvalidArgument(errActorIDEmpty)
	}
	return nil
}
