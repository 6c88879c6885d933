// Package world loads tokens with their actors attached and assembles the
// session a loot sheet operation runs in.
package world

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/notify"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/users"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

// EventTokenCreated is published after a token is added to a scene
const EventTokenCreated = "lootsheet.token.created"

// TokenRef identifies a token
type TokenRef struct {
	SceneID string `json:"scene_id"`
	ID      string `json:"id"`
}

// Config holds the dependencies for the resolver
type Config struct {
	ActorRepo actors.Repository
	TokenRepo tokens.Repository
	UserRepo  users.Repository
	// EventBus receives token-created events and carries notifications when set
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.TokenRepo == nil {
		vb.RequiredField("TokenRepo")
	}
	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	return vb.Build()
}

// Resolver reads the world
type Resolver struct {
	actorRepo actors.Repository
	tokenRepo tokens.Repository
	userRepo  users.Repository
	bus       events.EventBus
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Resolver{
		actorRepo: cfg.ActorRepo,
		tokenRepo: cfg.TokenRepo,
		userRepo:  cfg.UserRepo,
		bus:       cfg.EventBus,
	}, nil
}

// Tokens loads the referenced tokens in order. Tokens of the same actor
// share one actor value. A nil refs slice yields nil so selection
// defaults still apply downstream.
func (r *Resolver) Tokens(ctx context.Context, refs []TokenRef) ([]*entities.Token, error) {
	if refs == nil {
		return nil, nil
	}

	out := make([]*entities.Token, 0, len(refs))
	for _, ref := range refs {
		got, err := r.tokenRepo.Get(ctx, tokens.GetInput{SceneID: ref.SceneID, ID: ref.ID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load token %s", ref.ID)
		}
		out = append(out, got.Token)
	}

	if err := r.Hydrate(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Token loads a single token
func (r *Resolver) Token(ctx context.Context, ref TokenRef) (*entities.Token, error) {
	loaded, err := r.Tokens(ctx, []TokenRef{ref})
	if err != nil {
		return nil, err
	}
	return loaded[0], nil
}

// Hydrate attaches actors to tokens. A missing actor leaves Token.Actor nil.
func (r *Resolver) Hydrate(ctx context.Context, list []*entities.Token) error {
	cache := make(map[string]*entities.Actor)
	for _, token := range list {
		if token == nil || token.ActorID == "" {
			continue
		}
		actor, ok := cache[token.ActorID]
		if !ok {
			got, err := r.actorRepo.Get(ctx, actors.GetInput{ID: token.ActorID})
			switch {
			case errors.IsNotFound(err):
				slog.Warn("Token actor not found", "token", token.UUID(), "actor", token.ActorID)
			case err != nil:
				return errors.Wrapf(err, "failed to load actor %s", token.ActorID)
			default:
				actor = got.Actor
			}
			cache[token.ActorID] = actor
		}
		token.Actor = actor
	}
	return nil
}

// CreateToken stores a new token and announces it
func (r *Resolver) CreateToken(ctx context.Context, token *entities.Token) error {
	if _, err := r.tokenRepo.Put(ctx, tokens.PutInput{Token: token}); err != nil {
		return errors.Wrapf(err, "failed to create token")
	}
	if r.bus == nil {
		return nil
	}
	if err := r.Hydrate(ctx, []*entities.Token{token}); err != nil {
		return err
	}
	if err := r.bus.Publish(ctx, events.NewGameEvent(EventTokenCreated, nil, token)); err != nil {
		return errors.Wrapf(err, "failed to publish token created")
	}
	return nil
}

// NewSessionInput describes the caller of an operation
type NewSessionInput struct {
	UserID    string
	Selection []TokenRef
	// Notifier overrides the bus notifier
	Notifier notify.Notifier
}

// NewSession loads the caller, every user and the selected tokens
func (r *Resolver) NewSession(ctx context.Context, input *NewSessionInput) (*session.Session, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.Unauthenticated("user is required")
	}

	user, err := r.userRepo.Get(ctx, input.UserID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated("unknown user " + input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to load user")
	}

	all, err := r.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list users")
	}

	selection, err := r.Tokens(ctx, input.Selection)
	if err != nil {
		return nil, err
	}

	notifier := input.Notifier
	if notifier == nil && r.bus != nil {
		notifier = notify.NewBusNotifier(r.bus, user.ID)
	}

	return &session.Session{
		User:      user,
		Users:     all,
		Selection: selection,
		Notifier:  notifier,
	}, nil
}
