// Package currency adds rolled coins to a token or to the actor behind it.
package currency

//go:generate mockgen -destination=mock/mock_distributor.go -package=currencymock github.com/KirkDiggler/rpg-lootsheet/internal/services/currency Distributor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
)

// Distributor hands out currency
type Distributor interface {
	AddCurrency(ctx context.Context, input *AddCurrencyInput) (*AddCurrencyOutput, error)
}

// AddCurrencyInput is the purse to add
type AddCurrencyInput struct {
	Token    *entities.Token
	Currency entities.Currency
	// IsTokenActor stores the coins on the token instead of its actor
	IsTokenActor bool
}

// AddCurrencyOutput holds the purse after the addition
type AddCurrencyOutput struct {
	Currency entities.Currency
}

// Config holds the dependencies for the distributor
type Config struct {
	ActorRepo actors.Repository
	TokenRepo tokens.Repository
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
	return vb.Build()
}

type distributor struct {
	actorRepo actors.Repository
	tokenRepo tokens.Repository
}

// NewDistributor creates a currency distributor
func NewDistributor(cfg *Config) (Distributor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &distributor{
		actorRepo: cfg.ActorRepo,
		tokenRepo: cfg.TokenRepo,
	}, nil
}

func (d *distributor) AddCurrency(ctx context.Context, input *AddCurrencyInput) (*AddCurrencyOutput, error) {
	if input == nil || input.Token == nil {
		return nil, errors.InvalidArgument("token is required")
	}
	token := input.Token

	if input.IsTokenActor {
		if input.Currency.IsZero() {
			return &AddCurrencyOutput{Currency: token.Currency}, nil
		}
		purse := token.Currency.Add(input.Currency)
		if _, err := d.tokenRepo.Update(ctx, tokens.UpdateInput{
			Token:    token,
			Currency: &purse,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to add currency to token %s", token.UUID())
		}
		slog.Debug("Added currency to token", "token", token.UUID(), "currency", purse)
		return &AddCurrencyOutput{Currency: purse}, nil
	}

	if !token.HasActor() {
		return nil, errors.NotFoundf("token %s has no actor", token.ID)
	}
	actor := token.Actor
	if input.Currency.IsZero() {
		return &AddCurrencyOutput{Currency: actor.Currency}, nil
	}
	purse := actor.Currency.Add(input.Currency)
	if _, err := d.actorRepo.Update(ctx, actors.UpdateInput{
		Actor:    actor,
		Currency: &purse,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to add currency to actor %s", actor.ID)
	}
	slog.Debug("Added currency to actor", "actor", actor.ID, "currency", purse)
	return &AddCurrencyOutput{Currency: purse}, nil
}
