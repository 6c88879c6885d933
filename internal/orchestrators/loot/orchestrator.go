// Package loot runs the loot pipeline for a token: roll a table, build the
// results, hand out the coins, then add the items.
package loot

//go:generate mockgen -destination=mock/mock_service.go -package=lootmock github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/loot Service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/currency"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/lootprocessor"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/populator"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/tableroller"
)

const tracerName = "github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/loot"

// Service populates tokens with loot
type Service interface {
	PopulateToken(ctx context.Context, input *PopulateTokenInput) (*PopulateTokenOutput, error)
}

// Config holds the dependencies for the loot orchestrator
type Config struct {
	Roller      tableroller.Roller
	Processor   lootprocessor.Processor
	Distributor currency.Distributor
	Populator   populator.Service
	// Tracer defaults to the global provider
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Processor == nil {
		vb.RequiredField("Processor")
	}
	if c.Distributor == nil {
		vb.RequiredField("Distributor")
	}
	if c.Populator == nil {
		vb.RequiredField("Populator")
	}

	return vb.Build()
}

type orchestrator struct {
	roller      tableroller.Roller
	processor   lootprocessor.Processor
	distributor currency.Distributor
	populator   populator.Service
	tracer      trace.Tracer
}

// NewOrchestrator creates a new loot orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &orchestrator{
		roller:      cfg.Roller,
		processor:   cfg.Processor,
		distributor: cfg.Distributor,
		populator:   cfg.Populator,
		tracer:      tracer,
	}, nil
}

func (o *orchestrator) PopulateToken(ctx context.Context, input *PopulateTokenInput) (*PopulateTokenOutput, error) {
	if input == nil || !input.Token.HasActor() {
		return nil, errors.NotFound("No token selected or supplied")
	}
	token := input.Token
	opts := input.Options

	ctx, span := o.tracer.Start(ctx, "loot.PopulateToken", trace.WithAttributes(
		attribute.String("token.uuid", token.UUID()),
	))
	defer span.End()

	table := input.Table
	var rule *entities.Rule
	if table == nil {
		chosen, err := o.populator.ChooseTable(ctx, &populator.ChooseTableInput{
			Actor:   token.Actor,
			TableID: input.TableID,
		})
		if err != nil {
			return nil, err
		}
		table, rule = chosen.Table, chosen.Rule
	}
	opts = applyRule(opts, rule)
	span.SetAttributes(attribute.String("table.id", table.ID))

	rolled, err := o.roller.Roll(ctx, &tableroller.RollInput{
		Table:      table,
		CustomRoll: opts.CustomRoll,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll table %s", table.ID)
	}

	built, err := o.processor.BuildResults(ctx, &lootprocessor.BuildResultsInput{
		Results: rolled.Results,
		Actor:   token.Actor,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build loot for %s", token.UUID())
	}

	purse, err := o.distributor.AddCurrency(ctx, &currency.AddCurrencyInput{
		Token:        token,
		Currency:     built.Loot.Currency,
		IsTokenActor: opts.IsTokenActor,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add currency to %s", token.UUID())
	}

	added, err := o.processor.AddItems(ctx, &lootprocessor.AddItemsInput{
		Token:     token,
		Items:     built.Loot.Items,
		StackSame: stackSame(opts),
		ItemLimit: opts.ItemLimit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add items to %s", token.UUID())
	}

	summary := &Summary{
		TokenUUID: token.UUID(),
		TableID:   table.ID,
		Rolls:     len(rolled.Results),
		Created:   added.Created,
		Stacked:   added.Stacked,
		Skipped:   added.Skipped,
		Currency:  built.Loot.Currency,
		Purse:     purse.Currency,
		Text:      built.Loot.Text,
	}
	if rule != nil {
		summary.RuleID = rule.ID
	}

	slog.Info("Populated token",
		"token", summary.TokenUUID,
		"table", summary.TableID,
		"rule", summary.RuleID,
		"rolls", summary.Rolls,
		"created", len(summary.Created),
		"stacked", len(summary.Stacked))

	return &PopulateTokenOutput{Summary: summary}, nil
}

// applyRule fills options the caller left unset from the matching rule
func applyRule(opts Options, rule *entities.Rule) Options {
	if rule == nil {
		return opts
	}
	if opts.CustomRoll == "" {
		opts.CustomRoll = rule.CustomRoll
	}
	if opts.ItemLimit == 0 {
		opts.ItemLimit = rule.ItemLimit
	}
	if opts.StackSame == nil && rule.StackSame != nil {
		v := *rule.StackSame
		opts.StackSame = &v
	}
	return opts
}

func stackSame(opts Options) bool {
	return opts.StackSame == nil || *opts.StackSame
}
