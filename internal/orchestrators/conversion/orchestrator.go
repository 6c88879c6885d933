// Package conversion turns an NPC token into a lootable container. The
// steps run in a fixed order so the sheet is never rendered against an
// actor that is half converted; steps already committed are not undone
// when a later one fails.
package conversion

//go:generate mockgen -destination=mock/mock_service.go -package=conversionmock github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion Service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/permissions"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/curation"
	"github.com/KirkDiggler/rpg-lootsheet/internal/sheets"
)

// NoTokenMessage is reported when there is nothing to convert
const NoTokenMessage = "No token selected or supplied"

const tracerName = "github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"

// Service converts tokens
type Service interface {
	ConvertToken(ctx context.Context, input *ConvertTokenInput) (*ConvertTokenOutput, error)
}

// ConvertTokenInput defines the request for converting a token
type ConvertTokenInput struct {
	Token *entities.Token
	// Kind is "loot" or "merchant", case-insensitive; empty means loot
	Kind    string
	Options curation.Options
	// Players receive observer access to the token
	Players []*entities.User
}

// ConvertTokenOutput defines the response for converting a token
type ConvertTokenOutput struct {
	Token *entities.Token
	// PriorState is the sheet state before conversion
	PriorState sheets.State
	// Sheet is set when the sheet was open and got rendered again
	Sheet *sheets.Sheet
}

// Config holds the dependencies for the conversion orchestrator
type Config struct {
	ActorRepo actors.Repository
	TokenRepo tokens.Repository
	Curator   curation.Curator
	Registry  sheets.Registry
	// Tracer defaults to the global provider
	Tracer trace.Tracer
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
	if c.Curator == nil {
		vb.RequiredField("Curator")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo actors.Repository
	tokenRepo tokens.Repository
	curator   curation.Curator
	registry  sheets.Registry
	tracer    trace.Tracer
}

// NewOrchestrator creates a new conversion orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &orchestrator{
		actorRepo: cfg.ActorRepo,
		tokenRepo: cfg.TokenRepo,
		curator:   cfg.Curator,
		registry:  cfg.Registry,
		tracer:    tracer,
	}, nil
}

func (o *orchestrator) ConvertToken(ctx context.Context, input *ConvertTokenInput) (*ConvertTokenOutput, error) {
	if input == nil || !input.Token.HasActor() {
		return nil, errors.NotFound(NoTokenMessage)
	}
	kind, err := entities.ParseSheetKind(input.Kind)
	if err != nil {
		return nil, errors.InvalidArgument(err.Error())
	}

	token := input.Token
	actor := token.Actor

	ctx, span := o.tracer.Start(ctx, "conversion.ConvertToken", trace.WithAttributes(
		attribute.String("token.uuid", token.UUID()),
		attribute.String("actor.id", actor.ID),
		attribute.String("sheet.kind", string(kind)),
	))
	defer span.End()

	slog.Info("Converting token",
		"token", token.UUID(),
		"actor", actor.ID,
		"kind", kind)

	// Capture and close the sheet before touching the actor
	prior := o.registry.State(actor.ID)
	if prior == sheets.StateOpen {
		if err := o.registry.Close(ctx, actor.ID); err != nil {
			return nil, errors.Wrapf(err, "failed to close sheet for actor %s", actor.ID)
		}
	}

	curated, err := o.curator.Curate(ctx, &curation.CurateInput{
		Items:   actor.Items,
		Options: input.Options,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to curate items for actor %s", actor.ID)
	}

	if _, err := o.actorRepo.DeleteItems(ctx, actors.DeleteItemsInput{
		Actor:   actor,
		ItemIDs: actor.ItemIDs(),
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to clear items of actor %s", actor.ID)
	}

	items := curated.Items
	if items == nil {
		items = []*entities.Item{}
	}
	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{
		Actor: actor,
		Items: items,
		Flags: &entities.SheetFlags{
			SheetClass:        entities.SheetClassLootNPC,
			LootSheetType:     kind.LootSheetType(),
			PlayersPermission: entities.PermissionObserver,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor %s", actor.ID)
	}

	overlay := kind.OverlayIcon()
	vision := false
	if _, err := o.tokenRepo.Update(ctx, tokens.UpdateInput{
		Token:         token,
		OverlayEffect: &overlay,
		Vision:        &vision,
		Permissions:   permissions.ComputeUpdated(token, entities.PermissionObserver, input.Players),
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to update token %s", token.UUID())
	}

	// The cached binding still points at the old sheet class
	o.registry.Evict(actor.ID)

	out := &ConvertTokenOutput{Token: token, PriorState: prior}
	if prior == sheets.StateOpen {
		sheet, err := o.registry.Render(ctx, actor, true)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render sheet for actor %s", actor.ID)
		}
		out.Sheet = sheet
	}

	slog.Info("Converted token",
		"token", token.UUID(),
		"items", len(items),
		"damaged", curated.Damaged,
		"removed", curated.Removed)

	return out, nil
}
