// Package lootprocessor turns rolled table results into loot and merges
// that loot into a token's inventory.
package lootprocessor

//go:generate mockgen -destination=mock/mock_processor.go -package=lootprocessormock github.com/KirkDiggler/rpg-lootsheet/internal/services/lootprocessor Processor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-lootsheet/internal/clients/srd"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/pkg/formula"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/tableroller"
)

// SourcePrefix marks items resolved from the SRD catalog
const SourcePrefix = "srd:"

// Processor builds loot and adds it to tokens
type Processor interface {
	// BuildResults resolves rolled entries into items, coins and notes
	BuildResults(ctx context.Context, input *BuildResultsInput) (*BuildResultsOutput, error)
	// AddItems merges items into the token's actor inventory
	AddItems(ctx context.Context, input *AddItemsInput) (*AddItemsOutput, error)
}

// Loot is the outcome of one table roll
type Loot struct {
	Items    []*entities.Item
	Currency entities.Currency
	Text     []string
}

// BuildResultsInput holds the rolled results for an actor
type BuildResultsInput struct {
	Results []*tableroller.Result
	Actor   *entities.Actor
}

// BuildResultsOutput holds the built loot
type BuildResultsOutput struct {
	Loot *Loot
}

// AddItemsInput selects the token and how items merge
type AddItemsInput struct {
	Token *entities.Token
	Items []*entities.Item
	// StackSame raises the quantity of an identical item instead of adding a new entry
	StackSame bool
	// ItemLimit caps the new inventory entries per call; 0 is unlimited
	ItemLimit int
}

// AddItemsOutput reports what changed
type AddItemsOutput struct {
	Created []*entities.Item
	Stacked []*entities.Item
	Skipped int
}

// Config holds the dependencies for the processor
type Config struct {
	ActorRepo actors.Repository
	// Catalog is optional; without it items keep the table's text
	Catalog srd.Catalog
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
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
	return vb.Build()
}

type processor struct {
	actorRepo actors.Repository
	catalog   srd.Catalog
	roller    dice.Roller
}

// NewProcessor creates a loot processor
func NewProcessor(cfg *Config) (Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &processor{
		actorRepo: cfg.ActorRepo,
		catalog:   cfg.Catalog,
		roller:    roller,
	}, nil
}

func (p *processor) BuildResults(ctx context.Context, input *BuildResultsInput) (*BuildResultsOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}

	loot := &Loot{}
	for _, result := range input.Results {
		if result == nil || result.Entry == nil {
			continue
		}
		entry := result.Entry

		quantity, err := formula.Roll(p.roller, entry.Quantity, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid quantity for entry %s", entry.ID)
		}
		if quantity <= 0 {
			continue
		}

		switch entry.Type {
		case entities.EntryTypeCurrency:
			denomination := entities.DenominationGP
			if entry.Denomination != "" {
				denomination, err = entities.ParseDenomination(string(entry.Denomination))
				if err != nil {
					return nil, errors.InvalidArgumentf("entry %s: %s", entry.ID, err.Error())
				}
			}
			loot.Currency = loot.Currency.AddCoins(denomination, quantity)

		case entities.EntryTypeItem:
			loot.Items = append(loot.Items, p.resolveItem(ctx, entry, quantity))

		default:
			if entry.Text != "" {
				loot.Text = append(loot.Text, entry.Text)
			}
		}
	}

	slog.Debug("Built loot",
		"actor", input.Actor.ID,
		"results", len(input.Results),
		"items", len(loot.Items),
		"currency", loot.Currency)

	return &BuildResultsOutput{Loot: loot}, nil
}

// resolveItem prices an entry from the catalog, falling back to the entry
// text when the catalog has no match or is unreachable
func (p *processor) resolveItem(ctx context.Context, entry *entities.TableEntry, quantity int) *entities.Item {
	item := &entities.Item{
		Name:     strings.TrimSpace(entry.Text),
		Type:     srd.TypeLoot,
		Quantity: quantity,
		Rarity:   entry.Rarity,
	}
	if item.Name == "" {
		item.Name = entry.ItemRef
	}
	if p.catalog == nil {
		return item
	}

	var (
		found *srd.CatalogItem
		err   error
	)
	if entry.ItemRef != "" {
		found, err = p.catalog.Lookup(ctx, entry.ItemRef)
	} else if item.Name != "" {
		found, err = p.catalog.Search(ctx, item.Name)
	}
	if err != nil {
		slog.Warn("Catalog lookup failed, keeping table text", "entry", entry.ID, "error", err)
		return item
	}
	if found == nil {
		return item
	}

	item.Name = found.Name
	item.Type = found.Type
	item.Price = found.Price
	item.Weight = found.Weight
	item.SourceID = SourcePrefix + found.Key
	return item
}

func (p *processor) AddItems(ctx context.Context, input *AddItemsInput) (*AddItemsOutput, error) {
	if input == nil || input.Token == nil {
		return nil, errors.InvalidArgument("token is required")
	}
	if !input.Token.HasActor() {
		return nil, errors.NotFoundf("token %s has no actor", input.Token.ID)
	}
	if input.ItemLimit < 0 {
		return nil, errors.InvalidArgument("item limit must not be negative")
	}
	actor := input.Token.Actor

	existing := make(map[string]*entities.Item, len(actor.Items))
	if input.StackSame {
		for _, item := range actor.Items {
			if _, ok := existing[item.StackKey()]; !ok {
				existing[item.StackKey()] = item
			}
		}
	}

	out := &AddItemsOutput{}
	pending := make(map[string]*entities.Item)
	stacked := make(map[string]*entities.Item)
	var stackOrder []string

	for _, item := range input.Items {
		if item == nil || item.Quantity <= 0 {
			continue
		}
		key := item.StackKey()

		if input.StackSame {
			if created, ok := pending[key]; ok {
				created.Quantity += item.Quantity
				continue
			}
			if current, ok := existing[key]; ok {
				update, ok := stacked[current.ID]
				if !ok {
					update = current.Clone()
					stacked[current.ID] = update
					stackOrder = append(stackOrder, current.ID)
				}
				update.Quantity += item.Quantity
				continue
			}
		}

		if input.ItemLimit > 0 && len(out.Created) >= input.ItemLimit {
			out.Skipped++
			continue
		}

		created := item.Clone()
		created.ID = ""
		out.Created = append(out.Created, created)
		if input.StackSame {
			pending[key] = created
		}
	}

	for _, id := range stackOrder {
		out.Stacked = append(out.Stacked, stacked[id])
	}

	if len(out.Stacked) > 0 {
		if _, err := p.actorRepo.UpdateItems(ctx, actors.UpdateItemsInput{
			Actor: actor,
			Items: out.Stacked,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to stack items on actor %s", actor.ID)
		}
	}

	if len(out.Created) > 0 {
		created, err := p.actorRepo.CreateItems(ctx, actors.CreateItemsInput{
			Actor: actor,
			Items: out.Created,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to add items to actor %s", actor.ID)
		}
		out.Created = created.Items
	}

	slog.Info("Added items to token",
		"token", input.Token.UUID(),
		"created", len(out.Created),
		"stacked", len(out.Stacked),
		"skipped", out.Skipped)

	return out, nil
}
