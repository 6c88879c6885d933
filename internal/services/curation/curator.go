// Package curation prepares an actor's inventory for a loot sheet: only
// items a player could carry off survive, and some of them come out damaged.
package curation

//go:generate mockgen -destination=mock/mock_curator.go -package=curationmock github.com/KirkDiggler/rpg-lootsheet/internal/services/curation Curator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// LootableTypes are the item types kept by curation
var LootableTypes = map[string]bool{
	"weapon":     true,
	"equipment":  true,
	"consumable": true,
	"tool":       true,
	"loot":       true,
	"backpack":   true,
}

// Curator filters and damages inventories
type Curator interface {
	Curate(ctx context.Context, input *CurateInput) (*CurateOutput, error)
}

// Options tune a single curation; nil fields use the configured defaults
type Options struct {
	// ChanceOfDamagedItems is the probability, 0 to 1, that an item is damaged
	ChanceOfDamagedItems *float64 `json:"chance_of_damaged_items,omitempty"`
	// DamagedItemsMultiplier scales the price of a damaged item
	DamagedItemsMultiplier *float64 `json:"damaged_items_multiplier,omitempty"`
	// RemoveDamagedItems drops damaged common items instead of keeping them
	RemoveDamagedItems *bool `json:"remove_damaged_items,omitempty"`
}

// Settings are resolved curation options
type Settings struct {
	ChanceOfDamagedItems   float64
	DamagedItemsMultiplier float64
	RemoveDamagedItems     bool
}

// Validate checks the ranges
func (s Settings) Validate() error {
	vb := errors.NewValidationBuilder()
	if s.ChanceOfDamagedItems < 0 || s.ChanceOfDamagedItems > 1 {
		vb.InvalidField("ChanceOfDamagedItems", "must be between 0 and 1")
	}
	if s.DamagedItemsMultiplier < 0 {
		vb.InvalidField("DamagedItemsMultiplier", "must not be negative")
	}
	return vb.Build()
}

// Resolve fills unset options from the settings
func (s Settings) Resolve(opts Options) Settings {
	out := s
	if opts.ChanceOfDamagedItems != nil {
		out.ChanceOfDamagedItems = *opts.ChanceOfDamagedItems
	}
	if opts.DamagedItemsMultiplier != nil {
		out.DamagedItemsMultiplier = *opts.DamagedItemsMultiplier
	}
	if opts.RemoveDamagedItems != nil {
		out.RemoveDamagedItems = *opts.RemoveDamagedItems
	}
	return out
}

// DefaultSettings never damages anything
var DefaultSettings = Settings{
	ChanceOfDamagedItems:   0,
	DamagedItemsMultiplier: 0.5,
	RemoveDamagedItems:     false,
}

// CurateInput is the inventory to curate
type CurateInput struct {
	Items   []*entities.Item
	Options Options
}

// CurateOutput holds the curated copies, in input order
type CurateOutput struct {
	Items   []*entities.Item
	Damaged int
	Removed int
}

// Config holds the dependencies for the curator
type Config struct {
	// Roller defaults to dice.DefaultRoller
	Roller   dice.Roller
	Defaults *Settings
}

// Validate ensures the defaults are usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Defaults != nil {
		return c.Defaults.Validate()
	}
	return nil
}

type curator struct {
	roller   dice.Roller
	defaults Settings
}

// NewCurator creates a curator
func NewCurator(cfg *Config) (Curator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	defaults := DefaultSettings
	if cfg.Defaults != nil {
		defaults = *cfg.Defaults
	}

	return &curator{
		roller:   roller,
		defaults: defaults,
	}, nil
}

func (c *curator) Curate(_ context.Context, input *CurateInput) (*CurateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	settings := c.defaults.Resolve(input.Options)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	out := &CurateOutput{Items: make([]*entities.Item, 0, len(input.Items))}
	for _, item := range input.Items {
		if item == nil || !LootableTypes[strings.ToLower(item.Type)] {
			continue
		}

		curated := item.Clone()
		damaged, err := c.rollDamage(settings.ChanceOfDamagedItems)
		if err != nil {
			return nil, err
		}
		if damaged {
			if settings.RemoveDamagedItems && isCommon(curated.Rarity) {
				out.Removed++
				continue
			}
			curated.Damaged = true
			curated.Price *= settings.DamagedItemsMultiplier
			out.Damaged++
		}
		out.Items = append(out.Items, curated)
	}

	slog.Debug("Curated items",
		"input", len(input.Items),
		"kept", len(out.Items),
		"damaged", out.Damaged,
		"removed", out.Removed)

	return out, nil
}

// rollDamage succeeds when a d100 lands at or under the chance
func (c *curator) rollDamage(chance float64) (bool, error) {
	if chance <= 0 {
		return false, nil
	}
	roll, err := c.roller.Roll(100)
	if err != nil {
		return false, errors.Wrapf(err, "failed to roll item damage")
	}
	return float64(roll) <= chance*100, nil
}

func isCommon(r entities.Rarity) bool {
	return r == "" || r == entities.RarityCommon
}
