// Package srd resolves loot table entries against the D&D 5e SRD equipment
// list so rolled items carry a real price, weight and item type.
package srd

//go:generate mockgen -destination=mock/mock_catalog.go -package=srdmock github.com/KirkDiggler/rpg-lootsheet/internal/clients/srd Catalog

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// DefaultBaseURL is the public SRD API
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// Item types assigned to catalog entries
const (
	TypeWeapon    = "weapon"
	TypeEquipment = "equipment"
	TypeTool      = "tool"
	TypeBackpack  = "backpack"
	TypeLoot      = "loot"
)

// CatalogItem is an SRD equipment entry priced in gold
type CatalogItem struct {
	Key    string
	Name   string
	Type   string
	Price  float64
	Weight float64
}

// Catalog looks up equipment
type Catalog interface {
	// Lookup fetches an entry by its SRD index, e.g. "longsword"
	Lookup(ctx context.Context, ref string) (*CatalogItem, error)
	// Search returns the entry whose name is nearest to name
	Search(ctx context.Context, name string) (*CatalogItem, error)
}

// Source is the part of the dnd5e client the catalog uses
type Source interface {
	ListEquipment() ([]*entities.ReferenceItem, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

// Config contains configuration options for the catalog
type Config struct {
	// Source overrides the HTTP client, mostly for tests
	Source Source
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// MaxDistance is the largest edit distance Search accepts, relative to
	// the query length; defaults to a third of it
	MaxDistance float64
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.MaxDistance == 0 {
		cfg.MaxDistance = 1.0 / 3
	}
	if cfg.MaxDistance < 0 || cfg.MaxDistance > 1 {
		return errors.InvalidArgument("max distance must be between 0 and 1")
	}
	return nil
}

type catalog struct {
	source      Source
	maxDistance float64

	mu   sync.Mutex
	refs []*entities.ReferenceItem
}

// New creates a catalog backed by the cached dnd5e client
func New(cfg *Config) (Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	source := cfg.Source
	if source == nil {
		baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create D&D 5e API client")
		}
		source = dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)
	}

	return &catalog{
		source:      source,
		maxDistance: cfg.MaxDistance,
	}, nil
}

func (c *catalog) Lookup(_ context.Context, ref string) (*CatalogItem, error) {
	key := normalizeKey(ref)
	if key == "" {
		return nil, errors.InvalidArgument("equipment reference is required")
	}

	equipment, err := c.source.GetEquipment(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get equipment "+key)
	}
	item := convert(equipment)
	if item == nil {
		return nil, errors.NotFoundf("equipment %s not found", key)
	}
	return item, nil
}

func (c *catalog) Search(ctx context.Context, name string) (*CatalogItem, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	refs, err := c.references()
	if err != nil {
		return nil, err
	}

	var best *entities.ReferenceItem
	bestDistance := -1
	for _, ref := range refs {
		d := levenshtein.ComputeDistance(query, strings.ToLower(ref.Name))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = ref, d
		}
		if d == 0 {
			break
		}
	}

	if best == nil || float64(bestDistance) > c.maxDistance*float64(len(query)) {
		return nil, errors.NotFoundf("no equipment matches %q", name)
	}

	slog.Debug("Matched equipment", "query", name, "match", best.Key, "distance", bestDistance)
	return c.Lookup(ctx, best.Key)
}

// references lists the equipment index once per catalog
func (c *catalog) references() ([]*entities.ReferenceItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refs != nil {
		return c.refs, nil
	}
	refs, err := c.source.ListEquipment()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list equipment")
	}
	c.refs = refs
	return refs, nil
}

func convert(equipment dnd5e.EquipmentInterface) *CatalogItem {
	switch eq := equipment.(type) {
	case *entities.Weapon:
		return &CatalogItem{
			Key:    eq.Key,
			Name:   eq.Name,
			Type:   TypeWeapon,
			Price:  priceInGold(eq.Cost),
			Weight: float64(eq.Weight),
		}
	case *entities.Armor:
		return &CatalogItem{
			Key:    eq.Key,
			Name:   eq.Name,
			Type:   TypeEquipment,
			Price:  priceInGold(eq.Cost),
			Weight: float64(eq.Weight),
		}
	case *entities.Equipment:
		category := ""
		if eq.EquipmentCategory != nil {
			category = eq.EquipmentCategory.Key
		}
		return &CatalogItem{
			Key:    eq.Key,
			Name:   eq.Name,
			Type:   typeForCategory(eq.Key, category),
			Price:  priceInGold(eq.Cost),
			Weight: float64(eq.Weight),
		}
	default:
		return nil
	}
}

func typeForCategory(key, category string) string {
	switch {
	case category == "tools":
		return TypeTool
	case key == "backpack" || key == "pouch" || key == "chest" || key == "sack":
		return TypeBackpack
	default:
		return TypeLoot
	}
}

func priceInGold(cost *entities.Cost) float64 {
	if cost == nil {
		return 0
	}
	q := float64(cost.Quantity)
	switch strings.ToLower(cost.Unit) {
	case "pp":
		return q * 10
	case "ep":
		return q / 2
	case "sp":
		return q / 10
	case "cp":
		return q / 100
	default:
		return q
	}
}

// normalizeKey turns "Potion of Healing" into "potion-of-healing"
func normalizeKey(ref string) string {
	return strings.ToLower(strings.Join(strings.Fields(ref), "-"))
}
