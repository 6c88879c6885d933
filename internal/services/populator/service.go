// Package populator manages custom populate rules and the auto-populate
// toggle, and picks the loot table an actor is populated from.
package populator

//go:generate mockgen -destination=mock/mock_service.go -package=populatormock github.com/KirkDiggler/rpg-lootsheet/internal/services/populator Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-lootsheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/settings"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tables"
)

// Service manages populator settings
type Service interface {
	// Rules returns the registered custom rules
	Rules(ctx context.Context) (entities.RuleSet, error)
	// AddRule merges a rule into the set by ID, replacing an existing one
	AddRule(ctx context.Context, rule *entities.Rule) (*entities.Rule, error)
	Enabled(ctx context.Context) (bool, error)
	SetEnabled(ctx context.Context, enabled bool) error
	// ChooseTable resolves the table for an actor: the explicit table, then
	// the first matching rule by ID, then the default table
	ChooseTable(ctx context.Context, input *ChooseTableInput) (*ChooseTableOutput, error)
}

// PopulateFunc fills a freshly created token with loot
type PopulateFunc func(ctx context.Context, token *entities.Token) error

// ChooseTableInput names the actor and an optional explicit table
type ChooseTableInput struct {
	Actor   *entities.Actor
	TableID string
}

// ChooseTableOutput holds the chosen table and the rule that chose it, if any
type ChooseTableOutput struct {
	Table *entities.LootTable
	Rule  *entities.Rule
}

// Config holds the dependencies for the populator
type Config struct {
	SettingsRepo settings.Repository
	TableRepo    tables.Repository
	IDGenerator  idgen.Generator
	Clock        clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.SettingsRepo == nil {
		vb.RequiredField("SettingsRepo")
	}
	if c.TableRepo == nil {
		vb.RequiredField("TableRepo")
	}
	return vb.Build()
}

type service struct {
	settingsRepo settings.Repository
	tableRepo    tables.Repository
	idGen        idgen.Generator
	clock        clock.Clock
}

// NewService creates a populator service
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("rule")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &service{
		settingsRepo: cfg.SettingsRepo,
		tableRepo:    cfg.TableRepo,
		idGen:        gen,
		clock:        clk,
	}, nil
}

func (s *service) Rules(ctx context.Context) (entities.RuleSet, error) {
	rules, err := s.settingsRepo.GetRules(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load custom rules")
	}
	return rules, nil
}

func (s *service) AddRule(ctx context.Context, rule *entities.Rule) (*entities.Rule, error) {
	if rule == nil {
		return nil, errors.InvalidArgument("rule is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("TableID", rule.TableID, vb)
	if rule.ItemLimit < 0 {
		vb.InvalidField("ItemLimit", "must not be negative")
	}
	for i, f := range rule.Filters {
		if f == nil {
			vb.Fieldf("Filters", "filter %d is empty", i)
			continue
		}
		if _, err := f.Matches(&entities.Actor{}); err != nil {
			vb.Fieldf("Filters", "filter %d: %s", i, err.Error())
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	rules, err := s.Rules(ctx)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = entities.RuleSet{}
	}

	stored := *rule
	if stored.ID == "" {
		stored.ID = s.idGen.Generate()
	}
	stored.UpdatedAt = s.clock.Now()
	rules[stored.ID] = &stored

	if err := s.settingsRepo.SaveRules(ctx, rules); err != nil {
		return nil, errors.Wrapf(err, "failed to save custom rules")
	}

	slog.Info("Registered custom rule", "rule_id", stored.ID, "table_id", stored.TableID)
	return &stored, nil
}

func (s *service) Enabled(ctx context.Context) (bool, error) {
	enabled, err := s.settingsRepo.PopulatorEnabled(ctx)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read populator state")
	}
	return enabled, nil
}

func (s *service) SetEnabled(ctx context.Context, enabled bool) error {
	if err := s.settingsRepo.SetPopulatorEnabled(ctx, enabled); err != nil {
		return errors.Wrapf(err, "failed to switch populator")
	}
	slog.Info("Switched populator", "enabled", enabled)
	return nil
}

func (s *service) ChooseTable(ctx context.Context, input *ChooseTableInput) (*ChooseTableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.TableID != "" {
		table, err := s.loadTable(ctx, input.TableID)
		if err != nil {
			return nil, err
		}
		return &ChooseTableOutput{Table: table}, nil
	}

	rules, err := s.Rules(ctx)
	if err != nil {
		return nil, err
	}
	if rule := firstMatch(rules, input.Actor); rule != nil {
		table, err := s.loadTable(ctx, rule.TableID)
		if err != nil {
			return nil, err
		}
		return &ChooseTableOutput{Table: table, Rule: rule}, nil
	}

	defaultID, err := s.settingsRepo.DefaultTableID(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read default table")
	}
	if defaultID == "" {
		return nil, errors.FailedPrecondition("no loot table given, matched or configured")
	}
	table, err := s.loadTable(ctx, defaultID)
	if err != nil {
		return nil, err
	}
	return &ChooseTableOutput{Table: table}, nil
}

func (s *service) loadTable(ctx context.Context, id string) (*entities.LootTable, error) {
	got, err := s.tableRepo.Get(ctx, tables.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load table %s", id)
	}
	return got.Table, nil
}

func firstMatch(rules entities.RuleSet, actor *entities.Actor) *entities.Rule {
	ids := make([]string, 0, len(rules))
	for id := range rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if rules[id].Matches(actor) {
			return rules[id]
		}
	}
	return nil
}

// Watch populates every token announced under eventType while the
// populator is enabled. It returns the subscription ID.
func Watch(bus events.EventBus, eventType string, svc Service, populate PopulateFunc) string {
	return bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
		token, ok := e.Target().(*entities.Token)
		if !ok || !token.HasActor() {
			return nil
		}
		enabled, err := svc.Enabled(ctx)
		if err != nil {
			slog.Error("Failed to read populator state", "error", err)
			return nil
		}
		if !enabled {
			return nil
		}
		if err := populate(ctx, token); err != nil {
			slog.Warn("Auto-populate failed", "token", token.UUID(), "error", err)
		}
		return nil
	})
}
