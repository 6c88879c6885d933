package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-lootsheet/internal/auth"
	"github.com/KirkDiggler/rpg-lootsheet/internal/batch"
	"github.com/KirkDiggler/rpg-lootsheet/internal/clients/srd"
	"github.com/KirkDiggler/rpg-lootsheet/internal/config"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/handlers/lootsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-lootsheet/internal/notify"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/lootsheet"
	"github.com/KirkDiggler/rpg-lootsheet/internal/redis"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/settings"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tables"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/users"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/curation"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/currency"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/lootprocessor"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/populator"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/tableroller"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/world"
	"github.com/KirkDiggler/rpg-lootsheet/internal/sheets"
)

// app holds the wired service graph
type app struct {
	cfg          *config.Config
	redis        redis.Client
	bus          events.EventBus
	actorRepo    actors.Repository
	tokenRepo    tokens.Repository
	tableRepo    tables.Repository
	userRepo     users.Repository
	settingsRepo settings.Repository
	resolver     *world.Resolver
	populator    populator.Service
	loot         loot.Service
	service      lootsheet.Service
	handler      *v1alpha1.Handler
	issuer       *auth.Issuer
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, bus: events.NewBus()}

	var err error
	a.redis, err = redis.NewClient(redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.TLS,
	})
	if err != nil {
		return nil, err
	}

	if a.actorRepo, err = actors.NewRedisRepository(&actors.Config{Client: a.redis}); err != nil {
		return nil, err
	}
	if a.tokenRepo, err = tokens.NewRedisRepository(&tokens.Config{Client: a.redis}); err != nil {
		return nil, err
	}
	if a.tableRepo, err = tables.NewRedisRepository(&tables.Config{Client: a.redis}); err != nil {
		return nil, err
	}
	if a.userRepo, err = users.NewRedisRepository(&users.Config{Client: a.redis}); err != nil {
		return nil, err
	}
	if a.settingsRepo, err = settings.NewRedisRepository(&settings.Config{Client: a.redis}); err != nil {
		return nil, err
	}

	if a.resolver, err = world.NewResolver(&world.Config{
		ActorRepo: a.actorRepo,
		TokenRepo: a.tokenRepo,
		UserRepo:  a.userRepo,
		EventBus:  a.bus,
	}); err != nil {
		return nil, err
	}

	curator, err := curation.NewCurator(&curation.Config{Defaults: &curation.Settings{
		ChanceOfDamagedItems:   cfg.Curation.ChanceOfDamagedItems,
		DamagedItemsMultiplier: cfg.Curation.DamagedItemsMultiplier,
		RemoveDamagedItems:     cfg.Curation.RemoveDamagedItems,
	}})
	if err != nil {
		return nil, err
	}

	conv, err := conversion.NewOrchestrator(&conversion.Config{
		ActorRepo: a.actorRepo,
		TokenRepo: a.tokenRepo,
		Curator:   curator,
		Registry:  sheets.NewRegistry(&sheets.Config{EventBus: a.bus}),
	})
	if err != nil {
		return nil, err
	}

	var catalog srd.Catalog
	if cfg.SRD.Enabled {
		if catalog, err = srd.New(&srd.Config{
			BaseURL:     cfg.SRD.BaseURL,
			HTTPTimeout: cfg.SRD.Timeout,
			CacheTTL:    cfg.SRD.CacheTTL,
		}); err != nil {
			return nil, err
		}
	}

	roller, err := tableroller.NewRoller(&tableroller.Config{})
	if err != nil {
		return nil, err
	}
	processor, err := lootprocessor.NewProcessor(&lootprocessor.Config{ActorRepo: a.actorRepo, Catalog: catalog})
	if err != nil {
		return nil, err
	}
	distributor, err := currency.NewDistributor(&currency.Config{ActorRepo: a.actorRepo, TokenRepo: a.tokenRepo})
	if err != nil {
		return nil, err
	}
	if a.populator, err = populator.NewService(&populator.Config{
		SettingsRepo: a.settingsRepo,
		TableRepo:    a.tableRepo,
	}); err != nil {
		return nil, err
	}
	if a.loot, err = loot.NewOrchestrator(&loot.Config{
		Roller:      roller,
		Processor:   processor,
		Distributor: distributor,
		Populator:   a.populator,
	}); err != nil {
		return nil, err
	}

	coordinator, err := batch.NewCoordinator(&batch.Config{Parallelism: cfg.Batch.Parallelism})
	if err != nil {
		return nil, err
	}
	if a.service, err = lootsheet.NewOrchestrator(&lootsheet.Config{
		Conversion:  conv,
		Loot:        a.loot,
		Populator:   a.populator,
		TokenRepo:   a.tokenRepo,
		Coordinator: coordinator,
	}); err != nil {
		return nil, err
	}

	if a.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Service:  a.service,
		Resolver: a.resolver,
		EventBus: a.bus,
	}); err != nil {
		return nil, err
	}

	if a.issuer, err = auth.NewIssuer(&auth.Config{Secret: cfg.Auth.Secret, TTL: cfg.Auth.TTL}); err != nil {
		return nil, err
	}

	return a, nil
}

// watch subscribes notification logging and auto-population of new tokens
func (a *app) watch() {
	notify.Subscribe(a.bus, notify.LogNotification)
	populator.Watch(a.bus, world.EventTokenCreated, a.populator, func(ctx context.Context, token *entities.Token) error {
		out, err := a.loot.PopulateToken(ctx, &loot.PopulateTokenInput{Token: token})
		if err != nil {
			return err
		}
		slog.Info("Auto-populated token", "token", token.UUID(), "table", out.Summary.TableID)
		return nil
	})
}

func (a *app) close() {
	if err := a.redis.Close(); err != nil {
		slog.Warn("Failed to close redis client", "error", err)
	}
}
