package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/config"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
)

type SeedTestSuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	app *app
	ctx context.Context
}

func (s *SeedTestSuite) SetupTest() {
	s.ctx = context.Background()
	var err error
	s.mr, err = miniredis.Run()
	s.Require().NoError(err)

	cfg, err := config.Load("")
	s.Require().NoError(err)
	cfg.Redis.Addr = s.mr.Addr()
	cfg.Auth.Secret = "seed-test"
	cfg.SRD.Enabled = false

	s.app, err = newApp(cfg)
	s.Require().NoError(err)
	s.app.watch()
}

func (s *SeedTestSuite) TearDownTest() {
	s.app.close()
	s.mr.Close()
}

func (s *SeedTestSuite) world(enabled bool) *worldFile {
	return &worldFile{
		Users: []*entities.User{{ID: "gm", IsGM: true}, {ID: "alice"}},
		Actors: []*entities.Actor{
			{ID: "goblin", Name: "Goblin", Type: "npc", CreatureType: "humanoid"},
		},
		Tables: []*entities.LootTable{{
			ID:    "pockets",
			Draws: "1",
			Entries: []*entities.TableEntry{
				{ID: "e1", Type: entities.EntryTypeItem, Text: "Rusty Key", Weight: 1},
			},
		}},
		Rules: []*entities.Rule{{
			Name:    "Humanoids",
			TableID: "pockets",
			Filters: []*entities.RuleFilter{{
				Path:       entities.FilterPathCreatureType,
				Comparison: entities.ComparisonEquals,
				Value:      "humanoid",
			}},
		}},
		PopulatorEnabled: enabled,
		Tokens:           []*entities.Token{{ID: "g1", SceneID: "cave", ActorID: "goblin"}},
	}
}

func (s *SeedTestSuite) items() []*entities.Item {
	out, err := s.app.actorRepo.Get(s.ctx, actors.GetInput{ID: "goblin"})
	s.Require().NoError(err)
	return out.Actor.Items
}

func (s *SeedTestSuite) TestSeedPopulatesNewTokensWhenEnabled() {
	report, err := seedWorld(s.ctx, s.app, s.world(true))
	s.Require().NoError(err)
	s.Equal(&seedReport{Users: 2, Actors: 1, Tables: 1, Rules: 1, Tokens: 1}, report)

	items := s.items()
	s.Require().Len(items, 1)
	s.Equal("Rusty Key", items[0].Name)
}

func (s *SeedTestSuite) TestSeedLeavesTokensAloneWhenDisabled() {
	_, err := seedWorld(s.ctx, s.app, s.world(false))
	s.Require().NoError(err)
	s.Empty(s.items())

	rules, err := s.app.populator.Rules(s.ctx)
	s.Require().NoError(err)
	s.Len(rules, 1)
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}
