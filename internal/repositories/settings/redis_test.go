package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/settings"
	"github.com/KirkDiggler/rpg-lootsheet/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    settings.Repository
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := settings.NewRedisRepository(&settings.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestRulesDefaultEmpty() {
	rules, err := s.repo.GetRules(s.ctx)
	s.Require().NoError(err)
	s.NotNil(rules)
	s.Empty(rules)
}

func (s *RedisRepositoryTestSuite) TestSaveRules() {
	rules := entities.RuleSet{
		"undead": {
			ID:      "undead",
			Name:    "Undead hoard",
			TableID: "crypt",
			Filters: []*entities.RuleFilter{{Path: entities.FilterPathCreatureType, Comparison: "==", Value: "undead"}},
		},
	}
	s.Require().NoError(s.repo.SaveRules(s.ctx, rules))

	got, err := s.repo.GetRules(s.ctx)
	s.Require().NoError(err)
	s.Require().Contains(got, "undead")
	s.Equal("crypt", got["undead"].TableID)
	s.Len(got["undead"].Filters, 1)
}

func (s *RedisRepositoryTestSuite) TestPopulatorToggle() {
	enabled, err := s.repo.PopulatorEnabled(s.ctx)
	s.Require().NoError(err)
	s.False(enabled)

	s.Require().NoError(s.repo.SetPopulatorEnabled(s.ctx, true))
	enabled, err = s.repo.PopulatorEnabled(s.ctx)
	s.Require().NoError(err)
	s.True(enabled)

	s.Require().NoError(s.repo.SetPopulatorEnabled(s.ctx, false))
	enabled, err = s.repo.PopulatorEnabled(s.ctx)
	s.Require().NoError(err)
	s.False(enabled)
}

func (s *RedisRepositoryTestSuite) TestDefaultTable() {
	id, err := s.repo.DefaultTableID(s.ctx)
	s.Require().NoError(err)
	s.Empty(id)

	s.Require().NoError(s.repo.SetDefaultTableID(s.ctx, "goblin-pockets"))
	id, err = s.repo.DefaultTableID(s.ctx)
	s.Require().NoError(err)
	s.Equal("goblin-pockets", id)
}
