package actors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    actors.Repository
	cleanup func()
	goblin  *entities.Actor
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := actors.NewRedisRepository(&actors.Config{
		Client:      client,
		IDGenerator: idgen.NewSequential("item"),
	})
	s.Require().NoError(err)
	s.repo = repo

	s.goblin = &entities.Actor{
		ID:   "goblin",
		Name: "Goblin",
		Type: "npc",
		Items: []*entities.Item{
			{ID: "scimitar", Name: "Scimitar", Type: "weapon", Quantity: 1},
			{ID: "bite", Name: "Bite", Type: "feat"},
		},
	}
	_, err = s.repo.Put(s.ctx, actors.PutInput{Actor: s.goblin})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := actors.NewRedisRepository(&actors.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet() {
	s.Run("existing actor", func() {
		out, err := s.repo.Get(s.ctx, actors.GetInput{ID: "goblin"})
		s.Require().NoError(err)
		s.Equal("Goblin", out.Actor.Name)
		s.Len(out.Actor.Items, 2)
	})

	s.Run("missing actor", func() {
		_, err := s.repo.Get(s.ctx, actors.GetInput{ID: "dragon"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Get(s.ctx, actors.GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestList() {
	_, err := s.repo.Put(s.ctx, actors.PutInput{Actor: &entities.Actor{ID: "bandit", Name: "Bandit"}})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, actors.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Actors, 2)
	s.Equal("bandit", out.Actors[0].ID)
	s.Equal("goblin", out.Actors[1].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteItemsMutatesAndPersists() {
	out, err := s.repo.DeleteItems(s.ctx, actors.DeleteItemsInput{
		Actor:   s.goblin,
		ItemIDs: s.goblin.ItemIDs(),
	})
	s.Require().NoError(err)
	s.Equal(2, out.Deleted)
	s.Empty(s.goblin.Items)

	stored, err := s.repo.Get(s.ctx, actors.GetInput{ID: "goblin"})
	s.Require().NoError(err)
	s.Empty(stored.Actor.Items)
}

func (s *RedisRepositoryTestSuite) TestUpdateAppliesEveryField() {
	flags := entities.SheetFlags{
		SheetClass:        entities.SheetClassLootNPC,
		LootSheetType:     entities.LootSheetTypeMerchant,
		PlayersPermission: entities.PermissionObserver,
	}
	purse := entities.Currency{GP: 12}

	_, err := s.repo.Update(s.ctx, actors.UpdateInput{
		Actor:    s.goblin,
		Items:    []*entities.Item{{Name: "Gold Ring", Type: "loot", Quantity: 1}},
		Flags:    &flags,
		Currency: &purse,
	})
	s.Require().NoError(err)
	s.Equal(flags, s.goblin.Flags)
	s.Require().Len(s.goblin.Items, 1)
	s.Equal("item_1", s.goblin.Items[0].ID)

	stored, err := s.repo.Get(s.ctx, actors.GetInput{ID: "goblin"})
	s.Require().NoError(err)
	s.Equal(flags, stored.Actor.Flags)
	s.Equal(purse, stored.Actor.Currency)
	s.Equal("Gold Ring", stored.Actor.Items[0].Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsItemsWhenNil() {
	flags := entities.SheetFlags{SheetClass: entities.SheetClassLootNPC}
	_, err := s.repo.Update(s.ctx, actors.UpdateInput{Actor: s.goblin, Flags: &flags})
	s.Require().NoError(err)
	s.Len(s.goblin.Items, 2)
}

func (s *RedisRepositoryTestSuite) TestCreateAndUpdateItems() {
	created, err := s.repo.CreateItems(s.ctx, actors.CreateItemsInput{
		Actor: s.goblin,
		Items: []*entities.Item{{Name: "Potion of Healing", Type: "consumable", Quantity: 2}},
	})
	s.Require().NoError(err)
	s.Require().Len(created.Items, 1)
	s.Len(s.goblin.Items, 3)

	potion := created.Items[0].Clone()
	potion.Quantity = 5
	_, err = s.repo.UpdateItems(s.ctx, actors.UpdateItemsInput{Actor: s.goblin, Items: []*entities.Item{potion}})
	s.Require().NoError(err)

	stored, err := s.repo.Get(s.ctx, actors.GetInput{ID: "goblin"})
	s.Require().NoError(err)
	s.Equal(5, stored.Actor.FindItem(potion.ID).Quantity)
}

func (s *RedisRepositoryTestSuite) TestCreateItemsRejectsDuplicateID() {
	_, err := s.repo.CreateItems(s.ctx, actors.CreateItemsInput{
		Actor: s.goblin,
		Items: []*entities.Item{{ID: "scimitar", Name: "Scimitar"}},
	})
	s.Require().Error(err)
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateItemsUnknownItem() {
	_, err := s.repo.UpdateItems(s.ctx, actors.UpdateItemsInput{
		Actor: s.goblin,
		Items: []*entities.Item{{ID: "nope"}},
	})
	s.True(errors.IsNotFound(err))
}
