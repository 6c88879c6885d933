package conversion_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/curation"
	"github.com/KirkDiggler/rpg-lootsheet/internal/sheets"
	"github.com/KirkDiggler/rpg-lootsheet/internal/testutils"
)

// RedisConversionTestSuite runs conversions against real repositories
type RedisConversionTestSuite struct {
	suite.Suite
	ctx          context.Context
	cleanup      func()
	actorRepo    actors.Repository
	tokenRepo    tokens.Repository
	registry     sheets.Registry
	orchestrator conversion.Service
	token        *entities.Token
}

func (s *RedisConversionTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.actorRepo, err = actors.NewRedisRepository(&actors.Config{Client: client})
	s.Require().NoError(err)
	s.tokenRepo, err = tokens.NewRedisRepository(&tokens.Config{Client: client})
	s.Require().NoError(err)
	curator, err := curation.NewCurator(&curation.Config{})
	s.Require().NoError(err)
	s.registry = sheets.NewRegistry(&sheets.Config{EventBus: events.NewBus()})

	s.orchestrator, err = conversion.NewOrchestrator(&conversion.Config{
		ActorRepo: s.actorRepo,
		TokenRepo: s.tokenRepo,
		Curator:   curator,
		Registry:  s.registry,
	})
	s.Require().NoError(err)

	actor := &entities.Actor{
		ID:   "bandit",
		Name: "Bandit",
		Type: "npc",
		Items: []*entities.Item{
			{ID: "i1", Name: "Light Crossbow", Type: "weapon", Quantity: 1},
			{ID: "i2", Name: "Bolts", Type: "consumable", Quantity: 20},
			{ID: "i3", Name: "Multiattack", Type: "feat"},
		},
	}
	_, err = s.actorRepo.Put(s.ctx, actors.PutInput{Actor: actor})
	s.Require().NoError(err)

	s.token = &entities.Token{ID: "b1", SceneID: "road", ActorID: "bandit", Actor: actor, Vision: true}
	_, err = s.tokenRepo.Put(s.ctx, tokens.PutInput{Token: s.token})
	s.Require().NoError(err)
}

func (s *RedisConversionTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisConversionTestSuite) convert() *conversion.ConvertTokenOutput {
	out, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{
		Token:   s.token,
		Players: []*entities.User{{ID: "alice"}},
	})
	s.Require().NoError(err)
	return out
}

func (s *RedisConversionTestSuite) stored() (*entities.Actor, *entities.Token) {
	a, err := s.actorRepo.Get(s.ctx, actors.GetInput{ID: "bandit"})
	s.Require().NoError(err)
	t, err := s.tokenRepo.Get(s.ctx, tokens.GetInput{SceneID: "road", ID: "b1"})
	s.Require().NoError(err)
	return a.Actor, t.Token
}

func (s *RedisConversionTestSuite) TestConversionIsIdempotent() {
	_, err := s.registry.Render(s.ctx, s.token.Actor, false)
	s.Require().NoError(err)

	first := s.convert()
	s.Equal(sheets.StateOpen, first.PriorState)
	s.Require().NotNil(first.Sheet)
	s.Equal(entities.SheetClassLootNPC, first.Sheet.SheetClass, "the new binding uses the loot sheet")

	actor1, token1 := s.stored()
	s.Equal([]string{"i1", "i2"}, actor1.ItemIDs())
	s.True(actor1.IsLootable())
	s.Equal(entities.PermissionObserver, actor1.Flags.PlayersPermission)
	s.Equal(entities.OverlayChest, token1.OverlayEffect)
	s.False(token1.Vision)
	s.Equal(entities.PermissionObserver, token1.Permissions["alice"])

	s.convert()
	actor2, token2 := s.stored()
	s.Equal(actor1, actor2)
	s.Equal(token1, token2)
	s.Equal(sheets.StateOpen, s.registry.State("bandit"))
}

func TestRedisConversionSuite(t *testing.T) {
	suite.Run(t, new(RedisConversionTestSuite))
}
