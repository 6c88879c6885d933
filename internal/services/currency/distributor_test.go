package currency_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	apperrors "github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	actorsmock "github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors/mock"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	tokensmock "github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens/mock"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/currency"
)

type DistributorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	actorRepo   *actorsmock.MockRepository
	tokenRepo   *tokensmock.MockRepository
	distributor currency.Distributor
	ctx         context.Context
	token       *entities.Token
}

func (s *DistributorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.actorRepo = actorsmock.NewMockRepository(s.ctrl)
	s.tokenRepo = tokensmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.distributor, err = currency.NewDistributor(&currency.Config{
		ActorRepo: s.actorRepo,
		TokenRepo: s.tokenRepo,
	})
	s.Require().NoError(err)

	s.token = &entities.Token{
		ID:       "tok1",
		SceneID:  "scene1",
		Currency: entities.Currency{CP: 1},
		Actor:    &entities.Actor{ID: "goblin", Currency: entities.Currency{GP: 2}},
	}
}

func (s *DistributorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DistributorTestSuite) TestAddsToActor() {
	expected := entities.Currency{GP: 5, SP: 4}
	s.actorRepo.EXPECT().
		Update(s.ctx, actors.UpdateInput{Actor: s.token.Actor, Currency: &expected}).
		Return(&actors.UpdateOutput{Actor: s.token.Actor}, nil)

	out, err := s.distributor.AddCurrency(s.ctx, &currency.AddCurrencyInput{
		Token:    s.token,
		Currency: entities.Currency{GP: 3, SP: 4},
	})
	s.Require().NoError(err)
	s.Equal(expected, out.Currency)
}

func (s *DistributorTestSuite) TestAddsToToken() {
	expected := entities.Currency{CP: 11}
	s.tokenRepo.EXPECT().
		Update(s.ctx, tokens.UpdateInput{Token: s.token, Currency: &expected}).
		Return(&tokens.UpdateOutput{Token: s.token}, nil)

	out, err := s.distributor.AddCurrency(s.ctx, &currency.AddCurrencyInput{
		Token:        s.token,
		Currency:     entities.Currency{CP: 10},
		IsTokenActor: true,
	})
	s.Require().NoError(err)
	s.Equal(expected, out.Currency)
}

func (s *DistributorTestSuite) TestEmptyPurseWritesNothing() {
	out, err := s.distributor.AddCurrency(s.ctx, &currency.AddCurrencyInput{Token: s.token})
	s.Require().NoError(err)
	s.Equal(entities.Currency{GP: 2}, out.Currency)
}

func (s *DistributorTestSuite) TestRepositoryFailure() {
	s.actorRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.distributor.AddCurrency(s.ctx, &currency.AddCurrencyInput{
		Token:    s.token,
		Currency: entities.Currency{PP: 1},
	})
	s.Require().Error(err)
	s.True(apperrors.IsInternal(err))
}

func (s *DistributorTestSuite) TestActorRequired() {
	s.token.Actor = nil
	_, err := s.distributor.AddCurrency(s.ctx, &currency.AddCurrencyInput{
		Token:    s.token,
		Currency: entities.Currency{PP: 1},
	})
	s.True(apperrors.IsNotFound(err))
}

func TestDistributorSuite(t *testing.T) {
	suite.Run(t, new(DistributorTestSuite))
}
