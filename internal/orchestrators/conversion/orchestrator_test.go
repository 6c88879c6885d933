package conversion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	apperrors "github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	actorsmock "github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors/mock"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	tokensmock "github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens/mock"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/curation"
	curationmock "github.com/KirkDiggler/rpg-lootsheet/internal/services/curation/mock"
	"github.com/KirkDiggler/rpg-lootsheet/internal/sheets"
	sheetsmock "github.com/KirkDiggler/rpg-lootsheet/internal/sheets/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	actorRepo    *actorsmock.MockRepository
	tokenRepo    *tokensmock.MockRepository
	curator      *curationmock.MockCurator
	registry     *sheetsmock.MockRegistry
	orchestrator conversion.Service
	ctx          context.Context

	actor   *entities.Actor
	token   *entities.Token
	players []*entities.User
	curated []*entities.Item
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.actorRepo = actorsmock.NewMockRepository(s.ctrl)
	s.tokenRepo = tokensmock.NewMockRepository(s.ctrl)
	s.curator = curationmock.NewMockCurator(s.ctrl)
	s.registry = sheetsmock.NewMockRegistry(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = conversion.NewOrchestrator(&conversion.Config{
		ActorRepo: s.actorRepo,
		TokenRepo: s.tokenRepo,
		Curator:   s.curator,
		Registry:  s.registry,
	})
	s.Require().NoError(err)

	s.actor = &entities.Actor{
		ID:   "goblin",
		Name: "Goblin",
		Type: "npc",
		Items: []*entities.Item{
			{ID: "i1", Name: "Scimitar", Type: "weapon", Quantity: 1},
			{ID: "i2", Name: "Nimble Escape", Type: "feat"},
		},
	}
	s.token = &entities.Token{
		ID:          "tok1",
		SceneID:     "cave",
		ActorID:     "goblin",
		Actor:       s.actor,
		Vision:      true,
		Permissions: entities.PermissionMap{"bob": entities.PermissionOwner},
	}
	s.players = []*entities.User{{ID: "alice"}, {ID: "carol"}}
	s.curated = []*entities.Item{{ID: "i1", Name: "Scimitar", Type: "weapon", Quantity: 1}}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectedTokenUpdate(overlay string) tokens.UpdateInput {
	vision := false
	return tokens.UpdateInput{
		Token:         s.token,
		OverlayEffect: &overlay,
		Vision:        &vision,
		Permissions: entities.PermissionMap{
			"bob":   entities.PermissionOwner,
			"alice": entities.PermissionObserver,
			"carol": entities.PermissionObserver,
		},
	}
}

func (s *OrchestratorTestSuite) TestConvertOpenSheetRunsStepsInOrder() {
	chance := 0.2
	sheet := &sheets.Sheet{AppID: 7, ActorID: "goblin", State: sheets.StateOpen}

	gomock.InOrder(
		s.registry.EXPECT().State("goblin").Return(sheets.StateOpen),
		s.registry.EXPECT().Close(gomock.Any(), "goblin").Return(nil),
		s.curator.EXPECT().Curate(gomock.Any(), &curation.CurateInput{
			Items:   s.actor.Items,
			Options: curation.Options{ChanceOfDamagedItems: &chance},
		}).Return(&curation.CurateOutput{Items: s.curated}, nil),
		s.actorRepo.EXPECT().DeleteItems(gomock.Any(), actors.DeleteItemsInput{
			Actor:   s.actor,
			ItemIDs: []string{"i1", "i2"},
		}).Return(&actors.DeleteItemsOutput{Deleted: 2}, nil),
		s.actorRepo.EXPECT().Update(gomock.Any(), actors.UpdateInput{
			Actor: s.actor,
			Items: s.curated,
			Flags: &entities.SheetFlags{
				SheetClass:        entities.SheetClassLootNPC,
				LootSheetType:     entities.LootSheetTypeLoot,
				PlayersPermission: entities.PermissionObserver,
			},
		}).Return(&actors.UpdateOutput{Actor: s.actor}, nil),
		s.tokenRepo.EXPECT().Update(gomock.Any(), s.expectedTokenUpdate(entities.OverlayChest)).
			Return(&tokens.UpdateOutput{Token: s.token}, nil),
		s.registry.EXPECT().Evict("goblin"),
		s.registry.EXPECT().Render(gomock.Any(), s.actor, true).Return(sheet, nil),
	)

	out, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{
		Token:   s.token,
		Options: curation.Options{ChanceOfDamagedItems: &chance},
		Players: s.players,
	})
	s.Require().NoError(err)
	s.Equal(sheets.StateOpen, out.PriorState)
	s.Same(sheet, out.Sheet)
	s.Same(s.token, out.Token)

	// the token's own map is left for the repository to replace
	s.Len(s.token.Permissions, 1)
}

func (s *OrchestratorTestSuite) TestConvertClosedSheetDoesNotRender() {
	gomock.InOrder(
		s.registry.EXPECT().State("goblin").Return(sheets.StateClosedNeverOpened),
		s.curator.EXPECT().Curate(gomock.Any(), gomock.Any()).Return(&curation.CurateOutput{}, nil),
		s.actorRepo.EXPECT().DeleteItems(gomock.Any(), gomock.Any()).Return(&actors.DeleteItemsOutput{}, nil),
		s.actorRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input actors.UpdateInput) (*actors.UpdateOutput, error) {
				s.NotNil(input.Items, "an empty inventory still replaces the old one")
				s.Empty(input.Items)
				return &actors.UpdateOutput{Actor: input.Actor}, nil
			}),
		s.tokenRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(&tokens.UpdateOutput{Token: s.token}, nil),
		s.registry.EXPECT().Evict("goblin"),
	)

	out, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{Token: s.token})
	s.Require().NoError(err)
	s.Nil(out.Sheet)
}

func (s *OrchestratorTestSuite) TestConvertMerchant() {
	s.registry.EXPECT().State("goblin").Return(sheets.StateClosedWasOpen)
	s.curator.EXPECT().Curate(gomock.Any(), gomock.Any()).Return(&curation.CurateOutput{Items: s.curated}, nil)
	s.actorRepo.EXPECT().DeleteItems(gomock.Any(), gomock.Any()).Return(&actors.DeleteItemsOutput{}, nil)
	s.actorRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input actors.UpdateInput) (*actors.UpdateOutput, error) {
			s.Equal(entities.LootSheetTypeMerchant, input.Flags.LootSheetType)
			return &actors.UpdateOutput{Actor: input.Actor}, nil
		})
	s.tokenRepo.EXPECT().Update(gomock.Any(), s.expectedTokenUpdate(entities.OverlayCoins)).
		Return(&tokens.UpdateOutput{Token: s.token}, nil)
	s.registry.EXPECT().Evict("goblin")

	_, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{
		Token:   s.token,
		Kind:    "MERCHANT",
		Players: s.players,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestMissingTokenOrActor() {
	_, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{})
	s.True(apperrors.IsNotFound(err))
	s.Equal(conversion.NoTokenMessage, apperrors.GetMessage(err))

	s.token.Actor = nil
	_, err = s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{Token: s.token})
	s.True(apperrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUnknownKindMutatesNothing() {
	_, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{Token: s.token, Kind: "vault"})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFailureStopsLaterSteps() {
	s.registry.EXPECT().State("goblin").Return(sheets.StateOpen)
	s.registry.EXPECT().Close(gomock.Any(), "goblin").Return(nil)
	s.curator.EXPECT().Curate(gomock.Any(), gomock.Any()).Return(&curation.CurateOutput{Items: s.curated}, nil)
	s.actorRepo.EXPECT().DeleteItems(gomock.Any(), gomock.Any()).Return(&actors.DeleteItemsOutput{}, nil)
	s.actorRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{Token: s.token})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to update actor goblin")
}

func (s *OrchestratorTestSuite) TestCurationFailure() {
	s.registry.EXPECT().State("goblin").Return(sheets.StateClosedNeverOpened)
	s.curator.EXPECT().Curate(gomock.Any(), gomock.Any()).Return(nil, apperrors.InvalidArgument("bad chance"))

	_, err := s.orchestrator.ConvertToken(s.ctx, &conversion.ConvertTokenInput{Token: s.token})
	s.True(apperrors.IsInvalidArgument(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewOrchestratorValidatesConfig(t *testing.T) {
	_, err := conversion.NewOrchestrator(&conversion.Config{})
	if !apperrors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
