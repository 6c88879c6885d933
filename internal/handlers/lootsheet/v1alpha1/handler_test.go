package v1alpha1_test

import (
	"context"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-lootsheet/internal/auth"
	"github.com/KirkDiggler/rpg-lootsheet/internal/batch"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/handlers/lootsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/lootsheet"
	lootsheetmock "github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/lootsheet/mock"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/users"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/world"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
	"github.com/KirkDiggler/rpg-lootsheet/internal/testutils"
)

type tokenBatchReply struct {
	Result response.Envelope[response.Batch[*entities.Token]] `json:"result"`
}

type HandlerTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	service *lootsheetmock.MockService
	issuer  *auth.Issuer
	server  *grpc.Server
	conn    *grpc.ClientConn
	client  *v1alpha1.Client
	cleanup func()
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.service = lootsheetmock.NewMockService(s.ctrl)

	redisClient, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	actorRepo, err := actors.NewRedisRepository(&actors.Config{Client: redisClient})
	s.Require().NoError(err)
	tokenRepo, err := tokens.NewRedisRepository(&tokens.Config{Client: redisClient})
	s.Require().NoError(err)
	userRepo, err := users.NewRedisRepository(&users.Config{Client: redisClient})
	s.Require().NoError(err)

	s.Require().NoError(userRepo.Put(s.ctx, &entities.User{ID: "gm", Name: "Dungeon Master", IsGM: true}))
	s.Require().NoError(userRepo.Put(s.ctx, &entities.User{ID: "alice", Name: "Alice"}))
	_, err = actorRepo.Put(s.ctx, actors.PutInput{Actor: &entities.Actor{ID: "goblin", Name: "Goblin", Type: "npc"}})
	s.Require().NoError(err)
	_, err = tokenRepo.Put(s.ctx, tokens.PutInput{Token: &entities.Token{ID: "g1", SceneID: "cave", ActorID: "goblin"}})
	s.Require().NoError(err)

	resolver, err := world.NewResolver(&world.Config{ActorRepo: actorRepo, TokenRepo: tokenRepo, UserRepo: userRepo})
	s.Require().NoError(err)
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: s.service, Resolver: resolver})
	s.Require().NoError(err)

	s.issuer, err = auth.NewIssuer(&auth.Config{Secret: "handler-test"})
	s.Require().NoError(err)

	listener := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer(grpc.ChainUnaryInterceptor(s.issuer.UnaryServerInterceptor()))
	v1alpha1.RegisterLootSheetServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	s.client = v1alpha1.NewClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.cleanup()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) as(userID string, gm bool) context.Context {
	raw, err := s.issuer.Issue(userID, gm)
	s.Require().NoError(err)
	return auth.OutgoingContext(s.ctx, raw)
}

func (s *HandlerTestSuite) TestConvertTokensResolvesRefs() {
	s.service.EXPECT().ConvertTokens(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sess *session.Session, input *lootsheet.ConvertTokensInput) *response.Envelope[response.Batch[*entities.Token]] {
			s.True(sess.IsGM())
			s.Require().Len(input.Tokens, 1)
			token := input.Tokens[0]
			s.Require().True(token.HasActor())
			s.Equal("goblin", token.Actor.ID)
			s.Equal("merchant", input.Kind)
			return response.OK(response.Batch[*entities.Token]{token.UUID(): response.OK(token)})
		})

	var reply tokenBatchReply
	err := s.client.Call(s.as("gm", true), v1alpha1.MethodConvertTokens, map[string]any{
		"tokens": []world.TokenRef{{SceneID: "cave", ID: "g1"}},
		"kind":   "merchant",
	}, &reply)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, reply.Result.Code)
	s.Equal("g1", reply.Result.Data["Scene.cave.Token.g1"].Data.ID)
}

func (s *HandlerTestSuite) TestTokenWithoutGMClaimIsNotGM() {
	s.service.EXPECT().MakeObservable(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sess *session.Session, _ *lootsheet.MakeObservableInput) *response.Envelope[response.Batch[entities.PermissionMap]] {
			s.False(sess.IsGM())
			return response.Fail[response.Batch[entities.PermissionMap]](http.StatusForbidden, errors.CodePermissionDenied, lootsheet.MsgPrivilegeDenied)
		})

	var reply map[string]any
	err := s.client.Call(s.as("gm", false), v1alpha1.MethodMakeObservable, nil, &reply)
	s.Require().NoError(err)
	result := reply["result"].(map[string]any)
	s.Equal(float64(http.StatusForbidden), result["code"])
	s.Equal(string(errors.CodePermissionDenied), result["reason"])
}

func (s *HandlerTestSuite) TestMissingTokenIsUnauthenticated() {
	err := s.client.Call(s.ctx, v1alpha1.MethodListCustomRules, nil, nil)
	s.True(errors.IsUnauthenticated(err))
}

func (s *HandlerTestSuite) TestUnknownUserIsUnauthenticated() {
	err := s.client.Call(s.as("mallory", true), v1alpha1.MethodListCustomRules, nil, nil)
	s.True(errors.IsUnauthenticated(err))
}

func (s *HandlerTestSuite) TestAddLootWithoutSelectionFails() {
	s.service.EXPECT().AddLootToSelectedToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, batch.ErrNoSelection)

	err := s.client.Call(s.as("gm", true), v1alpha1.MethodAddLoot, map[string]any{"table_id": "armory"}, nil)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(batch.NoSelectionMessage, errors.GetMessage(err))
}

func (s *HandlerTestSuite) TestUnknownPlayerIsInvalid() {
	err := s.client.Call(s.as("gm", true), v1alpha1.MethodMakeObservable, map[string]any{
		"players": []string{"nobody"},
	}, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestUpdatePermissionParsesLevel() {
	s.service.EXPECT().UpdatePermissionForPlayers(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *session.Session, input *lootsheet.UpdatePermissionForPlayersInput) *response.Envelope[response.Batch[entities.PermissionMap]] {
			s.Require().NotNil(input.Level)
			s.Equal(entities.PermissionLimited, *input.Level)
			s.Require().Len(input.Players, 1)
			s.Equal("alice", input.Players[0].ID)
			return response.OK(response.Batch[entities.PermissionMap]{})
		})

	err := s.client.Call(s.as("gm", true), v1alpha1.MethodUpdatePermissionForPlayers, map[string]any{
		"players": []string{"alice"},
		"level":   "limited",
	}, nil)
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestListCustomRules() {
	s.service.EXPECT().GetRegisteredCustomRules(gomock.Any(), gomock.Any()).
		Return(entities.RuleSet{"r1": {ID: "r1", TableID: "armory"}}, nil)

	var reply struct {
		Result entities.RuleSet `json:"result"`
	}
	err := s.client.Call(s.as("alice", false), v1alpha1.MethodListCustomRules, nil, &reply)
	s.Require().NoError(err)
	s.Equal("armory", reply.Result["r1"].TableID)
}

func (s *HandlerTestSuite) TestMethodsAreSorted() {
	s.Equal([]string{
		v1alpha1.MethodAddCustomRule,
		v1alpha1.MethodAddLoot,
		v1alpha1.MethodConvertToken,
		v1alpha1.MethodConvertTokens,
		v1alpha1.MethodGetPermissionForPlayers,
		v1alpha1.MethodListCustomRules,
		v1alpha1.MethodMakeObservable,
		v1alpha1.MethodPopulateToken,
		v1alpha1.MethodSwitchPopulatorState,
		v1alpha1.MethodUpdatePermissionForPlayers,
	}, v1alpha1.Methods())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
