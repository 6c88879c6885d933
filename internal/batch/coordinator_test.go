package batch_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/batch"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

type CoordinatorTestSuite struct {
	suite.Suite
	ctx    context.Context
	tokens []*entities.Token
}

func TestCoordinatorSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func (s *CoordinatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.tokens = []*entities.Token{
		{ID: "a", SceneID: "s", Actor: &entities.Actor{ID: "actor-a"}},
		{ID: "b", SceneID: "s"},
		{ID: "c", SceneID: "s", Actor: &entities.Actor{ID: "actor-c"}},
	}
}

func requireActor(_ context.Context, token *entities.Token) (*response.Envelope[string], error) {
	if !token.HasActor() {
		return response.FromError[string](errors.NotFound("No token selected or supplied")), nil
	}
	return response.OK(token.Actor.ID), nil
}

func (s *CoordinatorTestSuite) TestResolve() {
	s.Run("explicit tokens used as given", func() {
		got, err := batch.Resolve(s.tokens[:1], &session.Session{Selection: s.tokens})
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("explicit empty slice stays empty", func() {
		got, err := batch.Resolve([]*entities.Token{}, &session.Session{})
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("nil falls back to selection", func() {
		got, err := batch.Resolve(nil, &session.Session{Selection: s.tokens})
		s.Require().NoError(err)
		s.Equal(s.tokens, got)
	})

	s.Run("nil with empty selection fails", func() {
		_, err := batch.Resolve(nil, &session.Session{})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.True(errors.Is(err, batch.ErrNoSelection))
	})
}

func (s *CoordinatorTestSuite) TestPartialFailureDoesNotShortCircuit() {
	c, err := batch.NewCoordinator(nil)
	s.Require().NoError(err)

	result := batch.Run(s.ctx, c, s.tokens, requireActor)

	s.Require().Len(result, 3)
	s.True(result["Scene.s.Token.a"].Succeeded())
	s.Equal("actor-a", result["Scene.s.Token.a"].Data)
	s.True(result["Scene.s.Token.b"].Error)
	s.Equal(403, result["Scene.s.Token.b"].Code)
	s.True(result["Scene.s.Token.c"].Succeeded())
	s.Equal([]string{"Scene.s.Token.b"}, result.Failed())
}

func (s *CoordinatorTestSuite) TestErrorsAndPanicsBecomeEnvelopes() {
	result := batch.Run(s.ctx, nil, s.tokens, func(_ context.Context, token *entities.Token) (*response.Envelope[int], error) {
		switch token.ID {
		case "a":
			return nil, errors.Unavailable("table roller offline")
		case "b":
			panic("boom")
		default:
			return response.OK(1), nil
		}
	})

	s.Require().Len(result, 3)
	s.Equal(503, result["Scene.s.Token.a"].Code)
	s.Equal(errors.CodeUnavailable, result["Scene.s.Token.a"].Reason)
	s.Equal(500, result["Scene.s.Token.b"].Code)
	s.True(result["Scene.s.Token.c"].Succeeded())
}

func (s *CoordinatorTestSuite) TestEmptyInput() {
	result := batch.Run(s.ctx, nil, []*entities.Token{}, requireActor)
	s.NotNil(result)
	s.Empty(result)
}

func (s *CoordinatorTestSuite) TestDuplicateTokensRunOnce() {
	var calls atomic.Int32
	tokens := []*entities.Token{s.tokens[0], s.tokens[0]}

	result := batch.Run(s.ctx, nil, tokens, func(_ context.Context, _ *entities.Token) (*response.Envelope[bool], error) {
		calls.Add(1)
		return response.OK(true), nil
	})

	s.Len(result, 1)
	s.Equal(int32(1), calls.Load())
}

func (s *CoordinatorTestSuite) TestSequentialOrder() {
	var order []string
	batch.Run(s.ctx, nil, s.tokens, func(_ context.Context, token *entities.Token) (*response.Envelope[bool], error) {
		order = append(order, token.ID)
		return response.OK(true), nil
	})

	s.Equal([]string{"a", "b", "c"}, order)
}

func (s *CoordinatorTestSuite) TestParallelism() {
	c, err := batch.NewCoordinator(&batch.Config{Parallelism: 2})
	s.Require().NoError(err)

	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	result := batch.Run(s.ctx, c, s.tokens, func(_ context.Context, _ *entities.Token) (*response.Envelope[bool], error) {
		mu.Lock()
		running++
		if running > peak {
			peak = running
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
		return response.OK(true), nil
	})

	s.Len(result, 3)
	s.LessOrEqual(peak, 2)
}

func (s *CoordinatorTestSuite) TestInvalidConfig() {
	_, err := batch.NewCoordinator(&batch.Config{Parallelism: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CoordinatorTestSuite) TestTokensSharingAnActorNeverOverlap() {
	c, err := batch.NewCoordinator(&batch.Config{Parallelism: 4})
	s.Require().NoError(err)

	goblin := &entities.Actor{ID: "goblin"}
	orc := &entities.Actor{ID: "orc"}
	var tokens []*entities.Token
	for i := 0; i < 16; i++ {
		actor := goblin
		if i%4 == 0 {
			actor = orc
		}
		tokens = append(tokens, &entities.Token{
			ID: fmt.Sprintf("tok-%d", i), SceneID: "s", ActorID: actor.ID, Actor: actor,
		})
	}

	var (
		mu      sync.Mutex
		busy    = map[string]bool{}
		overlap bool
	)
	result := batch.Run(s.ctx, c, tokens, func(_ context.Context, token *entities.Token) (*response.Envelope[int], error) {
		mu.Lock()
		if busy[token.Actor.ID] {
			overlap = true
		}
		busy[token.Actor.ID] = true
		mu.Unlock()

		// no lock here; -race reports overlapping writes to a shared actor
		token.Actor.Items = append(token.Actor.Items, &entities.Item{ID: token.ID})
		time.Sleep(time.Millisecond)

		mu.Lock()
		busy[token.Actor.ID] = false
		mu.Unlock()
		return response.OK(len(token.Actor.Items)), nil
	})

	s.Len(result, 16)
	s.False(overlap)
	s.Len(goblin.Items, 12)
	s.Len(orc.Items, 4)
	s.Equal("tok-1", goblin.Items[0].ID)
	s.Equal("tok-15", goblin.Items[11].ID)
}

func (s *CoordinatorTestSuite) TestNilTokensAreSkipped() {
	tokens := []*entities.Token{nil, s.tokens[0], nil}
	result := batch.Run(s.ctx, nil, tokens, requireActor)

	s.Len(result, 1)
	s.True(result["Scene.s.Token.a"].Succeeded())
}
