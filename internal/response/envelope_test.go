package response_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
)

type EnvelopeTestSuite struct {
	suite.Suite
}

func TestEnvelopeSuite(t *testing.T) {
	suite.Run(t, new(EnvelopeTestSuite))
}

func (s *EnvelopeTestSuite) TestOK() {
	env := response.OK("token-1")

	s.Equal(http.StatusOK, env.Code)
	s.Equal(response.MsgSuccess, env.Msg)
	s.Equal("token-1", env.Data)
	s.False(env.Error)
	s.True(env.Succeeded())
	s.NoError(env.Err())
}

func (s *EnvelopeTestSuite) TestFromError() {
	testCases := []struct {
		name     string
		err      error
		code     int
		reason   errors.Code
		expected string
	}{
		{
			name:     "missing token",
			err:      errors.NotFound("No token selected or supplied"),
			code:     http.StatusForbidden,
			reason:   errors.CodeNotFound,
			expected: "No token selected or supplied",
		},
		{
			name:     "not a game master",
			err:      errors.PermissionDenied("game master privilege required"),
			code:     http.StatusForbidden,
			reason:   errors.CodePermissionDenied,
			expected: "game master privilege required",
		},
		{
			name:     "collaborator failure",
			err:      fmt.Errorf("table exploded"),
			code:     http.StatusInternalServerError,
			reason:   errors.CodeInternal,
			expected: "table exploded",
		},
		{
			name:     "empty selection",
			err:      errors.FailedPrecondition("No tokens given or selected"),
			code:     http.StatusPreconditionFailed,
			reason:   errors.CodeFailedPrecondition,
			expected: "No tokens given or selected",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			env := response.FromError[string](tc.err)

			s.True(env.Error)
			s.Equal(tc.code, env.Code)
			s.Equal(tc.reason, env.Reason)
			s.Equal(tc.expected, env.Msg)
			s.Empty(env.Data)
			s.Equal(tc.reason, errors.GetCode(env.Err()))
		})
	}
}

func (s *EnvelopeTestSuite) TestFailNeverCarries2xx() {
	env := response.Fail[int](http.StatusOK, errors.CodeInternal, "broken")

	s.True(env.Error)
	s.Equal(http.StatusInternalServerError, env.Code)
}

func (s *EnvelopeTestSuite) TestBatchFailed() {
	batch := response.Batch[string]{
		"Scene.s.Token.c": response.OK("c"),
		"Scene.s.Token.b": response.FromError[string](errors.NotFound("No token selected or supplied")),
		"Scene.s.Token.a": response.OK("a"),
	}

	s.Equal([]string{"Scene.s.Token.b"}, batch.Failed())
	s.Equal([]string{"Scene.s.Token.a", "Scene.s.Token.b", "Scene.s.Token.c"}, batch.Keys())
}
