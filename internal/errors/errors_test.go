package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "No token selected or supplied",
			expected: "NOT_FOUND: No token selected or supplied",
		},
		{
			name:     "precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "No tokens given or selected",
			expected: "FAILED_PRECONDITION: No tokens given or selected",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("actor not found").
		WithMeta("actor_id", "goblin-1").
		WithMeta("token_id", "tok-1")

	s.Equal("goblin-1", err.Meta["actor_id"])
	s.Equal("tok-1", err.Meta["token_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis unavailable")
	wrapped := errors.Wrap(baseErr, "failed to load actor")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load actor", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "token not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("token not found", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.True(errors.Is(wrapped, errors.NotFound("anything")))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "srd unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapContextErrors() {
	s.Equal(errors.CodeCanceled, errors.Wrap(context.Canceled, "load token").Code)
	s.Equal(errors.CodeDeadlineExceeded,
		errors.Wrapf(fmt.Errorf("redis: %w", context.DeadlineExceeded), "load actor %s", "a1").Code)
}

func (s *ErrorsTestSuite) TestWrapKeepsMeta() {
	base := errors.NotFound("no actor").WithMeta("token_id", "tok-1")
	s.Equal("tok-1", errors.Wrap(base, "convert").Meta["token_id"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructors() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"PermissionDenied", func() *errors.Error { return errors.PermissionDenied("test") }, errors.CodePermissionDenied},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"Unauthenticated", func() *errors.Error { return errors.Unauthenticated("test") }, errors.CodeUnauthenticated},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Equal(tc.code, err.Code)
			s.Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFound := errors.NotFoundf("token %s not found", "tok-9")
	wrapped := errors.Wrap(notFound, "wrapped")

	s.True(errors.IsNotFound(wrapped))
	s.False(errors.IsPermissionDenied(wrapped))
	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("wrapped", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Nil(errors.GetMeta(fmt.Errorf("standard error")))
	s.False(errors.HasCode(nil, errors.CodeOK))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodePermissionDenied, 403},
		{errors.CodeFailedPrecondition, 412},
		{errors.CodeUnauthenticated, 401},
		{errors.CodeInternal, 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.PermissionDenied("GM only").WithMeta("user_id", "player-1")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.PermissionDenied, st.Code())
	s.Equal("GM only", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodePermissionDenied, errors.GetCode(back))
	s.Equal("player-1", errors.GetMeta(back)["user_id"])

	plain := errors.FromGRPCError(status.Error(codes.InvalidArgument, "bad input"))
	s.True(errors.IsInvalidArgument(plain))

	s.True(errors.IsInternal(errors.FromGRPCError(status.Error(codes.DataLoss, "lost"))))
	s.Equal(codes.Canceled, status.Code(errors.ToGRPCError(context.Canceled)))
}

func (s *ErrorsTestSuite) TestUnknownCodeMapsToInternal() {
	code := errors.Code("SOMETHING_ELSE")
	s.Equal(500, code.HTTPStatus())
	s.Equal(codes.Internal, code.GRPCCode())
}
