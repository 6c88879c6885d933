package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-lootsheet/internal/auth"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

type AuthTestSuite struct {
	suite.Suite
	now    time.Time
	issuer *auth.Issuer
}

func (s *AuthTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var err error
	s.issuer, err = auth.NewIssuer(&auth.Config{
		Secret: "test-secret",
		TTL:    time.Hour,
		Now:    func() time.Time { return s.now },
	})
	s.Require().NoError(err)
}

func (s *AuthTestSuite) TestIssueAndParse() {
	raw, err := s.issuer.Issue("gm", true)
	s.Require().NoError(err)

	claims, err := s.issuer.ParseBearer("Bearer " + raw)
	s.Require().NoError(err)
	s.Equal("gm", claims.UserID)
	s.True(claims.GM)
}

func (s *AuthTestSuite) TestExpiredToken() {
	raw, err := s.issuer.Issue("alice", false)
	s.Require().NoError(err)

	s.now = s.now.Add(2 * time.Hour)
	_, err = s.issuer.Parse(raw)
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthTestSuite) TestWrongSecret() {
	other, err := auth.NewIssuer(&auth.Config{Secret: "other"})
	s.Require().NoError(err)
	raw, err := other.Issue("alice", true)
	s.Require().NoError(err)

	_, err = s.issuer.Parse(raw)
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthTestSuite) TestMissingBearer() {
	_, err := s.issuer.ParseBearer("")
	s.True(errors.IsUnauthenticated(err))
	_, err = s.issuer.ParseBearer("Basic abc")
	s.True(errors.IsUnauthenticated(err))
}

func (s *AuthTestSuite) TestConfigRequiresSecret() {
	_, err := auth.NewIssuer(&auth.Config{})
	s.Error(err)
}

func (s *AuthTestSuite) TestUnaryInterceptor() {
	raw, err := s.issuer.Issue("alice", false)
	s.Require().NoError(err)
	intercept := s.issuer.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/lootsheet.api.v1alpha1.LootSheetService/AddLoot"}

	var seen *auth.Claims
	handler := func(ctx context.Context, _ any) (any, error) {
		seen, err = auth.FromContext(ctx)
		return "ok", err
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(auth.AuthorizationHeader, "Bearer "+raw))
	out, err := intercept(ctx, nil, info, handler)
	s.Require().NoError(err)
	s.Equal("ok", out)
	s.Equal("alice", seen.UserID)

	_, err = intercept(context.Background(), nil, info, handler)
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *AuthTestSuite) TestUnaryInterceptorSkipsHealth() {
	intercept := s.issuer.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	out, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "serving", nil
	})
	s.Require().NoError(err)
	s.Equal("serving", out)
}

func (s *AuthTestSuite) TestGinMiddleware() {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/me", s.issuer.GinMiddleware(), func(c *gin.Context) {
		claims, err := auth.FromContext(c.Request.Context())
		s.Require().NoError(err)
		c.String(http.StatusOK, claims.UserID)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)

	raw, err := s.issuer.Issue("bob", false)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("bob", rec.Body.String())
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
