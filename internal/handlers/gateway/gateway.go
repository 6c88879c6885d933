// Package gateway exposes the loot sheet service as JSON over HTTP.
// Every method is served at POST /v1/<method> and answers with the
// envelope code as its HTTP status.
package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-lootsheet/internal/auth"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/handlers/lootsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
)

// Caller runs a loot sheet method, implemented by v1alpha1.Handler
type Caller interface {
	Call(ctx context.Context, method string, body []byte) (*v1alpha1.Reply, error)
}

// Config holds the gateway dependencies
type Config struct {
	Handler Caller
	Issuer  *auth.Issuer
	// Addr is the listen address, e.g. ":8080"
	Addr string
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Handler == nil {
		vb.RequiredField("Handler")
	}
	if c.Issuer == nil {
		vb.RequiredField("Issuer")
	}
	return vb.Build()
}

// Server is the HTTP gateway
type Server struct {
	engine *gin.Engine
	srv    *http.Server
}

// NewServer builds the routes
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), accessLog())
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/v1", cfg.Issuer.GinMiddleware())
	v1.POST("/:method", call(cfg.Handler))

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// Handler returns the routes for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until Shutdown; it returns http.ErrServerClosed then
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func call(handler Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			fail(c, errors.InvalidArgumentf("failed to read body: %v", err))
			return
		}

		reply, err := handler.Call(c.Request.Context(), c.Param("method"), body)
		if err != nil {
			fail(c, err)
			return
		}

		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, reply)
	}
}

// fail answers with an error envelope for errors raised outside an operation
func fail(c *gin.Context, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeOK {
		code = errors.CodeInternal
	}
	status := code.HTTPStatus()
	c.JSON(status, &v1alpha1.Reply{Result: response.Fail[any](status, code, errors.GetMessage(err))})
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
