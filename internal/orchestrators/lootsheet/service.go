// Package lootsheet is the public surface of the loot sheet service. Every
// operation takes the caller's session; mutating operations require a game
// master and report an explicit permission-denied result otherwise.
package lootsheet

//go:generate mockgen -destination=mock/mock_service.go -package=lootsheetmock github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/lootsheet Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/rpg-lootsheet/internal/batch"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/populator"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

// Messages shown to callers
const (
	MsgPrivilegeDenied = "Only a game master can do that"
	MsgLootStarted     = "Loot generation started."
	MsgLootComplete    = "Loot generation complete."
)

// Service is the loot sheet API
type Service interface {
	ConvertToken(ctx context.Context, sess *session.Session, input *ConvertTokenInput) *response.Envelope[*entities.Token]
	ConvertTokens(ctx context.Context, sess *session.Session, input *ConvertTokensInput) *response.Envelope[response.Batch[*entities.Token]]
	AddLootToSelectedToken(ctx context.Context, sess *session.Session, input *AddLootInput) (*response.Envelope[response.Batch[*loot.Summary]], error)
	MakeObservable(ctx context.Context, sess *session.Session, input *MakeObservableInput) *response.Envelope[response.Batch[entities.PermissionMap]]
	GetPermissionForPlayers(ctx context.Context, sess *session.Session, input *GetPermissionForPlayersInput) *response.Envelope[map[string]entities.PermissionLevel]
	UpdatePermissionForPlayers(ctx context.Context, sess *session.Session, input *UpdatePermissionForPlayersInput) *response.Envelope[response.Batch[entities.PermissionMap]]
	GetRegisteredCustomRules(ctx context.Context, sess *session.Session) (entities.RuleSet, error)
	AddCustomRule(ctx context.Context, sess *session.Session, rule *entities.Rule) error
	SwitchPopulatorState(ctx context.Context, sess *session.Session, enabled bool) error
	PopulateTokenWithOptions(ctx context.Context, sess *session.Session, input *PopulateTokenInput) (*loot.Summary, error)
}

// Config holds the dependencies for the loot sheet service
type Config struct {
	Conversion  conversion.Service
	Loot        loot.Service
	Populator   populator.Service
	TokenRepo   tokens.Repository
	Coordinator *batch.Coordinator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.Conversion == nil {
		vb.RequiredField("Conversion")
	}
	if c.Loot == nil {
		vb.RequiredField("Loot")
	}
	if c.Populator == nil {
		vb.RequiredField("Populator")
	}
	if c.TokenRepo == nil {
		vb.RequiredField("TokenRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	conversion  conversion.Service
	loot        loot.Service
	populator   populator.Service
	tokenRepo   tokens.Repository
	coordinator *batch.Coordinator
}

// NewOrchestrator creates the loot sheet service
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	coordinator := cfg.Coordinator
	if coordinator == nil {
		var err error
		coordinator, err = batch.NewCoordinator(nil)
		if err != nil {
			return nil, err
		}
	}

	return &orchestrator{
		conversion:  cfg.Conversion,
		loot:        cfg.Loot,
		populator:   cfg.Populator,
		tokenRepo:   cfg.TokenRepo,
		coordinator: coordinator,
	}, nil
}

func denied[T any](sess *session.Session, operation string) *response.Envelope[T] {
	slog.Warn("Privilege denied", "operation", operation, "user_id", sess.UserID())
	return response.Fail[T](http.StatusForbidden, errors.CodePermissionDenied, MsgPrivilegeDenied)
}

func deniedError(sess *session.Session, operation string) error {
	slog.Warn("Privilege denied", "operation", operation, "user_id", sess.UserID())
	return errors.PermissionDenied(MsgPrivilegeDenied)
}

// selection resolves a batch token list. Unlike loot generation, an empty
// selection here is an empty batch rather than a failure.
func selection(tokens []*entities.Token, sess *session.Session) []*entities.Token {
	resolved, err := batch.Resolve(tokens, sess)
	if err != nil {
		return []*entities.Token{}
	}
	return resolved
}

func players(given []*entities.User, sess *session.Session) []*entities.User {
	if given != nil {
		return given
	}
	return sess.Players()
}

// verbose logs a response when the caller asked for it
func verbose[T any](enabled bool, operation string, env *response.Envelope[T]) {
	if !enabled {
		return
	}
	slog.Info("Loot sheet response",
		"operation", operation,
		"code", env.Code,
		"error", env.Error,
		"msg", env.Msg,
		"data", env.Data)
}
