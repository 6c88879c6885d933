// Package v1alpha1 serves the loot sheet API over gRPC. Requests and
// replies are JSON objects carried as google.protobuf.Struct.
package v1alpha1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-lootsheet/internal/auth"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/notify"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/lootsheet"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/world"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

// Method names of the loot sheet service
const (
	MethodConvertToken               = "ConvertToken"
	MethodConvertTokens              = "ConvertTokens"
	MethodAddLoot                    = "AddLoot"
	MethodMakeObservable             = "MakeObservable"
	MethodGetPermissionForPlayers    = "GetPermissionForPlayers"
	MethodUpdatePermissionForPlayers = "UpdatePermissionForPlayers"
	MethodListCustomRules            = "ListCustomRules"
	MethodAddCustomRule              = "AddCustomRule"
	MethodSwitchPopulatorState       = "SwitchPopulatorState"
	MethodPopulateToken              = "PopulateToken"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service  lootsheet.Service
	Resolver *world.Resolver
	// EventBus also receives caller notifications when set
	EventBus events.EventBus
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	return vb.Build()
}

// Handler turns transport requests into loot sheet calls
type Handler struct {
	service  lootsheet.Service
	resolver *world.Resolver
	bus      events.EventBus
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{
		service:  cfg.Service,
		resolver: cfg.Resolver,
		bus:      cfg.EventBus,
	}, nil
}

type methodFunc func(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error)

var methods = map[string]methodFunc{
	MethodConvertToken:               convertToken,
	MethodConvertTokens:              convertTokens,
	MethodAddLoot:                    addLoot,
	MethodMakeObservable:             makeObservable,
	MethodGetPermissionForPlayers:    getPermission,
	MethodUpdatePermissionForPlayers: updatePermission,
	MethodListCustomRules:            listRules,
	MethodAddCustomRule:              addRule,
	MethodSwitchPopulatorState:       switchPopulator,
	MethodPopulateToken:              populateToken,
}

// Methods returns the served method names in order
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs method for the caller in ctx with a JSON request body
func (h *Handler) Call(ctx context.Context, method string, body []byte) (*Reply, error) {
	fn, ok := methods[method]
	if !ok {
		return nil, errors.NotFoundf("unknown method %s", method)
	}

	claims, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var caller Caller
	if err := decode(body, &caller); err != nil {
		return nil, err
	}

	collector := &notify.Collector{}
	sess, err := h.session(ctx, claims, caller.Selection, collector)
	if err != nil {
		return nil, err
	}

	reply, err := fn(ctx, h, sess, body)
	if err != nil {
		slog.Warn("Loot sheet call failed", "method", method, "user_id", claims.UserID, "error", err)
		return nil, err
	}
	reply.Notifications = collector.Notifications()
	return reply, nil
}

// session builds the caller session. The stored user decides who is a
// game master; a token issued without the gm claim never acts as one.
func (h *Handler) session(ctx context.Context, claims *auth.Claims, selection []world.TokenRef, collector *notify.Collector) (*session.Session, error) {
	var notifier notify.Notifier = collector
	if h.bus != nil {
		notifier = notify.Multi{collector, notify.NewBusNotifier(h.bus, claims.UserID)}
	}

	sess, err := h.resolver.NewSession(ctx, &world.NewSessionInput{
		UserID:    claims.UserID,
		Selection: selection,
		Notifier:  notifier,
	})
	if err != nil {
		return nil, err
	}

	if sess.User.IsGM && !claims.GM {
		user := *sess.User
		user.IsGM = false
		sess.User = &user
	}
	return sess, nil
}

func decode(body []byte, v any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

func (h *Handler) token(ctx context.Context, ref *world.TokenRef) (*entities.Token, error) {
	if ref == nil {
		return nil, nil
	}
	return h.resolver.Token(ctx, *ref)
}

// players maps IDs to session users; nil keeps the all-players default
func players(ids []string, sess *session.Session) ([]*entities.User, error) {
	if ids == nil {
		return nil, nil
	}
	byID := make(map[string]*entities.User, len(sess.Users))
	for _, u := range sess.Users {
		byID[u.ID] = u
	}

	out := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			return nil, errors.InvalidArgumentf("unknown player %s", id)
		}
		out = append(out, u)
	}
	return out, nil
}

func envelope[T any](env *response.Envelope[T]) *Reply {
	return &Reply{Result: env, Status: env.Code}
}

func result(v any) *Reply {
	return &Reply{Result: v, Status: http.StatusOK}
}

func convertToken(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req ConvertTokenRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	token, err := h.token(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	return envelope(h.service.ConvertToken(ctx, sess, &lootsheet.ConvertTokenInput{
		Token:   token,
		Kind:    req.Kind,
		Options: req.Options,
		Verbose: req.Verbose,
	})), nil
}

func convertTokens(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req ConvertTokensRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	tokens, err := h.resolver.Tokens(ctx, req.Tokens)
	if err != nil {
		return nil, err
	}
	return envelope(h.service.ConvertTokens(ctx, sess, &lootsheet.ConvertTokensInput{
		Tokens:  tokens,
		Kind:    req.Kind,
		Options: req.Options,
		Verbose: req.Verbose,
	})), nil
}

func addLoot(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req AddLootRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	tokens, err := h.resolver.Tokens(ctx, req.Tokens)
	if err != nil {
		return nil, err
	}
	env, err := h.service.AddLootToSelectedToken(ctx, sess, &lootsheet.AddLootInput{
		Tokens:  tokens,
		TableID: req.TableID,
		Options: req.Options,
	})
	if err != nil {
		return nil, err
	}
	return envelope(env), nil
}

func makeObservable(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req MakeObservableRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	tokens, err := h.resolver.Tokens(ctx, req.Tokens)
	if err != nil {
		return nil, err
	}
	users, err := players(req.Players, sess)
	if err != nil {
		return nil, err
	}
	return envelope(h.service.MakeObservable(ctx, sess, &lootsheet.MakeObservableInput{
		Tokens:  tokens,
		Players: users,
		Verbose: req.Verbose,
	})), nil
}

func getPermission(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req GetPermissionRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	token, err := h.token(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	users, err := players(req.Players, sess)
	if err != nil {
		return nil, err
	}
	return envelope(h.service.GetPermissionForPlayers(ctx, sess, &lootsheet.GetPermissionForPlayersInput{
		Token:   token,
		Players: users,
		Verbose: req.Verbose,
	})), nil
}

func updatePermission(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req UpdatePermissionRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}

	var level *entities.PermissionLevel
	if req.Level != "" {
		parsed, err := entities.ParsePermissionLevel(req.Level)
		if err != nil {
			return nil, errors.InvalidArgument(err.Error())
		}
		level = &parsed
	}

	tokens, err := h.resolver.Tokens(ctx, req.Tokens)
	if err != nil {
		return nil, err
	}
	users, err := players(req.Players, sess)
	if err != nil {
		return nil, err
	}
	return envelope(h.service.UpdatePermissionForPlayers(ctx, sess, &lootsheet.UpdatePermissionForPlayersInput{
		Tokens:  tokens,
		Players: users,
		Level:   level,
		Verbose: req.Verbose,
	})), nil
}

func listRules(ctx context.Context, h *Handler, sess *session.Session, _ []byte) (*Reply, error) {
	rules, err := h.service.GetRegisteredCustomRules(ctx, sess)
	if err != nil {
		return nil, err
	}
	return result(rules), nil
}

func addRule(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req AddCustomRuleRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	if req.Rule == nil {
		return nil, errors.InvalidArgument("rule is required")
	}
	if err := h.service.AddCustomRule(ctx, sess, req.Rule); err != nil {
		return nil, err
	}
	return result(req.Rule), nil
}

func switchPopulator(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req SwitchPopulatorRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	if err := h.service.SwitchPopulatorState(ctx, sess, req.Enabled); err != nil {
		return nil, err
	}
	return result(map[string]bool{"enabled": req.Enabled}), nil
}

func populateToken(ctx context.Context, h *Handler, sess *session.Session, body []byte) (*Reply, error) {
	var req PopulateTokenRequest
	if err := decode(body, &req); err != nil {
		return nil, err
	}
	token, err := h.token(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	summary, err := h.service.PopulateTokenWithOptions(ctx, sess, &lootsheet.PopulateTokenInput{
		Token:   token,
		TableID: req.TableID,
		Options: req.Options,
	})
	if err != nil {
		return nil, err
	}
	return result(summary), nil
}
