// Package sheets tracks the UI sheet bound to each actor. A binding is
// created on first render for the actor's current sheet class and stays
// cached until evicted, so a class change only takes effect after Evict.
package sheets

//go:generate mockgen -destination=mock/mock_registry.go -package=sheetsmock github.com/KirkDiggler/rpg-lootsheet/internal/sheets Registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// State is the lifecycle state of a sheet
type State int

// Sheet states
const (
	StateClosedWasOpen     State = -1
	StateClosedNeverOpened State = 0
	StateOpen              State = 1
)

// Sheet lifecycle events
const (
	EventSheetRendered = "lootsheet.sheet.rendered"
	EventSheetClosed   = "lootsheet.sheet.closed"
)

// Registry owns the actor to sheet bindings
type Registry interface {
	// State returns the state of the actor's bound sheet, never-opened when unbound
	State(actorID string) State
	// Close closes the actor's sheet when it is open
	Close(ctx context.Context, actorID string) error
	// Render binds a sheet for the actor if needed and opens it
	Render(ctx context.Context, actor *entities.Actor, force bool) (*Sheet, error)
	// Evict drops the binding and its registered application
	Evict(actorID string)
}

// Sheet is a UI binding for one actor
type Sheet struct {
	AppID      int
	ActorID    string
	SheetClass string
	State      State
	Renders    int
}

// GetID returns the application ID
func (s *Sheet) GetID() string {
	return fmt.Sprintf("app-%d", s.AppID)
}

// GetType returns the entity type
func (s *Sheet) GetType() string {
	return "sheet"
}

// Config holds the registry dependencies
type Config struct {
	// EventBus receives sheet lifecycle events when set
	EventBus events.EventBus
}

type registry struct {
	mu       sync.Mutex
	bindings map[string]*Sheet
	apps     map[int]*Sheet
	nextApp  atomic.Int64
	bus      events.EventBus
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *Config) Registry {
	r := &registry{
		bindings: make(map[string]*Sheet),
		apps:     make(map[int]*Sheet),
	}
	if cfg != nil {
		r.bus = cfg.EventBus
	}
	return r
}

func (r *registry) State(actorID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sheet, ok := r.bindings[actorID]; ok {
		return sheet.State
	}
	return StateClosedNeverOpened
}

func (r *registry) Close(ctx context.Context, actorID string) error {
	r.mu.Lock()
	sheet, ok := r.bindings[actorID]
	if !ok || sheet.State != StateOpen {
		r.mu.Unlock()
		return nil
	}
	sheet.State = StateClosedWasOpen
	r.mu.Unlock()

	r.publish(ctx, EventSheetClosed, sheet)
	return nil
}

func (r *registry) Render(ctx context.Context, actor *entities.Actor, force bool) (*Sheet, error) {
	if actor == nil {
		return nil, errors.InvalidArgument("cannot render a sheet without an actor")
	}

	r.mu.Lock()
	sheet, ok := r.bindings[actor.ID]
	if !ok {
		sheet = &Sheet{
			AppID:      int(r.nextApp.Add(1)),
			ActorID:    actor.ID,
			SheetClass: actor.Flags.SheetClass,
		}
		r.bindings[actor.ID] = sheet
		r.apps[sheet.AppID] = sheet
	}
	if sheet.State == StateOpen && !force {
		r.mu.Unlock()
		return sheet, nil
	}
	sheet.State = StateOpen
	sheet.Renders++
	r.mu.Unlock()

	r.publish(ctx, EventSheetRendered, sheet)
	return sheet, nil
}

func (r *registry) Evict(actorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sheet, ok := r.bindings[actorID]
	if !ok {
		return
	}
	delete(r.apps, sheet.AppID)
	delete(r.bindings, actorID)
}

func (r *registry) publish(ctx context.Context, eventType string, sheet *Sheet) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(ctx, events.NewGameEvent(eventType, nil, sheet)); err != nil {
		slog.Warn("Failed to publish sheet event", "event", eventType, "actor_id", sheet.ActorID, "error", err)
	}
}
