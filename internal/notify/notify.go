// Package notify delivers user-facing notifications raised by loot sheet
// operations, such as an empty selection or verbose loot progress.
package notify

//go:generate mockgen -destination=mock/mock_notifier.go -package=notifymock github.com/KirkDiggler/rpg-lootsheet/internal/notify Notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

var _ core.Entity = (*Notification)(nil)

// EventNotification is the event type published for every notification
const EventNotification = "lootsheet.notification"

// Level of a notification
type Level string

// Notification levels
const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notifier shows messages to the calling user
type Notifier interface {
	Info(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// Notification is a single message shown to a user
type Notification struct {
	UserID  string    `json:"user_id,omitempty"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// GetID returns the notification message
func (n *Notification) GetID() string {
	return n.Message
}

// GetType returns the entity type
func (n *Notification) GetType() string {
	return "notification"
}

// BusNotifier publishes notifications on an event bus
type BusNotifier struct {
	bus    events.EventBus
	userID string
}

// NewBusNotifier creates a notifier publishing on bus for the given user
func NewBusNotifier(bus events.EventBus, userID string) *BusNotifier {
	return &BusNotifier{bus: bus, userID: userID}
}

// Info publishes an info notification
func (b *BusNotifier) Info(ctx context.Context, message string) {
	b.publish(ctx, LevelInfo, message)
}

// Error publishes an error notification
func (b *BusNotifier) Error(ctx context.Context, message string) {
	b.publish(ctx, LevelError, message)
}

func (b *BusNotifier) publish(ctx context.Context, level Level, message string) {
	n := &Notification{
		UserID:  b.userID,
		Level:   level,
		Message: message,
		At:      time.Now(),
	}
	if err := b.bus.Publish(ctx, events.NewGameEvent(EventNotification, nil, n)); err != nil {
		slog.Warn("Failed to publish notification", "message", message, "error", err)
	}
}

// Subscribe registers fn for every notification published on bus and
// returns the subscription ID.
func Subscribe(bus events.EventBus, fn func(ctx context.Context, n *Notification)) string {
	return bus.SubscribeFunc(EventNotification, 0, func(ctx context.Context, e events.Event) error {
		if n, ok := e.Target().(*Notification); ok {
			fn(ctx, n)
		}
		return nil
	})
}

// LogNotification writes a notification to the default logger
func LogNotification(_ context.Context, n *Notification) {
	if n.Level == LevelError {
		slog.Error("Notification", "user_id", n.UserID, "message", n.Message)
		return
	}
	slog.Info("Notification", "user_id", n.UserID, "message", n.Message)
}

// Collector keeps notifications in memory so a transport can return them
// with the response.
type Collector struct {
	mu    sync.Mutex
	items []*Notification
}

// Info records an info notification
func (c *Collector) Info(_ context.Context, message string) {
	c.add(LevelInfo, message)
}

// Error records an error notification
func (c *Collector) Error(_ context.Context, message string) {
	c.add(LevelError, message)
}

func (c *Collector) add(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, &Notification{Level: level, Message: message, At: time.Now()})
}

// Notifications returns the recorded notifications in order
func (c *Collector) Notifications() []*Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Multi fans out to every notifier
type Multi []Notifier

// Info notifies every target
func (m Multi) Info(ctx context.Context, message string) {
	for _, n := range m {
		n.Info(ctx, message)
	}
}

// Error notifies every target
func (m Multi) Error(ctx context.Context, message string) {
	for _, n := range m {
		n.Error(ctx, message)
	}
}

// Discard drops every notification
var Discard Notifier = Multi(nil)
