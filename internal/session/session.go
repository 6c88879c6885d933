// Package session carries the per-call context of a loot sheet operation:
// who is calling, who else is playing, what is selected and where
// notifications go.
package session

import (
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/notify"
	"github.com/KirkDiggler/rpg-lootsheet/internal/permissions"
)

// Session is injected into every public operation
type Session struct {
	// User is the caller
	User *entities.User
	// Users is everyone in the game, GMs included
	Users []*entities.User
	// Selection is the caller's currently controlled tokens
	Selection []*entities.Token
	// Notifier receives user-facing messages, nil discards them
	Notifier notify.Notifier
}

// IsGM reports whether the caller holds game master privilege
func (s *Session) IsGM() bool {
	return s != nil && s.User != nil && s.User.IsGM
}

// Players returns the non-GM users
func (s *Session) Players() []*entities.User {
	if s == nil {
		return nil
	}
	return permissions.Players(s.Users)
}

// FirstSelected returns the first controlled token, or nil
func (s *Session) FirstSelected() *entities.Token {
	if s == nil || len(s.Selection) == 0 {
		return nil
	}
	return s.Selection[0]
}

// Notify returns the session notifier, never nil
func (s *Session) Notify() notify.Notifier {
	if s == nil || s.Notifier == nil {
		return notify.Discard
	}
	return s.Notifier
}

// UserID returns the caller ID, empty when anonymous
func (s *Session) UserID() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.ID
}
