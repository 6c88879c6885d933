package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Tokens and actors travel as event targets on the toolkit bus
var (
	_ core.Entity = (*Token)(nil)
	_ core.Entity = (*Actor)(nil)
)

// Token is a placeable on a scene wrapping a shared actor reference
type Token struct {
	ID            string        `json:"id"`
	SceneID       string        `json:"scene_id"`
	Name          string        `json:"name"`
	ActorID       string        `json:"actor_id,omitempty"`
	OverlayEffect string        `json:"overlay_effect,omitempty"`
	Vision        bool          `json:"vision"`
	Permissions   PermissionMap `json:"permissions,omitempty"`
	// Currency held by the token itself rather than its actor
	Currency Currency `json:"currency"`

	Actor *Actor `json:"-"`
}

// UUID is the stable identifier used to key batch results
func (t *Token) UUID() string {
	return fmt.Sprintf("Scene.%s.Token.%s", t.SceneID, t.ID)
}

// GetID returns the token ID
func (t *Token) GetID() string {
	return t.ID
}

// GetType returns the entity type
func (t *Token) GetType() string {
	return "token"
}

// HasActor reports whether the token resolves to an actor
func (t *Token) HasActor() bool {
	return t != nil && t.Actor != nil
}
