package v1alpha1

import (
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/notify"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/curation"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/world"
)

// Caller fields shared by every request. Selection is what the caller has
// selected in the scene; operations fall back to it when no tokens are given.
type Caller struct {
	Selection []world.TokenRef `json:"selection,omitempty"`
}

// ConvertTokenRequest converts one token
type ConvertTokenRequest struct {
	Caller
	Token   *world.TokenRef  `json:"token,omitempty"`
	Kind    string           `json:"kind,omitempty"`
	Options curation.Options `json:"options"`
	Verbose bool             `json:"verbose,omitempty"`
}

// ConvertTokensRequest converts several tokens. A missing tokens field uses
// the selection, an empty list is an empty batch.
type ConvertTokensRequest struct {
	Caller
	Tokens  []world.TokenRef `json:"tokens"`
	Kind    string           `json:"kind,omitempty"`
	Options curation.Options `json:"options"`
	Verbose bool             `json:"verbose,omitempty"`
}

// AddLootRequest rolls loot onto tokens
type AddLootRequest struct {
	Caller
	Tokens  []world.TokenRef `json:"tokens"`
	TableID string           `json:"table_id,omitempty"`
	Options loot.Options     `json:"options"`
}

// MakeObservableRequest grants observer access
type MakeObservableRequest struct {
	Caller
	Tokens  []world.TokenRef `json:"tokens"`
	Players []string         `json:"players"`
	Verbose bool             `json:"verbose,omitempty"`
}

// GetPermissionRequest reads effective permission levels
type GetPermissionRequest struct {
	Caller
	Token   *world.TokenRef `json:"token,omitempty"`
	Players []string        `json:"players"`
	Verbose bool            `json:"verbose,omitempty"`
}

// UpdatePermissionRequest sets a permission level. Level accepts a name
// such as "observer" or a number; empty means observer.
type UpdatePermissionRequest struct {
	Caller
	Tokens  []world.TokenRef `json:"tokens"`
	Players []string         `json:"players"`
	Level   string           `json:"level,omitempty"`
	Verbose bool             `json:"verbose,omitempty"`
}

// AddCustomRuleRequest stores a populator rule
type AddCustomRuleRequest struct {
	Caller
	Rule *entities.Rule `json:"rule"`
}

// SwitchPopulatorRequest toggles auto-population of new tokens
type SwitchPopulatorRequest struct {
	Caller
	Enabled bool `json:"enabled"`
}

// PopulateTokenRequest populates one token
type PopulateTokenRequest struct {
	Caller
	Token   *world.TokenRef `json:"token,omitempty"`
	TableID string          `json:"table_id,omitempty"`
	Options loot.Options    `json:"options"`
}

// Reply is the payload of every response. Result holds the operation
// envelope, or the plain result for operations that fail with an error.
type Reply struct {
	Result        any                    `json:"result"`
	Notifications []*notify.Notification `json:"notifications,omitempty"`
	// Status is the envelope code, 200 for plain results
	Status int `json:"-"`
}
