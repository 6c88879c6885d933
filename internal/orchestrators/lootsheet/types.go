package lootsheet

import (
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/curation"
)

// ConvertTokenInput converts one token; a nil Token uses the first selected
type ConvertTokenInput struct {
	Token   *entities.Token
	Kind    string
	Options curation.Options
	Verbose bool
}

// ConvertTokensInput converts a token selection; nil Tokens uses the selection
type ConvertTokensInput struct {
	Tokens  []*entities.Token
	Kind    string
	Options curation.Options
	Verbose bool
}

// AddLootInput rolls loot onto tokens; nil Tokens uses the selection
type AddLootInput struct {
	Tokens []*entities.Token
	// TableID is optional, rules and the default table apply without it
	TableID string
	Options loot.Options
}

// MakeObservableInput grants observer access; nil Players means all players
type MakeObservableInput struct {
	Tokens  []*entities.Token
	Players []*entities.User
	Verbose bool
}

// GetPermissionForPlayersInput reads effective levels; a nil Token uses the
// first selected and nil Players means all players
type GetPermissionForPlayersInput struct {
	Token   *entities.Token
	Players []*entities.User
	Verbose bool
}

// UpdatePermissionForPlayersInput sets a level on tokens for players. Nil
// Tokens uses the selection, nil Players all players and a nil Level
// observer access.
type UpdatePermissionForPlayersInput struct {
	Tokens  []*entities.Token
	Players []*entities.User
	Level   *entities.PermissionLevel
	Verbose bool
}

// PopulateTokenInput populates one token; a nil Token uses the first selected
type PopulateTokenInput struct {
	Token   *entities.Token
	TableID string
	Options loot.Options
}
