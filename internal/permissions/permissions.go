// Package permissions computes player access to lootable tokens. Every
// function is pure: callers apply the returned maps themselves.
package permissions

import (
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
)

// DefaultLevel is granted when a caller does not pick a level
const DefaultLevel = entities.PermissionObserver

// Players returns the non-GM users in order
func Players(users []*entities.User) []*entities.User {
	players := make([]*entities.User, 0, len(users))
	for _, u := range users {
		if u.IsPlayer() {
			players = append(players, u)
		}
	}
	return players
}

// ComputeUpdated returns a copy of the token's permission map with every
// given player set to level. Entries for other players are kept as-is.
func ComputeUpdated(token *entities.Token, level entities.PermissionLevel, players []*entities.User) entities.PermissionMap {
	var current entities.PermissionMap
	if token != nil {
		current = token.Permissions
	}

	updated := current.Clone()
	for _, p := range players {
		if p == nil {
			continue
		}
		updated[p.ID] = level
	}
	return updated
}

// EffectiveLevel resolves a player's level: token entry, then actor entry,
// then the default entries, then NONE.
func EffectiveLevel(token *entities.Token, playerID string) entities.PermissionLevel {
	if token == nil {
		return entities.PermissionNone
	}

	var actorPerms entities.PermissionMap
	if token.Actor != nil {
		actorPerms = token.Actor.Permissions
	}

	if level, ok := token.Permissions.Lookup(playerID); ok {
		return level
	}
	if level, ok := actorPerms.Lookup(playerID); ok {
		return level
	}
	if level, ok := token.Permissions.Lookup(entities.DefaultPermissionKey); ok {
		return level
	}
	if level, ok := actorPerms.Lookup(entities.DefaultPermissionKey); ok {
		return level
	}
	return entities.PermissionNone
}

// ForPlayers returns the effective level of each player keyed by player ID
func ForPlayers(token *entities.Token, players []*entities.User) map[string]entities.PermissionLevel {
	out := make(map[string]entities.PermissionLevel, len(players))
	for _, p := range players {
		if p == nil {
			continue
		}
		out[p.ID] = EffectiveLevel(token, p.ID)
	}
	return out
}
