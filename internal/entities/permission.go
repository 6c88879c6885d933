package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// PermissionLevel is a player's access level to a document
type PermissionLevel int

// Permission levels
const (
	PermissionNone     PermissionLevel = 0
	PermissionLimited  PermissionLevel = 1
	PermissionObserver PermissionLevel = 2
	PermissionOwner    PermissionLevel = 3
)

// DefaultPermissionKey is the reserved entry applied to players without their own entry
const DefaultPermissionKey = "default"

// String returns the level name
func (l PermissionLevel) String() string {
	switch l {
	case PermissionNone:
		return "NONE"
	case PermissionLimited:
		return "LIMITED"
	case PermissionObserver:
		return "OBSERVER"
	case PermissionOwner:
		return "OWNER"
	default:
		return fmt.Sprintf("PermissionLevel(%d)", int(l))
	}
}

// IsValid reports whether the level is one of the known levels
func (l PermissionLevel) IsValid() bool {
	return l >= PermissionNone && l <= PermissionOwner
}

// ParsePermissionLevel accepts a level name or its numeric value
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return PermissionNone, nil
	case "LIMITED":
		return PermissionLimited, nil
	case "OBSERVER":
		return PermissionObserver, nil
	case "OWNER":
		return PermissionOwner, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !PermissionLevel(n).IsValid() {
		return PermissionNone, fmt.Errorf("unknown permission level %q", s)
	}
	return PermissionLevel(n), nil
}

// PermissionMap maps player IDs (and the default key) to a level
type PermissionMap map[string]PermissionLevel

// Clone returns an independent copy, never nil
func (m PermissionMap) Clone() PermissionMap {
	out := make(PermissionMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Lookup returns the explicit entry for a player
func (m PermissionMap) Lookup(playerID string) (PermissionLevel, bool) {
	level, ok := m[playerID]
	return level, ok
}
